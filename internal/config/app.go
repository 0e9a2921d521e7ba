package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

type App struct {
	Addr              string
	Development       bool
	DefaultDifficulty mines.Difficulty
	AllowedOrigins    []string
	Log               Log
	WebSocket         *WebSocket
}

func NewApp() (*App, error) {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok {
		addr = ":8080"
	}

	difficulty := mines.Default
	if name, ok := os.LookupEnv("DEFAULT_DIFFICULTY"); ok {
		d, err := mines.ParseDifficulty(name)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_DIFFICULTY: %w", err)
		}
		difficulty = d
	}

	log, err := NewLog()
	if err != nil {
		return nil, err
	}

	ws, err := NewWebSocket()
	if err != nil {
		return nil, err
	}

	cfg := &App{
		Addr:              addr,
		Development:       Development(),
		DefaultDifficulty: difficulty,
		AllowedOrigins:    allowedOrigins(),
		Log:               *log,
		WebSocket:         ws,
	}

	return cfg, nil
}

func (c App) Fields() logrus.Fields {
	return logrus.Fields{
		"addr":               c.Addr,
		"development":        c.Development,
		"default_difficulty": c.DefaultDifficulty.String(),
		"allowed_origins":    c.AllowedOrigins,
		"log_file":           c.Log.File,
		"ws_read_buffer":     c.WebSocket.Upgrader.ReadBufferSize,
		"ws_write_buffer":    c.WebSocket.Upgrader.WriteBufferSize,
	}
}

// allowedOrigins reads the comma-separated CORS_ORIGINS. An empty list lets
// any origin through.
func allowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return v, nil
}
