package config

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

func NewWebSocket() (*WebSocket, error) {
	readBuffer, err := lookupInt("WS_READ_BUFFER", 1024)
	if err != nil {
		return nil, err
	}
	writeBuffer, err := lookupInt("WS_WRITE_BUFFER", 4096)
	if err != nil {
		return nil, err
	}

	checkOrigin := sameHost
	if Development() {
		checkOrigin = func(r *http.Request) bool {
			return true
		}
	}

	ws := &WebSocket{
		Upgrader: websocket.Upgrader{
			HandshakeTimeout: time.Second * 10,
			ReadBufferSize:   readBuffer,
			WriteBufferSize:  writeBuffer,
			CheckOrigin:      checkOrigin,
		},
	}

	return ws, nil
}

func sameHost(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}
