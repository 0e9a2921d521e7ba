package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/middleware"
)

type App struct {
	log    *logrus.Logger
	cfg    *config.App
	router *http.ServeMux
}

func New(log *logrus.Logger, cfg *config.App) *App {
	app := &App{
		log:    log,
		cfg:    cfg,
		router: http.NewServeMux(),
	}
	app.loadRoutes()
	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.log),
		middleware.Cors(a.cfg.Development, a.cfg.AllowedOrigins...),
	)
}

// Start serves until ctx is cancelled or the listener fails.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:        a.cfg.Addr,
		Handler:     a.Handler(),
		ReadTimeout: time.Second * 15,
		IdleTimeout: time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infof("ready to serve @ %s", a.cfg.Addr)
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
