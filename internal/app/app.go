package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-canvas/internal/config"
	"github.com/vancomm/minesweeper-canvas/internal/middleware"
	"github.com/vancomm/minesweeper-canvas/internal/repository"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	logger *slog.Logger
	router *http.ServeMux
	repo   *repository.Queries
	ws     *config.WebSocket
	static fs.FS
}

// New builds the app. static must hold the page at its root (index.html).
func New(logger *slog.Logger, static fs.FS) *App {
	app := &App{
		logger: logger,
		router: http.NewServeMux(),
		repo:   repository.New(),
		ws:     config.NewWebSocket(),
		static: static,
	}
	app.loadRoutes()
	return app
}

func (a *App) Handler() http.Handler {
	var h http.Handler = a.router
	if base := config.BasePath(); base != "" {
		h = http.StripPrefix(base, h)
	}
	return middleware.Wrap(
		h,
		middleware.RequestID(),
		middleware.Logging(a.logger),
		middleware.Cors(config.Development()),
	)
}

// Start serves until ctx is done, then shuts the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	addr := config.Port()
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening",
			slog.String("addr", addr),
			slog.String("basePath", config.BasePath()),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down",
			slog.Int("liveSessions", a.repo.CountGameSessions()),
		)
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
