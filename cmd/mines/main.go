package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/minesweeper-canvas/internal/app"
	"github.com/vancomm/minesweeper-canvas/internal/config"
)

//go:embed static
var static embed.FS

func main() {
	if err := config.Load(); err != nil {
		slog.Error("unable to load .env", slog.Any("error", err))
	}

	logger := newLogger()
	if err := setupEngineLog(config.LogFile()); err != nil {
		logger.Error("unable to set up engine log file", slog.Any("error", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	page, err := fs.Sub(static, "static")
	if err != nil {
		logger.Error("unable to open static files", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.New(logger, page).Start(ctx); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
