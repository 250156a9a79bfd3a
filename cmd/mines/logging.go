package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-canvas/internal/config"
	"github.com/vancomm/minesweeper-canvas/internal/mines"
)

func newLogger() *slog.Logger {
	if config.Development() {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

// setupEngineLog configures the board engine's logrus logger, adding a
// rotating JSON file when path is set.
func setupEngineLog(path string) error {
	level := logrus.InfoLevel
	if config.Development() {
		level = logrus.DebugLevel
	}
	mines.Log.SetLevel(level)
	mines.Log.SetFormatter(&logrus.TextFormatter{ForceColors: config.Development()})

	if path == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
	})
	if err != nil {
		return err
	}
	mines.Log.AddHook(hook)
	return nil
}
