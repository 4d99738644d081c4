package app

import (
	"io"
	"log/slog"

	"github.com/vk/seedgen/internal/config"
	"github.com/vk/seedgen/internal/seed"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	generator *seed.Generator
	loader    config.Loader
}

// NewApp is the constructor for the main application. User-facing messages
// go to outW; logs go to logW through the App's own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config, gen *seed.Generator, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("generator", gen.Program)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		generator: gen,
		loader:    loader,
	}
}
