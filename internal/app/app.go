package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/benchcheck/internal/catalog"
)

// Loader reads a benchmark's declarations from storage.
type Loader interface {
	Load(ctx context.Context, path string) (*catalog.Benchmark, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader Loader
}

// NewApp is the constructor for the main application. The plan is written to
// outW and logs to logW, through an isolated logger.
func NewApp(outW, logW io.Writer, config *Config, loader Loader) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		loader: loader,
	}
}
