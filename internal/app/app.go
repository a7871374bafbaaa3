package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/sdvars/internal/loader"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader *loader.Loader
}

// NewApp builds an App. Results (evaluations, emitted documents) go to outW;
// log records go to logW so emitted documents stay clean.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader.NewLoader(cfg.WorkerCount),
	}
}
