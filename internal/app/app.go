package app

import (
	"io"
	"log/slog"

	"github.com/vk/rgbmix/internal/rgb"
)

// App encapsulates one blend invocation: its configuration and its logger.
type App struct {
	logger *slog.Logger
	config *Config
}

// Result is the outcome of a successful run.
type Result struct {
	Color1 rgb.Color
	Color2 rgb.Color
	Mixed  rgb.Color

	// Whole-percent display split; always sums to 100.
	FirstPercent  int
	SecondPercent int
}

// NewApp is the constructor for the application. Diagnostics are written to
// logW; the blend result itself is only ever written by Report.
func NewApp(logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		logger: logger,
		config: cfg,
	}
}

// Config returns the application's configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
