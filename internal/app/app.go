package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/specialistvlad/flowgraph/internal/config"
	"github.com/specialistvlad/flowgraph/internal/ctxlog"
)

// ErrInvalidProgram is wrapped by errors for programs that failed to
// compile. Diagnostics have already been written when it is returned.
var ErrInvalidProgram = errors.New("invalid program")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *config.Config
}

// NewApp is the constructor for the main application. Results go to outW;
// logs and diagnostics go to errW. A nil cfg selects config.Default().
func NewApp(outW, errW io.Writer, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
	}
}

// Config returns the configuration the app was created with.
func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
