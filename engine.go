package tbox

import (
	"context"

	"go.uber.org/zap"
)

type (
	// Engine is the process-wide handle for the library's stateful
	// collaborators: configuration, logging, and the lifetimes of any
	// Store or BoltIndex opened through it. The pure box algebra needs no
	// Engine; it exists so embedding services acquire shared resources
	// once at startup and release them at shutdown
	Engine struct {
		config Config
		log    *zap.Logger
		ctx    context.Context
		cancel context.CancelFunc
	}
)

// NewEngine creates a new Engine with the given configuration
func NewEngine(cfg Config) (*Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		config: cfg,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Context returns the Engine's context for cancellation
func (e *Engine) Context() context.Context {
	return e.ctx
}

// Logger returns the Engine's logger
func (e *Engine) Logger() *zap.Logger {
	return e.log
}

// Format renders a box using the Engine's configured output precision
func (e *Engine) Format(b TBox) string {
	return FormatTBox(b, e.config.OutputDecimals)
}

// Close gracefully shuts down the Engine
func (e *Engine) Close() error {
	e.cancel()
	return nil
}
