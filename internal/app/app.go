package app

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"

	"nucore/internal/logging"
)

// App is the resolved configuration plus the dependency graph built from it.
type App struct {
	Config Config
	Log    logr.Logger
	*Wire
}

// New creates the home directory, installs the process logger and wires the
// services.
func New(cfg Config) (*App, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	log, err := logging.NewLogger(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	log.V(logging.DEBUG).Info("Wired application", "home", cfg.Home, "coreDir", cfg.CoreDir, "komodo", cfg.KomodoExecutable)
	return &App{Config: cfg, Log: log, Wire: w}, nil
}
