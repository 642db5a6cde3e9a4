package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V.
const (
	DEBUG = 1
	TRACE = 2
)

var (
	mu     sync.RWMutex
	global = logr.Discard()
)

// Log returns the process logger. It discards everything until NewLogger or
// NewTestLogger has run.
func Log() logr.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SetLogger replaces the process logger.
func SetLogger(l logr.Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

// ParseLevel maps "error", "info", "debug" and "trace" to a zap level.
// logr verbosity V(n) corresponds to zap level -n.
func ParseLevel(s string) (zapcore.Level, error) {
	switch s {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	case "trace":
		return zapcore.Level(-TRACE), nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// NewLogger builds a console logger writing to stderr at level and installs
// it as the process logger.
func NewLogger(level string, json bool) (logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)
	if json {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	zl := zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(lvl)))
	l := zapr.NewLogger(zl)
	SetLogger(l)
	return l, nil
}

// NewTestLogger installs a development logger at trace level for tests.
func NewTestLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-TRACE))
	zl, err := cfg.Build()
	if err != nil {
		zl = zap.NewNop()
	}
	l := zapr.NewLogger(zl)
	SetLogger(l)
	return l
}
