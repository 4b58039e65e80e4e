// Package logging provides context-aware structured logging on top of zap.
//
// A process calls Setup once at startup; request handlers read the logger
// carried by their context through Get, which falls back to the process
// default.
package logging

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvironmentDevelopment selects human-readable console output at debug level.
	EnvironmentDevelopment = "development"
	// EnvironmentProduction selects JSON output at info level.
	EnvironmentProduction = "production"
)

var defaultLogger atomic.Pointer[zap.Logger]

func init() {
	defaultLogger.Store(zap.NewNop())
}

// New builds a logger for the named environment.
func New(environment string) (*zap.Logger, error) {
	switch strings.ToLower(strings.TrimSpace(environment)) {
	case EnvironmentProduction:
		return zap.NewProduction()
	case EnvironmentDevelopment, "":
		return zap.NewDevelopment()
	default:
		return nil, fmt.Errorf("unknown log environment %q", environment)
	}
}

// Setup replaces the process default logger.
func Setup(environment string) (*zap.Logger, error) {
	logger, err := New(environment)
	if err != nil {
		return nil, err
	}
	SetDefault(logger)
	return logger, nil
}

// SetDefault installs logger as the process default. A nil logger resets
// the default to a no-op logger.
func SetDefault(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaultLogger.Store(logger)
}

// Default returns the process default logger.
func Default() *zap.Logger {
	return defaultLogger.Load()
}

type key struct{}

// Get returns the logger carried by ctx, or the process default.
func Get(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
			return logger
		}
	}
	return Default()
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, key{}, logger)
}

// WithFields returns a context whose logger includes fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Info logs msg at info level with the logger carried by ctx.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs msg at warn level with the logger carried by ctx.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs msg at error level with the logger carried by ctx.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}
