// Package logger provides context-aware structured logging on top of zap.
// Request and job scoped fields travel in the context, and the same core is
// bridged to log/slog for libraries that expect a *slog.Logger.
package logger

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs human-readable lines at debug level.
	DevelopmentEnvironment = "development"

	// ProductionEnvironment logs sampled JSON at info level.
	ProductionEnvironment = "production"
)

// defaultLogger is used when no logger is found in context.
var defaultLogger *zap.Logger //nolint: gochecknoglobals

type setupOptions struct {
	level  string
	fields []zapcore.Field
}

// Option customizes Setup.
type Option func(*setupOptions)

// WithLevel overrides the environment's default level. Empty keeps the default.
func WithLevel(level string) Option {
	return func(o *setupOptions) { o.level = level }
}

// WithDefaultFields attaches fields to every entry of the default logger.
func WithDefaultFields(fields ...zapcore.Field) Option {
	return func(o *setupOptions) { o.fields = append(o.fields, fields...) }
}

// Setup initializes the default logger for environment ("development" or
// "production"). An invalid level is reported through the resulting logger and
// otherwise ignored.
func Setup(environment string, opts ...Option) {
	var o setupOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}

	var levelErr error
	if o.level != "" {
		level, err := zapcore.ParseLevel(o.level)
		if err != nil {
			levelErr = fmt.Errorf("invalid log level %q: %w", o.level, err)
		} else {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	defaultLogger = l.With(o.fields...)

	if levelErr != nil {
		defaultLogger.Warn("using default log level", zap.Error(levelErr))
	}
}

type key struct{}

// Get retrieves the logger stored in ctx, falling back to the default logger
// and to a no-op logger before Setup is called.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}
	if defaultLogger == nil {
		return zap.NewNop()
	}

	return defaultLogger
}

// WithLogger creates a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields creates a new context whose logger includes fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Slog returns a *slog.Logger writing to the same core as the context logger.
func Slog(ctx context.Context) *slog.Logger {
	return slog.New(zapslog.NewHandler(Get(ctx).Core()))
}

// IsDebug reports whether the context logger is at debug level.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Level() == zap.DebugLevel
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}

// Sync flushes any buffered entries of the default logger. Sync errors on
// stdout/stderr are expected on some platforms and are ignored by callers.
func Sync() error {
	if defaultLogger == nil {
		return nil
	}

	return defaultLogger.Sync() //nolint: wrapcheck
}
