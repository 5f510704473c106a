// Package logger constructs the structured logger an ignite Instance hands
// to its engine. It wraps go.uber.org/zap so callers never touch a
// zap.Config directly.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.SugaredLogger tagged with the given service name.
// Production encoding (JSON, ISO8601 timestamps) is used unless debug is
// requested via NewDebug.
func New(service string) *zap.SugaredLogger {
	return build(service, zap.NewProductionConfig())
}

// NewDebug builds a development-mode logger (console encoding, debug level
// enabled) tagged with the given service name. Intended for tests and local
// tooling, not production deployments.
func NewDebug(service string) *zap.SugaredLogger {
	return build(service, zap.NewDevelopmentConfig())
}

func build(service string, cfg zap.Config) *zap.SugaredLogger {
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	base, err := cfg.Build()
	if err != nil {
		// Fall back to a minimal logger rather than leave callers with a nil
		// logger; this should only happen with a malformed zap.Config.
		base = zap.NewNop()
	}

	return base.Sugar().With("service", service)
}
