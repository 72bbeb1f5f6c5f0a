package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the process-wide logger. level accepts the usual zap names
// ("debug", "info", "warn", "error"); anything unparseable falls back to info.
func Init(development bool, level string) error {
	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(parsed)

	log, err = config.Build()
	return err
}

// Get returns the logger instance. Before Init it returns a nop logger so
// library code and tests can log unconditionally.
func Get() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}
