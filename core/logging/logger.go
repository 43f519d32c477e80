// Package logging holds the package-global logger shared by the SDK.
//
// The level is taken from the LOG_LEVEL environment variable (debug, info,
// warn, error; default info). Callers embedding the SDK can swap the logger
// with SetLogger before issuing any operations.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the SDK-wide logger. Defaults to a production JSON logger at the
// level given by LOG_LEVEL.
var Logger = newDefaultLogger()

// SetLogger replaces the global logger. Not safe to call concurrently with
// in-flight operations.
func SetLogger(l *zap.Logger) {
	if l != nil {
		Logger = l
	}
}

func newDefaultLogger() *zap.Logger {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "json"
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
