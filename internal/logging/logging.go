// Package logging builds the structured logger used by the store, the match
// recorder and the CLI.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a zap logger writing to stderr at the given level. An empty
// level or "off" yields a no-op logger.
func New(level string) *zap.Logger {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" || level == "off" {
		return zap.NewNop()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if os.Getenv("ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		// Fallback to a basic logger if config fails
		return zap.NewExample()
	}
	return logger
}
