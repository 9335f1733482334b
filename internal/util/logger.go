package util

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger builds the process-wide zap logger and installs it as the
// global. Level falls back to info when the configured value is invalid.
func InitLogger(logLevel string) *zap.Logger {
	config := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	config.Level.SetLevel(level)

	logger, _ := config.Build()
	zap.ReplaceGlobals(logger)
	return logger
}
