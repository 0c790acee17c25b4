package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a structured logger. Level is one of debug, info, warn,
// error; anything else falls back to info.
func New(level string) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	// Keep stdout free for operator-facing output.
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	return config.Build()
}

// NewWithDefaults creates a logger that only reports warnings and
// errors, which keeps the interactive shell quiet in normal use.
func NewWithDefaults() *zap.Logger {
	logger, err := New("warn")
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
