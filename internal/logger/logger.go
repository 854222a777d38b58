// Package logger builds the zap logger of the beanpath CLI from its configuration.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"beanpath/errors"
	"beanpath/internal/config"
)

// New builds a logger writing to stderr, so that stdout carries only command
// output. Development mode switches to the human-readable console encoder.
func New(cfg config.LogConfig) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse log level")
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	return l.Sugar(), nil
}
