package logger

import (
	"fmt"

	"customers-be/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// New builds a logger for env: JSON with ISO8601 timestamps on stdout for
// production, the colored console otherwise. A non-empty level replaces
// the environment's default level.
func New(env, level string) (*zap.Logger, error) {
	var cfg zap.Config

	switch env {
	case "production":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		cfg.Level = lvl
	}

	return cfg.Build(zap.AddCaller())
}

// Init installs the process logger described by cfg.
func Init(cfg *config.Config) error {
	l, err := New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the process logger. Before Init it is a development logger.
func L() *zap.Logger {
	if log == nil {
		log = zap.Must(New("", ""))
	}
	return log
}

// Replace swaps the process logger and returns a func restoring the old one.
func Replace(l *zap.Logger) func() {
	prev := log
	log = l
	return func() { log = prev }
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
