// Package logging builds the process logger.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json or console
	Development bool
}

func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
	}
}

// FromEnv overrides cfg with DASHCRAWLER_LOG_LEVEL and DASHCRAWLER_LOG_FORMAT when set.
func FromEnv(cfg Config) Config {
	if level := os.Getenv("DASHCRAWLER_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("DASHCRAWLER_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
}

// New builds a zap logger from cfg. An unknown level is an error.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	switch strings.ToLower(cfg.Format) {
	case "", "console":
		zapConfig.Encoding = "console"
	case "json":
		zapConfig.Encoding = "json"
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	zapConfig.Sampling = nil

	return zapConfig.Build(zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Install builds a logger from cfg and makes it the zap global.
// The returned func restores the previous global and flushes the logger.
func Install(cfg Config) (*zap.Logger, func(), error) {
	l, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	restore := zap.ReplaceGlobals(l)
	return l, func() {
		_ = l.Sync()
		restore()
	}, nil
}

// Named returns a child of the global logger for a subsystem.
func Named(name string) *zap.Logger {
	return zap.L().Named(name)
}
