// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the application's zap logger.
//
// The TUI owns the terminal, so logs go to a file (by default
// ~/.cookbot/cookbot.log) as JSON lines. Disabled logging yields a no-op
// logger so callers never nil-check.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects where and how verbosely to log.
type Config struct {
	Enabled bool
	Path    string // log file; empty means stderr
	Level   string // debug, info, warn, error
	Verbose bool   // forces debug level
}

// ParseLevel maps a level name to a zap level. Unknown names yield info.
func ParseLevel(name string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// New builds a logger from cfg. The returned logger must be synced by the
// caller before exit.
func New(cfg Config) (*zap.Logger, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	if cfg.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil

	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		zc.OutputPaths = []string{cfg.Path}
		zc.ErrorOutputPaths = []string{cfg.Path}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
