// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// wellness tracker.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain
// operation-scoped loggers via FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	closer io.Closer
}

// Options controls where and how much a *Logger created by [NewLogger] writes.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// An empty Level means "info".
	Level string

	// File is the path of the rotating JSON log file. When empty, the logger
	// writes to stderr only.
	File string

	// Debug mirrors every entry to stderr in addition to File and forces the
	// debug level.
	Debug bool
}

// Rotation limits of the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// NewLogger constructs a *Logger for the given role label (e.g. "cli").
//
// The logger is configured with:
//   - a "role" field set to role;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format).
//
// Output is JSON, written to a lumberjack-rotated file when opts.File is
// set and to stderr otherwise (or additionally, in debug mode).
func NewLogger(role string, opts Options) (*Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	var (
		writer io.Writer = os.Stderr
		closer io.Closer
	)
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("error creating log directory: %w", err)
		}
		fileWriter := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}
		closer = fileWriter
		writer = fileWriter
		if opts.Debug {
			writer = io.MultiWriter(os.Stderr, fileWriter)
		}
	}

	logger := zerolog.New(writer).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger, closer: closer}, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// WithSession returns a child logger tagged with the given session id.
func (l *Logger) WithSession(sessionID string) *Logger {
	return &Logger{Logger: l.With().Str("session_id", sessionID).Logger()}
}

// Close flushes and closes the log file, if any. Safe to call on a Nop logger.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
