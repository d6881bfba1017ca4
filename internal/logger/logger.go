// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the sync client and server.
//
// Logger embeds zerolog.Logger, so Debug, Info, Warn, Err and friends are
// called on *Logger directly. Request and cycle scoped loggers travel in
// the context and are read back with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnv names the variable that overrides the default debug level.
const LevelEnv = "FIELDSYNC_LOG_LEVEL"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout tagged with role. Every entry
// carries "role", "time" and the calling function under "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is NewLogger for the terminal client. The terminal
// belongs to the UI, so entries go to ClientLogPath instead; stderr is
// used when that file cannot be opened.
func NewClientLogger(role string) *Logger {
	var w io.Writer = os.Stderr
	if path, err := ClientLogPath(); err == nil {
		if err = os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
				w = f
			}
		}
	}

	return newLogger(w, role)
}

// ClientLogPath is where the client writes its log:
// <user cache dir>/fieldsync/client.log.
func ClientLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fieldsync", "client.log"), nil
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(levelFromEnv())
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// levelFromEnv reads LevelEnv; unset or unknown values mean debug.
func levelFromEnv() zerolog.Level {
	level, err := zerolog.ParseLevel(os.Getenv(LevelEnv))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return level
}

// Nop returns a *Logger that discards everything. Tests use it.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be given extra
// fields without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger the middleware attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one, zerolog's
// default logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
