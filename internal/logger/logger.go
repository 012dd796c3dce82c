// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the sync engine.
//
// The engine is a library embedded in a host process, not a standalone
// binary, so unlike a CLI's logger this one must not reach for
// zerolog's package-level knobs (SetGlobalLevel, CallerMarshalFunc):
// doing so would override logging behavior the host application set up
// for itself. Level and caller formatting are configured per-Logger
// instance instead.
package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so every zerolog method (Debug, Info,
// Warn, Error, ...) is available directly on *Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds a *Logger for the given component label (e.g.
// "account", "sync", "backend"), writing JSON lines to os.Stdout at
// Info level with a caller field in the default file:line form.
func NewLogger(role string) *Logger {
	l := zerolog.New(os.Stdout).
		Level(zerolog.InfoLevel).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
	return &Logger{l}
}

// Nop returns a *Logger that discards everything written to it, for
// callers that construct an Account without supplying their own
// logger.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that further fields can be
// attached to without mutating l itself.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the *Logger attached to ctx via zerolog's
// log.Ctx. If none was attached it returns zerolog.DefaultContextLogger,
// or a disabled logger when that is nil; it never falls back to the
// zerolog global logger.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
