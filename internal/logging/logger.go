// Package logging defines the structured-logging interface used across the
// client. Two implementations are provided: one over log/slog and one over
// zerolog, which renders friendlier console output for interactive sessions.
package logging

import (
	"context"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request sent", "method", "GET", "path", "/directory/count")
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Supported output formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New builds a Logger writing to w. "console" selects zerolog's console
// writer; "json" and "text" use slog handlers. Unknown formats fall back to
// text. Level is one of debug, info, warn, error.
func New(format, level string, w io.Writer) Logger {
	switch strings.ToLower(format) {
	case FormatConsole:
		return NewZerologConsole(w, level)
	case FormatJSON:
		return NewSlogJSON(w, level)
	default:
		return NewSlogText(w, level)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogText(io.Discard, "error")
}
