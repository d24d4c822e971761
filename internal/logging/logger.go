// Package logging defines the structured-logging interface used across the
// tribunal client and its two backends: log/slog and zerolog.
package logging

import (
	"context"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are key–value pairs, e.g.:
//
//	log.Info(ctx, "search applied", "page", 2, "total", 31)
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

// New builds a Logger writing to w. "console" selects the zerolog console
// writer (human oriented, used by the REPL); "json" and "text" select the
// matching slog handler. Unknown formats fall back to text.
func New(format, level string, w io.Writer) Logger {
	switch strings.ToLower(format) {
	case FormatConsole:
		return NewConsoleLogger(w, level)
	case FormatJSON:
		return NewSlogJSONLogger(w, level)
	default:
		return NewSlogTextLogger(w, level)
	}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return NewSlogTextLogger(io.Discard, "error")
}
