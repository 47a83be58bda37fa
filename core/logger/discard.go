package logger

import (
	"io"
	"log/slog"
)

// Discard returns a logger that drops every record.
// It is the default for components that log only when asked to.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrDiscard returns l, or a discard logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
