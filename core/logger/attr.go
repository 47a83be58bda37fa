package logger

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Attribute helpers return an empty Attr for absent values, so calls like
// log.Debug("msg", logger.Error(err)) need no nil checks.

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Panic creates an attribute for a recovered panic value under the key "panic".
// Returns empty Attr when nothing was recovered.
func Panic(r any) slog.Attr {
	if r == nil {
		return slog.Attr{}
	}
	return slog.String("panic", fmt.Sprint(r))
}

// PayloadType records the Go type of a notification payload.
func PayloadType(v any) slog.Attr {
	return slog.String("payload_type", fmt.Sprintf("%T", v))
}

// Sender records the Go type of the notification sender.
// Returns empty Attr for a nil sender.
func Sender(sender any) slog.Attr {
	if sender == nil {
		return slog.Attr{}
	}
	return slog.String("sender", fmt.Sprintf("%T", sender))
}

// Stack captures and returns the current goroutine's stack trace.
func Stack() slog.Attr {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	return slog.String("stack", string(buf))
}
