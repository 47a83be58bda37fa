// Package observer is a small toolkit for in-process notifications between
// objects, built around a generic, thread-safe notifier.
//
// # Package Organization
//
//   - Utilities: standalone packages with the notification primitive
//   - Core: shared helpers used by the utilities
//
// # Utilities
//
// github.com/dmitrymomot/observer/pkg/notifier - Generic notifier that lets an
// owner expose named events. Subscribers are deduplicated by identity and
// notified in subscription order, synchronously on the caller's goroutine or
// fire-and-forget on a new goroutine. Subscription changes from inside a
// dispatch on the same goroutine fail with ErrReentrantNotification instead of
// deadlocking.
//
// # Core
//
// github.com/dmitrymomot/observer/core/logger - slog attribute helpers and the
// discard logger used as the default by components that log only on request.
package observer
