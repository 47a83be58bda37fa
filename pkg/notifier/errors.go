package notifier

import "errors"

var (
	// ErrReentrantNotification is returned when a subscription is changed by the
	// goroutine that is currently dispatching a notification on the same notifier.
	ErrReentrantNotification = errors.New("attempt to modify notification list from notification goroutine")

	// ErrUncomparableCallback is returned when the callback's dynamic type cannot
	// be compared, so it has no identity to deduplicate or unsubscribe by.
	ErrUncomparableCallback = errors.New("callback is not comparable; use a pointer or NewCallback")
)
