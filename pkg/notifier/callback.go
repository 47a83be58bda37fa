package notifier

// Callback receives notifications from a Notifier.
type Callback[T any] interface {
	// OnNotify handles a notification. sender is whatever the owner passed to
	// SendNotification and may be nil. A non-nil error stops synchronous delivery.
	OnNotify(sender any, payload T) error
}

// CallbackFunc is the function form of Callback. Wrap it with NewCallback.
type CallbackFunc[T any] func(sender any, payload T) error

// NewCallback wraps fn into a Callback with its own identity.
// Every call returns a distinct subscriber, so keep the result to unsubscribe.
// Returns nil when fn is nil.
func NewCallback[T any](fn CallbackFunc[T]) Callback[T] {
	if fn == nil {
		return nil
	}
	return &funcCallback[T]{fn: fn}
}

type funcCallback[T any] struct {
	fn CallbackFunc[T]
}

var _ Callback[any] = (*funcCallback[any])(nil)

func (c *funcCallback[T]) OnNotify(sender any, payload T) error {
	return c.fn(sender, payload)
}
