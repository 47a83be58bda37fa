package notifier

import (
	"context"
	"log/slog"
	"reflect"
	"slices"

	"github.com/dmitrymomot/observer/core/logger"
)

const component = "notifier"

// Notifier keeps an ordered, deduplicated list of subscribers and delivers
// payloads of type T to them.
//
// A Notifier must not be copied after first use. The zero value is ready to use.
type Notifier[T any] struct {
	mu          reentrantMutex
	subscribers []Callback[T] // guarded by mu
	logger      *slog.Logger
}

// New creates a notifier for payloads of type T.
//
// Example:
//
//	n := notifier.New[int]()
//	_ = n.Subscribe(cb)
//	_ = n.SendNotification(owner, 42)
func New[T any](opts ...Option) *Notifier[T] {
	o := &options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	return &Notifier[T]{logger: o.logger}
}

// Subscribe appends cb to the subscriber list unless it is already there.
// A nil cb is ignored.
//
// Returns ErrReentrantNotification when called from a subscriber of this
// notifier on the dispatching goroutine, and ErrUncomparableCallback when cb
// has no comparable identity. The list is left untouched in both cases.
func (n *Notifier[T]) Subscribe(cb Callback[T]) error {
	if n.mu.heldByCurrentGoroutine() {
		return ErrReentrantNotification
	}
	if cb == nil {
		return nil
	}
	if !reflect.ValueOf(cb).Comparable() {
		return ErrUncomparableCallback
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if !slices.Contains(n.subscribers, cb) {
		n.subscribers = append(n.subscribers, cb)
	}
	return nil
}

// Unsubscribe removes cb from the subscriber list.
// Removing a callback that is not subscribed is a no-op.
//
// Returns ErrReentrantNotification when called from a subscriber of this
// notifier on the dispatching goroutine.
func (n *Notifier[T]) Unsubscribe(cb Callback[T]) error {
	if n.mu.heldByCurrentGoroutine() {
		return ErrReentrantNotification
	}
	if cb == nil || !reflect.ValueOf(cb).Comparable() {
		return nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.subscribers = slices.DeleteFunc(n.subscribers, func(s Callback[T]) bool {
		return s == cb
	})
	return nil
}

// UnsubscribeAll removes every subscriber and releases the references to them.
// The notifier stays usable.
//
// Returns ErrReentrantNotification when called from a subscriber of this
// notifier on the dispatching goroutine.
func (n *Notifier[T]) UnsubscribeAll() error {
	if n.mu.heldByCurrentGoroutine() {
		return ErrReentrantNotification
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.subscribers = nil
	return nil
}

// Len returns the number of subscribers.
func (n *Notifier[T]) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subscribers)
}

// SendNotification delivers payload to every subscriber in subscription order
// on the calling goroutine. The lock is held until all subscribers return, so
// concurrent sends are serialized and concurrent subscription changes wait.
//
// The first subscriber error stops delivery and is returned as is.
// Subscriber panics are not recovered.
func (n *Notifier[T]) SendNotification(sender any, payload T) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, s := range n.subscribers {
		if s == nil {
			continue
		}
		if err := s.OnNotify(sender, payload); err != nil {
			return err
		}
	}
	return nil
}

// SendNotificationAsync runs SendNotification on a new goroutine and returns
// without waiting. Subscriber errors and panics on that goroutine are discarded.
func (n *Notifier[T]) SendNotificationAsync(sender any, payload T) {
	go n.sendDetached(sender, payload)
}

func (n *Notifier[T]) sendDetached(sender any, payload T) {
	log := logger.OrDiscard(n.logger)
	ctx := context.Background()

	defer func() {
		if r := recover(); r != nil && log.Enabled(ctx, slog.LevelDebug) {
			log.LogAttrs(ctx, slog.LevelDebug, "async notification subscriber panicked",
				logger.Component(component),
				logger.Sender(sender),
				logger.PayloadType(payload),
				logger.Panic(r),
				logger.Stack())
		}
	}()

	if err := n.SendNotification(sender, payload); err != nil {
		log.LogAttrs(ctx, slog.LevelDebug, "async notification subscriber failed",
			logger.Component(component),
			logger.Sender(sender),
			logger.PayloadType(payload),
			logger.Error(err))
	}
}
