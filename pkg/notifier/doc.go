// Package notifier provides a generic, thread-safe notification primitive that
// lets an owner expose named events and broadcast typed payloads to subscribers.
//
// # Usage
//
// The owner creates one Notifier per event and exposes it:
//
//	type Scanner struct {
//		DeviceFound *notifier.Notifier[Device]
//	}
//
//	func NewScanner() *Scanner {
//		return &Scanner{DeviceFound: notifier.New[Device]()}
//	}
//
//	func (s *Scanner) found(d Device) {
//		_ = s.DeviceFound.SendNotification(s, d)
//	}
//
// Subscribers implement Callback, or wrap a function with NewCallback:
//
//	cb := notifier.NewCallback(func(sender any, d Device) error {
//		fmt.Println("found", d.Name)
//		return nil
//	})
//	_ = scanner.DeviceFound.Subscribe(cb)
//	defer scanner.DeviceFound.Unsubscribe(cb)
//
// # Identity
//
// Subscriptions are keyed by callback identity: Go interface equality, which is
// pointer equality for pointer receivers. Subscribing the same callback twice has
// no effect. Keep the value returned by NewCallback to unsubscribe later.
//
// # Dispatch
//
// SendNotification invokes every subscriber in subscription order on the calling
// goroutine, holding the notifier's lock for the whole dispatch. The first error
// returned by a subscriber stops delivery and is returned to the caller; panics
// propagate the same way.
//
// SendNotificationAsync runs the same dispatch on a new goroutine and returns
// immediately. Nothing is returned to wait on, and subscriber errors and panics
// on that goroutine are discarded. They are visible only as debug records on the
// logger set with WithLogger.
//
// # Deadlock avoidance
//
// The lock is re-entrant for the goroutine holding it, so a subscriber may read
// Len or send another notification on the same notifier. Subscribe, Unsubscribe
// and UnsubscribeAll called from that goroutine would change the list being
// iterated; they fail with ErrReentrantNotification instead. Other goroutines
// block until the dispatch finishes.
package notifier
