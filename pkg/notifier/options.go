package notifier

import "log/slog"

// Option configures a Notifier.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives debug records for subscriber errors
// and panics during asynchronous dispatch. By default they are discarded silently.
//
// Example:
//
//	n := notifier.New[string](
//	    notifier.WithLogger(slog.Default()),
//	)
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
