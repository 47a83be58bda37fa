// Package logger provides slog attribute helpers shared by the observer packages.
//
// Helpers follow the empty Attr pattern: a nil error, nil panic value or nil
// sender yields slog.Attr{}, which slog handlers skip. Components that only log
// on request default to Discard().
//
//	log := logger.OrDiscard(userLogger)
//	log.Debug("async notification failed",
//		logger.Component("notifier"),
//		logger.Error(err),
//	)
package logger
