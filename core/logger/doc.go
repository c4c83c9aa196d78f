// Package logger provides slog attribute helpers shared across the SDK.
//
// Helpers return the empty Attr for zero values, so callers never need nil
// checks:
//
//	log.LogAttrs(ctx, slog.LevelWarn, "refresh failed",
//		logger.Component("auth"),
//		logger.Error(err),
//	)
package logger
