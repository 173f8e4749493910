// Package logger provides slog attribute helpers for the asset toolkit.
// Helpers are nil-safe: passing a nil error or empty string produces an empty
// Attr, which slog silently drops, so logging code stays free of nil checks.
//
// Usage:
//
//	log.Debug("resolved web root asset",
//		logger.Route("/app.js"),
//		logger.ContentType("application/javascript"),
//		logger.Origin("filesystem"),
//	)
//
// The package deliberately adds no handler or factory layer: construct
// loggers with slog directly and pass them where needed.
package logger
