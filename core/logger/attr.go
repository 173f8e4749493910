package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety: a nil error or
// empty string yields an empty Attr that slog drops, so call sites never need
// explicit checks.

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Route records the request or asset path being resolved.
func Route(route string) slog.Attr {
	if route == "" {
		return slog.Attr{}
	}
	return slog.String("route", route)
}

// ContentType records the MIME type of a resolved asset.
func ContentType(ct string) slog.Attr {
	if ct == "" {
		return slog.Attr{}
	}
	return slog.String("content_type", ct)
}

// Origin records where an asset came from, e.g. "embedded" or "filesystem".
func Origin(origin string) slog.Attr {
	if origin == "" {
		return slog.Attr{}
	}
	return slog.String("origin", origin)
}

// Encoding records a content encoding such as "gzip".
func Encoding(enc string) slog.Attr {
	if enc == "" {
		return slog.Attr{}
	}
	return slog.String("encoding", enc)
}

// Component identifies the subsystem emitting the log record.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Size records a payload size in bytes.
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
