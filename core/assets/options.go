package assets

import (
	"log/slog"

	"github.com/dmitrymomot/assetkit/core/logger"
)

// Option configures a Resolver during construction.
type Option func(*Resolver)

// WithWebRoot enables the on-disk fallback: paths that miss the embedded
// manifest are probed against this directory, one stat per alias spelling.
// New fails with ErrWebRootNotDir if the directory does not exist.
func WithWebRoot(dir string) Option {
	return func(r *Resolver) {
		r.webRoot = dir
	}
}

// WithLogger enables debug-level tracing of resolution decisions, tagged
// with the "assets" component. Without it the resolver is silent.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log.With(logger.Component("assets"))
		}
	}
}

// WithMaxToggles overrides DefaultMaxToggles. Paths with more hyphen or
// underscore characters than the limit are probed only in their original
// spelling.
func WithMaxToggles(n int) Option {
	return func(r *Resolver) {
		r.maxToggles = n
	}
}
