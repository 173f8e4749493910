package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrymomot/assetkit/core/logger"
)

// ResolvedAsset is the outcome of a successful resolution. It owns its Body:
// embedded hits copy the manifest bytes, so callers may mutate the slice
// freely without corrupting subsequent resolutions.
type ResolvedAsset struct {
	Route          string
	ContentType    string
	Encoding       string // "gzip" or empty
	Body           []byte
	ImmutableCache bool // true only for embedded assets, which cannot change at runtime
}

// Resolver maps request paths to static assets, preferring the embedded
// manifest and falling back to an optional on-disk web root. It is immutable
// after New and safe for concurrent use; Resolve holds no state between
// calls, so every call re-reads the web root and re-copies embedded bytes.
type Resolver struct {
	webRoot    string
	index      map[string]*EmbeddedAsset
	maxToggles int
	log        *slog.Logger
}

// New builds a Resolver from embedded-asset descriptors. With no WithWebRoot
// option the resolver runs embedded-only. When two descriptors canonicalize
// to the same manifest key (e.g. "/a-b.js" and "/a_b.js"), the one supplied
// last wins; rely on this only deliberately.
func New(manifest []EmbeddedAsset, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		index:      buildIndex(manifest),
		maxToggles: DefaultMaxToggles,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.webRoot != "" {
		r.webRoot = filepath.Clean(r.webRoot)
		info, err := os.Stat(r.webRoot)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrWebRootNotDir, r.webRoot)
		}
	}

	return r, nil
}

// Resolve maps a raw request path to an asset. Absence is not an error: a
// rejected (traversal), unknown, or unmatched path yields (nil, nil), leaving
// the 404 policy to the caller. A non-nil error means a web-root file existed
// but could not be read.
//
// The pipeline is fixed: sanitize, then embedded lookup on the canonical
// alias, then the web root probed once per alias in sorted order. An embedded
// asset always shadows an on-disk file at the same logical path.
func (r *Resolver) Resolve(requestPath string) (*ResolvedAsset, error) {
	start := time.Now()

	sanitized, ok := sanitizePath(requestPath)
	if !ok {
		r.trace("request path rejected", logger.Route(requestPath))
		return nil, nil
	}

	if resolved := r.resolveEmbedded(sanitized); resolved != nil {
		r.trace("resolved embedded asset",
			logger.Route(resolved.Route),
			logger.ContentType(resolved.ContentType),
			logger.Encoding(resolved.Encoding),
			logger.Origin("embedded"),
			logger.Size(len(resolved.Body)),
			logger.Elapsed(start),
		)
		return resolved, nil
	}

	resolved, err := r.resolveFilesystem(sanitized)
	if err != nil {
		r.trace("web root read failed", logger.Route(sanitized), logger.Error(err))
		return nil, err
	}
	if resolved != nil {
		r.trace("resolved web root asset",
			logger.Route(resolved.Route),
			logger.ContentType(resolved.ContentType),
			logger.Encoding(resolved.Encoding),
			logger.Origin("filesystem"),
			logger.Size(len(resolved.Body)),
			logger.Elapsed(start),
		)
		return resolved, nil
	}

	return nil, nil
}

// ResolveStrict behaves like Resolve but reports absence as ErrAssetNotFound,
// for call sites where a missing asset is a bug rather than a routine 404.
func (r *Resolver) ResolveStrict(requestPath string) (*ResolvedAsset, error) {
	resolved, err := r.Resolve(requestPath)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, requestPath)
	}
	return resolved, nil
}

func (r *Resolver) resolveEmbedded(request string) *ResolvedAsset {
	asset, ok := r.index[CanonicalAlias(request)]
	if !ok {
		return nil
	}

	resolved := &ResolvedAsset{
		Route:          asset.Route,
		ContentType:    asset.ContentType,
		Body:           append([]byte(nil), asset.Data...),
		ImmutableCache: true,
	}
	if asset.GzipEncoded {
		resolved.Encoding = "gzip"
	}
	return resolved
}

func (r *Resolver) resolveFilesystem(request string) (*ResolvedAsset, error) {
	if r.webRoot == "" {
		return nil, nil
	}

	for _, alias := range expandAliases(request, r.maxToggles) {
		if alias == "" || alias[0] != '/' {
			continue
		}

		// Each alias is probed as-is and then as its gzipped twin, so a tree
		// holding only "script.js.gz" still answers "/script.js".
		probes := []string{alias}
		if !isGzipPath(alias) {
			probes = append(probes, alias+".gz")
		}

		for _, probe := range probes {
			candidate := filepath.Join(r.webRoot, filepath.FromSlash(probe[1:]))
			info, err := os.Stat(candidate)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}

			body, err := os.ReadFile(candidate)
			if err != nil {
				// The file was present a moment ago: surface the fault
				// instead of conflating it with a miss.
				return nil, fmt.Errorf("%w: %s: %w", ErrAssetRead, probe, err)
			}

			resolved := &ResolvedAsset{
				Route:       probe,
				ContentType: contentTypeFor(probe),
				Body:        body,
			}
			if isGzipPath(probe) {
				resolved.Encoding = "gzip"
			}
			return resolved, nil
		}
	}

	return nil, nil
}

func (r *Resolver) trace(msg string, attrs ...any) {
	if r.log == nil {
		return
	}
	r.log.Debug(msg, attrs...)
}
