// Package assets resolves request paths to servable static assets, choosing
// between an embedded manifest compiled into the binary and an optional
// on-disk web root. It is the lookup core only: an owning server maps HTTP
// requests onto Resolve and ResolvedAsset fields onto response headers.
//
// # Resolution Pipeline
//
// Every call runs the same three stages:
//
//  1. Sanitize: strip query/fragment, force a leading slash, refuse
//     backslashes and ".." segments. A refused path resolves to nothing,
//     indistinguishable from a miss.
//  2. Embedded lookup: the sanitized path is canonicalized (hyphens become
//     underscores) and matched against the manifest index. Embedded assets
//     always win over on-disk files at the same logical path.
//  3. Web root probe: every hyphen/underscore spelling of the path is tried
//     against the web root in sorted order, each spelling followed by its
//     ".gz" twin; the first regular file wins.
//
// # Alias Expansion
//
// Build pipelines disagree about "-" versus "_" in asset filenames, so a
// request for "/my_file.js" may need to find "my-file.js" on disk. The
// expander enumerates all spellings over the toggle positions (bounded by
// DefaultMaxToggles) and sorts them, making the probe order deterministic.
//
// # Basic Usage
//
//	//go:embed dist
//	var dist embed.FS
//
//	sub, _ := fs.Sub(dist, "dist")
//	manifest, err := assets.ManifestFromFS(sub)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resolver, err := assets.New(manifest, assets.WithWebRoot("./public"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resolved, err := resolver.Resolve("/app.js?v=3")
//	switch {
//	case err != nil:
//		// web-root read fault, not a 404
//	case resolved == nil:
//		// not found
//	default:
//		// resolved.ContentType, resolved.Encoding, resolved.Body
//	}
//
// ResolveStrict is the loud variant: absence comes back as ErrAssetNotFound
// instead of a nil asset.
//
// # Caching Semantics
//
// The resolver never caches between calls: embedded bytes are re-copied and
// the web root is re-read every time, keeping development trees fresh at the
// cost of repeated reads. ResolvedAsset.ImmutableCache tells the caller which
// cache policy to advertise: embedded assets cannot change while the process
// lives (immutable), web-root files can (no long-lived caching).
//
// # Concurrency
//
// A Resolver is immutable after New and safe for concurrent use without
// locking. File reads block; run Resolve off latency-sensitive goroutines if
// that matters to the host.
package assets
