package assets

import (
	"fmt"
	"io/fs"
	"path"
)

// EmbeddedAsset describes a static file whose bytes are compiled into the
// binary, independent of any on-disk web root. Descriptors are supplied to
// New and never mutated afterwards.
type EmbeddedAsset struct {
	Route       string // request path the asset answers to, e.g. "/app.js"
	ContentType string // MIME type reported to the caller
	GzipEncoded bool   // Data holds a gzip stream; caller must send Content-Encoding
	Data        []byte
}

// buildIndex keys each descriptor by the canonical alias of its route, making
// embedded lookup insensitive to hyphen/underscore spelling. When two routes
// canonicalize to the same key, the later descriptor wins; New documents this
// as the tie-break.
func buildIndex(manifest []EmbeddedAsset) map[string]*EmbeddedAsset {
	index := make(map[string]*EmbeddedAsset, len(manifest))
	for i := range manifest {
		index[CanonicalAlias(manifest[i].Route)] = &manifest[i]
	}
	return index
}

// ManifestFromFS walks a filesystem, typically an embed.FS subtree, and
// builds one descriptor per regular file. Routes are the slash-prefixed file
// paths. Files ending in ".gz" are registered under the uncompressed route
// with GzipEncoded set, so "app.js.gz" in the tree answers "/app.js" with a
// gzip body; their content type comes from the inner extension.
//
//	//go:embed dist
//	var dist embed.FS
//
//	sub, _ := fs.Sub(dist, "dist")
//	manifest, err := assets.ManifestFromFS(sub)
//	resolver, err := assets.New(manifest)
func ManifestFromFS(fsys fs.FS) ([]EmbeddedAsset, error) {
	var manifest []EmbeddedAsset

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading embedded file %q: %w", p, err)
		}

		route := "/" + p
		gzipped := isGzipPath(route)
		if gzipped {
			route = route[:len(route)-len(path.Ext(route))]
		}

		manifest = append(manifest, EmbeddedAsset{
			Route:       route,
			ContentType: contentTypeFor(route),
			GzipEncoded: gzipped,
			Data:        data,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return manifest, nil
}
