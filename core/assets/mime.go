package assets

import (
	"path"
	"strings"
)

// contentTypeFor maps a route's extension to its MIME type using a fixed
// table rather than the platform mime registry, so results do not vary with
// host configuration. Gzipped files (".gz") are typed by the inner extension:
// "app.js.gz" is application/javascript, not a generic binary.
func contentTypeFor(route string) string {
	ext := strings.ToLower(path.Ext(route))
	if ext == ".gz" {
		inner := strings.TrimSuffix(route, path.Ext(route))
		ext = strings.ToLower(path.Ext(inner))
	}

	switch ext {
	case ".js", ".mjs":
		return "application/javascript"
	case ".css":
		return "text/css"
	case ".html":
		return "text/html"
	case ".json":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".ico":
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}

// isGzipPath reports whether the route names a gzip-compressed payload.
func isGzipPath(route string) bool {
	return strings.EqualFold(path.Ext(route), ".gz")
}
