package assets

import "strings"

// sanitizePath normalizes a raw request path into absolute form and screens
// it for traversal attempts. Query strings and fragments are discarded.
// The second return value is false when the path must be refused; callers
// treat a refused path the same as a miss so the reason is never leaked.
func sanitizePath(raw string) (string, bool) {
	p := raw
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	if i := strings.IndexByte(p, '#'); i >= 0 {
		p = p[:i]
	}

	if p == "" {
		p = "/"
	} else if p[0] != '/' {
		p = "/" + p
	}

	if containsTraversal(p) {
		return "", false
	}

	return p, true
}

// containsTraversal reports whether the path carries a backslash or a ".."
// that forms a whole segment. A ".." embedded in a longer segment, such as
// "/a..b", is not a traversal token.
func containsTraversal(p string) bool {
	if strings.IndexByte(p, '\\') >= 0 {
		return true
	}

	for i := 0; ; {
		j := strings.Index(p[i:], "..")
		if j < 0 {
			return false
		}
		j += i

		before := j == 0 || p[j-1] == '/' || p[j-1] == '\\'
		end := j + 2
		after := end >= len(p) || p[end] == '/' || p[end] == '\\'
		if before && after {
			return true
		}

		i = j + 1
	}
}
