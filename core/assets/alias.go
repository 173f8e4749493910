package assets

import (
	"slices"
	"strings"
)

// DefaultMaxToggles bounds alias expansion. Every '-' or '_' in a path doubles
// the candidate count, so a path with more toggle positions than this limit is
// not expanded at all: only the original spelling is probed. Real asset paths
// stay far below the limit; the bound exists to keep hostile inputs from
// forcing a 2^k enumeration.
const DefaultMaxToggles = 20

// CanonicalAlias returns the manifest lookup form of a route: every hyphen
// rewritten as an underscore. It is pure and idempotent and never alters the
// route stored in a resolved asset.
func CanonicalAlias(route string) string {
	return strings.ReplaceAll(route, "-", "_")
}

// ExpandAliases enumerates every hyphen/underscore spelling of path, covering
// build pipelines that rename assets inconsistently ("my-file.js" on disk for
// a requested "/my_file.js"). The result is sorted ascending and free of
// duplicates, so identical inputs always probe candidates in the same order.
func ExpandAliases(path string) []string {
	return expandAliases(path, DefaultMaxToggles)
}

func expandAliases(path string, maxToggles int) []string {
	var toggles []int
	for i := 0; i < len(path); i++ {
		if path[i] == '-' || path[i] == '_' {
			toggles = append(toggles, i)
		}
	}

	if len(toggles) == 0 || len(toggles) > maxToggles {
		return []string{path}
	}

	combinations := 1 << len(toggles)
	seen := make(map[string]struct{}, combinations+1)
	results := make([]string, 0, combinations+1)

	buf := []byte(path)
	for mask := 0; mask < combinations; mask++ {
		for bit, idx := range toggles {
			if mask&(1<<bit) != 0 {
				buf[idx] = '-'
			} else {
				buf[idx] = '_'
			}
		}
		candidate := string(buf)
		if _, dup := seen[candidate]; !dup {
			seen[candidate] = struct{}{}
			results = append(results, candidate)
		}
	}

	// The unmodified path is always a candidate, even though the enumeration
	// already produced it (every toggle position is itself '-' or '_').
	if _, dup := seen[path]; !dup {
		results = append(results, path)
	}

	slices.Sort(results)
	return results
}
