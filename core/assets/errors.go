package assets

import "errors"

// Error variables define the failure scenarios of asset resolution. A rejected
// or unknown path is not an error at the Resolve level; only the strict
// variant and genuine I/O faults surface one.
var (
	// ErrAssetNotFound indicates no embedded or web-root asset matched any
	// alias of the requested path. Returned by ResolveStrict only; Resolve
	// reports absence with a nil asset and nil error.
	ErrAssetNotFound = errors.New("static asset not found")

	// ErrAssetRead indicates a web-root file passed the existence check but
	// could not be read. Deliberately distinct from ErrAssetNotFound: a
	// failed read is an environment fault, not a legitimate absence.
	ErrAssetRead = errors.New("failed to read static asset")

	// ErrWebRootNotDir indicates the configured web root does not exist or
	// is not a directory. Reported at construction so a misconfigured
	// resolver fails fast instead of silently serving nothing from disk.
	ErrWebRootNotDir = errors.New("web root is not a directory")
)
