package content

import "errors"

// Sentinel errors for content operations.
var (
	// ErrNotFound indicates no asset backs the requested logical path.
	ErrNotFound = errors.New("asset not found")

	// ErrWrongKind indicates the path is loaded as a different kind of asset.
	ErrWrongKind = errors.New("asset has a different kind")

	// ErrUnknownMount indicates the path is not under any mount point.
	ErrUnknownMount = errors.New("no mount for path")

	// ErrInvalidPath indicates the logical path contains traversal sequences
	// or characters that cannot map onto a file.
	ErrInvalidPath = errors.New("invalid asset path")

	// ErrInvalidMount indicates a mount point is not of the form /Name.
	ErrInvalidMount = errors.New("invalid mount point")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrManifest indicates an asset manifest could not be parsed.
	ErrManifest = errors.New("invalid asset manifest")

	// ErrDecode indicates a texture could not be decoded.
	ErrDecode = errors.New("failed to decode texture")
)
