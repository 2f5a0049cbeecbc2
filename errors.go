package uiprovider

import (
	"errors"

	"github.com/alnah/go-uiprovider/internal/content"
)

// Sentinel errors for library operations. Provider lookups never return
// errors; these come from opening content and running editor sessions.
var (
	// Content errors.
	ErrNotFound        = errors.New("asset not found")
	ErrWrongKind       = errors.New("asset has a different kind")
	ErrInvalidPath     = errors.New("invalid asset path")
	ErrInvalidRoot     = errors.New("invalid content root")
	ErrInvalidMount    = errors.New("invalid mount point")
	ErrInvalidManifest = errors.New("invalid asset manifest")
	ErrAssetRead       = errors.New("failed to read asset")
	ErrDecode          = errors.New("failed to decode asset")

	// Stream errors.
	ErrStreamClosed = errors.New("stream closed")

	// Editor session errors.
	ErrSessionClosed  = errors.New("editor session closed")
	ErrWatching       = errors.New("editor session already watching")
	ErrNothingToWatch = errors.New("content has no directories to watch")
)

// convertContentError maps internal content errors to public errors.
func convertContentError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isError(err, content.ErrNotFound), isError(err, content.ErrUnknownMount):
		return wrapError(ErrNotFound, err)
	case isError(err, content.ErrWrongKind):
		return wrapError(ErrWrongKind, err)
	case isError(err, content.ErrInvalidPath), isError(err, content.ErrPathTraversal):
		return wrapError(ErrInvalidPath, err)
	case isError(err, content.ErrInvalidBasePath):
		return wrapError(ErrInvalidRoot, err)
	case isError(err, content.ErrInvalidMount):
		return wrapError(ErrInvalidMount, err)
	case isError(err, content.ErrManifest):
		return wrapError(ErrInvalidManifest, err)
	case isError(err, content.ErrAssetRead):
		return wrapError(ErrAssetRead, err)
	case isError(err, content.ErrDecode):
		return wrapError(ErrDecode, err)
	default:
		return err
	}
}

// isError checks if err wraps or equals target using errors.Is semantics.
func isError(err, target error) bool {
	return errors.Is(err, target)
}

// wrapError creates an error that keeps the original message and matches
// the public sentinel with errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedContentError{sentinel: sentinel, original: original}
}

type wrappedContentError struct {
	sentinel error
	original error
}

func (e *wrappedContentError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedContentError) Unwrap() error {
	return e.sentinel
}
