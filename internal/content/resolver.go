package content

import (
	"errors"
	"sort"
)

// Resolver combines an override loader with a fallback loader.
// When an override is configured, it tries the override first, then falls
// back if the asset is not found there.
type Resolver struct {
	override Loader // nil if no override directory configured
	fallback Loader
}

// NewResolver creates a Resolver over fallback.
// If overridePath is empty, only fallback is used.
// Returns error if overridePath is set but invalid.
func NewResolver(overridePath string, fallback Loader) (*Resolver, error) {
	r := &Resolver{fallback: fallback}

	if overridePath != "" {
		fsLoader, err := NewFilesystemLoader(overridePath)
		if err != nil {
			return nil, err
		}
		r.override = fsLoader
	}

	return r, nil
}

// Locate tries the override loader first if available.
func (r *Resolver) Locate(rel string, kind Kind) (Entry, error) {
	if r.override == nil {
		return r.fallback.Locate(rel, kind)
	}

	entry, err := r.override.Locate(rel, kind)
	if err == nil {
		return entry, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrNotFound) {
		return Entry{}, err
	}

	return r.fallback.Locate(rel, kind)
}

// List merges both listings, override entries first, without duplicates.
func (r *Resolver) List(dir string, kind Kind) ([]string, error) {
	if r.override == nil {
		return r.fallback.List(dir, kind)
	}

	over, overErr := r.override.List(dir, kind)
	if overErr != nil && !errors.Is(overErr, ErrNotFound) {
		return nil, overErr
	}
	base, baseErr := r.fallback.List(dir, kind)
	if baseErr != nil && !errors.Is(baseErr, ErrNotFound) {
		return nil, baseErr
	}
	if overErr != nil && baseErr != nil {
		return nil, baseErr
	}

	seen := make(map[string]bool, len(over)+len(base))
	merged := make([]string, 0, len(over)+len(base))
	for _, names := range [][]string{over, base} {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				merged = append(merged, n)
			}
		}
	}
	sort.Strings(merged)
	return merged, nil
}

// Override returns the override filesystem loader, or nil.
func (r *Resolver) Override() *FilesystemLoader {
	if fsl, ok := r.override.(*FilesystemLoader); ok {
		return fsl
	}
	return nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
