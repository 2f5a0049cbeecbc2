package uiprovider

import "sync"

// ReverseIndex maps asset handles back to the logical path they were
// loaded from. Each handle has at most one entry; adding it again replaces
// the path. The zero value is ready to use and safe for concurrent use.
//
// H is usually an asset interface type. Its dynamic values must be
// comparable or Add panics, as with any map key.
type ReverseIndex[H comparable] struct {
	mu    sync.RWMutex
	paths map[H]string
}

// NewReverseIndex returns an empty index.
func NewReverseIndex[H comparable]() *ReverseIndex[H] {
	return &ReverseIndex[H]{paths: make(map[H]string)}
}

// Add records path for handle, replacing any earlier path.
func (r *ReverseIndex[H]) Add(handle H, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.paths == nil {
		r.paths = make(map[H]string)
	}
	r.paths[handle] = path
}

// Lookup returns the path recorded for handle.
func (r *ReverseIndex[H]) Lookup(handle H) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	path, ok := r.paths[handle]
	return path, ok
}

// Len returns the number of tracked handles.
func (r *ReverseIndex[H]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.paths)
}

// Reset removes every entry.
func (r *ReverseIndex[H]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.paths)
}
