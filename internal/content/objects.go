package content

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Object is a loaded asset owned by a Store.
type Object interface {
	// Path returns the canonical logical path.
	Path() string
	Kind() Kind
}

// Xaml is a loaded markup asset.
type Xaml struct {
	path string

	mu     sync.RWMutex
	text   []byte
	refs   []Ref
	digest uint64
}

func (x *Xaml) Path() string { return x.path }
func (x *Xaml) Kind() Kind   { return KindXaml }

// Text returns the markup bytes. The slice is shared with the store and
// must not be modified; a reload swaps in a new slice.
func (x *Xaml) Text() []byte {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.text
}

// Refs returns the declared and discovered dependencies.
func (x *Xaml) Refs() []Ref {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return append([]Ref(nil), x.refs...)
}

func (x *Xaml) update(text []byte, refs []Ref, digest uint64) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.text, x.refs, x.digest = text, refs, digest
}

// Texture is a loaded image asset.
type Texture struct {
	path string

	mu     sync.RWMutex
	data   []byte
	width  int
	height int
	format string
	digest uint64
}

func (t *Texture) Path() string { return t.path }
func (t *Texture) Kind() Kind   { return KindTexture }

// Size returns the image dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.width, t.height
}

// Format returns the decoder name, e.g. "png".
func (t *Texture) Format() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.format
}

// Decode decodes the full image.
func (t *Texture) Decode() (image.Image, error) {
	t.mu.RLock()
	data := t.data
	t.mu.RUnlock()

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, t.path, err)
	}
	return img, nil
}

func (t *Texture) update(data []byte, cfg image.Config, format string, digest uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data, t.width, t.height, t.format, t.digest = data, cfg.Width, cfg.Height, format, digest
}

// FontFace is a loaded font asset. Depending on the loading policy and the
// store mode, its bytes are held inline or only its backing file is known.
type FontFace struct {
	path string

	mu       sync.RWMutex
	policy   LoadingPolicy
	filename string
	data     []byte
	digest   uint64
}

func (f *FontFace) Path() string { return f.path }
func (f *FontFace) Kind() Kind   { return KindFontFace }

// LoadingPolicy returns the policy from the manifest (lazy by default).
func (f *FontFace) LoadingPolicy() LoadingPolicy {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.policy
}

// Filename returns the backing file on disk, or "" for embedded faces.
func (f *FontFace) Filename() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.filename
}

// InlineData returns the bytes held in the asset record, if any. The slice
// is shared with the store and must not be modified.
func (f *FontFace) InlineData() ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.data, f.data != nil
}

func (f *FontFace) update(policy LoadingPolicy, filename string, data []byte, digest uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.policy, f.filename, f.data, f.digest = policy, filename, data, digest
}

func digestOf(obj Object) uint64 {
	switch o := obj.(type) {
	case *Xaml:
		o.mu.RLock()
		defer o.mu.RUnlock()
		return o.digest
	case *Texture:
		o.mu.RLock()
		defer o.mu.RUnlock()
		return o.digest
	case *FontFace:
		o.mu.RLock()
		defer o.mu.RUnlock()
		return o.digest
	}
	return 0
}
