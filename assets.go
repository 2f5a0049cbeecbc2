package uiprovider

import (
	"bytes"
	"fmt"
	"image"

	"github.com/alnah/go-uiprovider/internal/fileutil"
)

// Asset handles are owned by the host content system. Providers keep them
// only as reverse index keys, so implementations must be comparable.

// XamlAsset is a loaded markup asset.
type XamlAsset interface {
	// Path returns the canonical logical path.
	Path() string

	// Text returns the raw markup. Callers must not modify it.
	Text() []byte

	// RegisterDependencies makes the fonts the markup refers to known to
	// reg. It runs before the markup is handed to the middleware.
	RegisterDependencies(reg FontRegistrar)
}

// TextureAsset is a loaded image asset.
type TextureAsset interface {
	Path() string

	// Size returns the image dimensions in pixels.
	Size() (width, height int)

	// Decode decodes the full image.
	Decode() (image.Image, error)
}

// FontFaceAsset is a loaded font file.
type FontFaceAsset interface {
	// PathName returns the canonical logical path.
	PathName() string

	// Data reports where the face keeps its bytes.
	Data() FontData
}

// FontRegistrar accepts font faces for matching.
type FontRegistrar interface {
	RegisterFont(face FontFaceAsset)
}

// XamlLoader loads markup by canonical path. A miss returns false and is
// not an error.
type XamlLoader interface {
	LoadXaml(path string) (XamlAsset, bool)
}

// TextureLoader loads textures by canonical path.
type TextureLoader interface {
	// LoadTexture loads the texture if needed.
	LoadTexture(path string) (TextureAsset, bool)

	// FindTexture returns the texture only if it is already loaded.
	FindTexture(path string) (TextureAsset, bool)
}

// FontFaceLoader loads font faces by canonical path.
type FontFaceLoader interface {
	LoadFontFace(path string) (FontFaceAsset, bool)
}

// FontData is where a font face keeps its bytes: InlineFontData or
// FileFontData. The variant is fixed when the face is registered.
type FontData interface {
	// read returns a buffer owned by the caller.
	read() ([]byte, error)
}

// InlineFontData holds the font bytes in the asset record.
type InlineFontData []byte

// FileFontData names the file that holds the font bytes.
type FileFontData string

func (d InlineFontData) read() ([]byte, error) {
	return bytes.Clone(d), nil
}

func (d FileFontData) read() ([]byte, error) {
	data, err := fileutil.LoadFile(string(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return data, nil
}

// noFonts discards registrations.
type noFonts struct{}

func (noFonts) RegisterFont(FontFaceAsset) {}
