package uiprovider

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// TextureInfo holds texture dimensions. The zero value means the texture
// was not found.
type TextureInfo struct {
	Width  uint32
	Height uint32
}

// IsZero reports whether info is the absent value.
func (i TextureInfo) IsZero() bool {
	return i.Width == 0 && i.Height == 0
}

// Texture is a device texture created from a TextureAsset.
type Texture interface {
	Width() int
	Height() int
}

// RenderDevice creates device textures. Only TextureProvider.LoadTexture
// needs one.
type RenderDevice interface {
	CreateTexture(asset TextureAsset) (Texture, error)
}

var (
	_ RenderDevice = (*ImageDevice)(nil)
	_ Texture      = (*ImageTexture)(nil)
)

// ImageDevice is a software RenderDevice that decodes textures into
// NRGBA images.
type ImageDevice struct {
	// MaxSize bounds the longer side of created textures. Larger images
	// are scaled down. Zero means no limit.
	MaxSize int
}

// ImageTexture is a texture created by ImageDevice.
type ImageTexture struct {
	asset TextureAsset
	img   *image.NRGBA
}

// CreateTexture decodes asset into a new image.
func (d *ImageDevice) CreateTexture(asset TextureAsset) (Texture, error) {
	src, err := asset.Decode()
	if err != nil {
		return nil, fmt.Errorf("creating texture %s: %w", asset.Path(), err)
	}

	b := src.Bounds()
	w, h := fitSize(b.Dx(), b.Dy(), d.MaxSize)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}
	return &ImageTexture{asset: asset, img: dst}, nil
}

func (t *ImageTexture) Width() int  { return t.img.Bounds().Dx() }
func (t *ImageTexture) Height() int { return t.img.Bounds().Dy() }

// Image returns the texture pixels.
func (t *ImageTexture) Image() *image.NRGBA { return t.img }

// Asset returns the asset the texture was created from.
func (t *ImageTexture) Asset() TextureAsset { return t.asset }

// fitSize scales (w, h) so the longer side is at most limit, keeping the
// aspect ratio.
func fitSize(w, h, limit int) (int, int) {
	longer := max(w, h)
	if limit <= 0 || longer <= limit {
		return w, h
	}
	return max(1, w*limit/longer), max(1, h*limit/longer)
}
