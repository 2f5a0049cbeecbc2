package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	uiprovider "github.com/alnah/go-uiprovider"
)

// runTexture prints the size of the texture at a logical path and, with
// --load, creates it on the software device.
func runTexture(args []string, env *Environment) error {
	flags, positional, err := parseTextureFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: texture takes exactly one path", ErrUsage)
	}
	if flags.maxSize < 0 {
		return fmt.Errorf("%w: --max-size must not be negative", ErrUsage)
	}
	path := positional[0]

	s, err := openSession(&flags.common, env)
	if err != nil {
		return err
	}

	textures := uiprovider.NewTextureProvider(s.src, uiprovider.WithLogger(s.log))
	info := textures.GetTextureInfo(path)
	if info.IsZero() {
		return s.notFound(path)
	}
	fmt.Fprintf(env.Stdout, "%s\t%dx%d\n", path, info.Width, info.Height)

	if !flags.load {
		return nil
	}

	maxSize := flags.maxSize
	if maxSize == 0 {
		maxSize = s.cfg.Texture.MaxSize
	}
	device := &uiprovider.ImageDevice{MaxSize: maxSize}
	tex := textures.LoadTexture(path, device)
	if tex == nil {
		return fmt.Errorf("%w: %s", uiprovider.ErrDecode, path)
	}

	size := uint64(tex.Width()) * uint64(tex.Height()) * 4
	if img, ok := tex.(*uiprovider.ImageTexture); ok {
		size = uint64(len(img.Image().Pix))
	}
	fmt.Fprintf(env.Stdout, "created\t%dx%d\t%s\n", tex.Width(), tex.Height(), humanize.Bytes(size))
	return nil
}
