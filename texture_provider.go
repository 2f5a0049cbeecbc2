package uiprovider

import "github.com/sirupsen/logrus"

// TextureProvider resolves textures by logical path.
type TextureProvider struct {
	loader TextureLoader
	opts   options
}

// NewTextureProvider creates a TextureProvider.
func NewTextureProvider(loader TextureLoader, opts ...Option) *TextureProvider {
	p := &TextureProvider{loader: loader, opts: newOptions(opts)}
	if p.opts.session != nil {
		p.opts.session.attachTexture(p)
	}
	return p
}

// GetTextureInfo loads the texture at path and returns its dimensions.
// A missing texture yields the zero TextureInfo. Safe to call without a
// render device.
func (p *TextureProvider) GetTextureInfo(path string) TextureInfo {
	t, ok := p.loader.LoadTexture(CleanPath(path))
	if !ok {
		p.opts.log.WithField("path", path).Debug("texture: not found")
		return TextureInfo{}
	}
	if s := p.opts.session; s != nil {
		s.textures.Add(t, path)
	}

	w, h := t.Size()
	p.opts.log.WithFields(logrus.Fields{"path": path, "width": w, "height": h}).Debug("texture: info")
	return TextureInfo{Width: uint32(w), Height: uint32(h)}
}

// LoadTexture creates a device texture for an already loaded texture. It
// never loads: call GetTextureInfo first. Returns nil if the texture is not
// loaded, device is nil or the device fails.
func (p *TextureProvider) LoadTexture(path string, device RenderDevice) Texture {
	if device == nil {
		p.opts.log.WithField("path", path).Debug("texture: no device")
		return nil
	}
	t, ok := p.loader.FindTexture(CleanPath(path))
	if !ok {
		p.opts.log.WithField("path", path).Debug("texture: not loaded")
		return nil
	}

	tex, err := device.CreateTexture(t)
	if err != nil {
		p.opts.log.WithField("path", path).WithError(err).Warn("texture: device upload failed")
		return nil
	}
	p.opts.log.WithField("path", path).Debug("texture: created")
	return tex
}

// OnTextureChanged raises the change handler with the path t was loaded
// from. Untracked assets are ignored.
func (p *TextureProvider) OnTextureChanged(t TextureAsset) {
	s := p.opts.session
	if s == nil {
		return
	}
	path, ok := s.textures.Lookup(t)
	if !ok {
		return
	}
	p.opts.log.WithField("path", path).Debug("texture: changed")
	if p.opts.onChange != nil {
		p.opts.onChange(path)
	}
}
