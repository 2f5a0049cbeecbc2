package uiprovider

import "github.com/sirupsen/logrus"

// XamlProvider resolves markup by logical path.
type XamlProvider struct {
	loader XamlLoader
	fonts  FontRegistrar
	opts   options
}

// NewXamlProvider creates a XamlProvider. Fonts referenced by loaded markup
// are registered with fonts, which may be nil.
func NewXamlProvider(loader XamlLoader, fonts FontRegistrar, opts ...Option) *XamlProvider {
	if fonts == nil {
		fonts = noFonts{}
	}
	p := &XamlProvider{loader: loader, fonts: fonts, opts: newOptions(opts)}
	if p.opts.session != nil {
		p.opts.session.attachXaml(p)
	}
	return p
}

// LoadXaml returns a stream over the markup at path, or nil if there is no
// such markup. The markup's fonts are registered before it returns. The
// stream borrows the asset's buffer.
func (p *XamlProvider) LoadXaml(path string) Stream {
	x, ok := p.loader.LoadXaml(CleanPath(path))
	if !ok {
		p.opts.log.WithField("path", path).Debug("xaml: not found")
		return nil
	}

	x.RegisterDependencies(p.fonts)
	if s := p.opts.session; s != nil {
		s.xamls.Add(x, path)
	}

	p.opts.log.WithFields(logrus.Fields{"path": path, "bytes": len(x.Text())}).Debug("xaml: loaded")
	return NewMemoryStream(x.Text())
}

// OnXamlChanged raises the change handler with the path x was loaded from.
// Untracked assets are ignored.
func (p *XamlProvider) OnXamlChanged(x XamlAsset) {
	s := p.opts.session
	if s == nil {
		return
	}
	path, ok := s.xamls.Lookup(x)
	if !ok {
		return
	}
	p.opts.log.WithField("path", path).Debug("xaml: changed")
	if p.opts.onChange != nil {
		p.opts.onChange(path)
	}
}
