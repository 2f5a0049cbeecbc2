package uiprovider

import (
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-uiprovider/internal/fontmatch"
)

var _ FontRegistrar = (*FontProvider)(nil)

// FontProvider matches and opens fonts. Faces become known only through
// RegisterFont; folders are never scanned.
type FontProvider struct {
	loader FontFaceLoader
	cache  *fontmatch.Cache
	opts   options

	mu   sync.RWMutex
	data map[string]FontData // by face path, fixed at registration
}

// NewFontProvider creates a FontProvider.
func NewFontProvider(loader FontFaceLoader, opts ...Option) *FontProvider {
	p := &FontProvider{
		loader: loader,
		opts:   newOptions(opts),
		data:   make(map[string]FontData),
	}
	p.cache = fontmatch.NewCache(p.openForCache, nil, p.opts.log)
	if p.opts.session != nil {
		p.opts.session.attachFont(p)
	}
	return p
}

// RegisterFont files face under its folder so MatchFont and FamilyExists
// can find it. A nil face is ignored. If face cannot be parsed, any faces
// registered earlier from the same path are dropped.
func (p *FontProvider) RegisterFont(face FontFaceAsset) {
	if face == nil {
		return
	}
	path := face.PathName()
	folder := TrimLeadingSlash(PackageFolder(path))

	p.mu.Lock()
	p.data[path] = face.Data()
	p.mu.Unlock()

	n, err := p.cache.Register(folder, path)
	if err != nil {
		p.cache.Remove(path)
		p.opts.log.WithFields(logrus.Fields{"folder": folder, "path": path}).WithError(err).Warn("font: register failed")
		return
	}
	p.opts.log.WithFields(logrus.Fields{"folder": folder, "path": path, "faces": n}).Debug("font: registered")
}

// MatchFont returns the registered face closest to the request within
// baseURI. The zero FontSource means no match.
func (p *FontProvider) MatchFont(baseURI, family string, weight FontWeight, stretch FontStretch, style FontStyle) FontSource {
	src, ok := p.cache.Match(baseURI, family, weight, stretch, style)
	p.opts.log.WithFields(logrus.Fields{
		"folder": baseURI,
		"family": family,
		"found":  ok,
		"file":   src.Filename,
	}).Debug("font: match")
	return src
}

// FamilyExists reports whether family was registered in baseURI. A leading
// '/' on baseURI is ignored.
func (p *FontProvider) FamilyExists(baseURI, family string) bool {
	folder := strings.TrimPrefix(baseURI, "/")
	ok := p.cache.FamilyExists(folder, family)
	p.opts.log.WithFields(logrus.Fields{"folder": folder, "family": family, "found": ok}).Debug("font: exists")
	return ok
}

// ScanFolder does nothing: fonts must be registered with RegisterFont.
func (p *FontProvider) ScanFolder(folder string) {}

// Families returns the family names registered in folder.
func (p *FontProvider) Families(folder string) []string {
	return p.cache.Families(strings.TrimPrefix(folder, "/"))
}

// OpenFont returns a stream over the bytes of the face at filename, or nil.
// File-backed faces are read from disk and inline faces are copied, so the
// stream always owns its buffer.
func (p *FontProvider) OpenFont(folder, filename string) Stream {
	path := CleanPath(filename)
	face, ok := p.loader.LoadFontFace(path)
	if !ok {
		p.opts.log.WithFields(logrus.Fields{"folder": folder, "file": filename}).Debug("font: not found")
		return nil
	}

	p.mu.RLock()
	data, registered := p.data[face.PathName()]
	p.mu.RUnlock()
	if !registered {
		data = face.Data()
	}
	if data == nil {
		p.opts.log.WithField("file", filename).Debug("font: no data")
		return nil
	}

	buf, err := data.read()
	if err != nil {
		p.opts.log.WithField("file", filename).WithError(err).Warn("font: read failed")
		return nil
	}
	p.opts.log.WithFields(logrus.Fields{"file": filename, "bytes": len(buf)}).Debug("font: opened")
	return ownStream(buf)
}

// OnFontChanged registers face again if it was registered before, so
// matching sees the new file.
func (p *FontProvider) OnFontChanged(face FontFaceAsset) {
	if face == nil {
		return
	}
	p.mu.RLock()
	_, registered := p.data[face.PathName()]
	p.mu.RUnlock()
	if !registered {
		return
	}
	p.opts.log.WithField("path", face.PathName()).Debug("font: changed")
	p.RegisterFont(face)
}

func (p *FontProvider) openForCache(folder, filename string) io.ReadCloser {
	s := p.OpenFont(folder, filename)
	if s == nil {
		return nil
	}
	return s
}
