package uiprovider

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-uiprovider/internal/watch"
)

// EditorSession tracks loaded assets while content is being edited. It
// owns the reverse indexes used to report changes by logical path and
// forwards change events to the providers created with WithEditorSession.
// Events are delivered synchronously, as they arrive.
type EditorSession struct {
	xamls    *ReverseIndex[XamlAsset]
	textures *ReverseIndex[TextureAsset]
	log      *logrus.Logger

	mu               sync.Mutex
	xamlProviders    []*XamlProvider
	textureProviders []*TextureProvider
	fontProviders    []*FontProvider
	watcher          *watch.Watcher
	closed           bool
}

// NewEditorSession creates a session. Only WithLogger applies.
func NewEditorSession(opts ...Option) *EditorSession {
	o := newOptions(opts)
	return &EditorSession{
		xamls:    NewReverseIndex[XamlAsset](),
		textures: NewReverseIndex[TextureAsset](),
		log:      o.log,
	}
}

// XamlIndex returns the markup reverse index.
func (s *EditorSession) XamlIndex() *ReverseIndex[XamlAsset] { return s.xamls }

// TextureIndex returns the texture reverse index.
func (s *EditorSession) TextureIndex() *ReverseIndex[TextureAsset] { return s.textures }

func (s *EditorSession) attachXaml(p *XamlProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.xamlProviders = append(s.xamlProviders, p)
}

func (s *EditorSession) attachTexture(p *TextureProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textureProviders = append(s.textureProviders, p)
}

func (s *EditorSession) attachFont(p *FontProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontProviders = append(s.fontProviders, p)
}

// NotifyChanged forwards a change of handle to the attached providers.
// handle is a XamlAsset, TextureAsset or FontFaceAsset; anything else is
// ignored, as is every call after Close.
func (s *EditorSession) NotifyChanged(handle any) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	xp := append([]*XamlProvider(nil), s.xamlProviders...)
	tp := append([]*TextureProvider(nil), s.textureProviders...)
	fp := append([]*FontProvider(nil), s.fontProviders...)
	s.mu.Unlock()

	switch h := handle.(type) {
	case XamlAsset:
		for _, p := range xp {
			p.OnXamlChanged(h)
		}
	case TextureAsset:
		for _, p := range tp {
			p.OnTextureChanged(h)
		}
	case FontFaceAsset:
		for _, p := range fp {
			p.OnFontChanged(h)
		}
	default:
		s.log.Debugf("editor: ignoring change of %T", handle)
	}
}

// Watch starts watching the directories behind src. Each write to a
// loaded asset reloads it and, if its content changed, notifies the
// providers. Watching stops when ctx is done or the session is closed.
func (s *EditorSession) Watch(ctx context.Context, src *ContentSource) error {
	roots := src.WatchRoots()
	if len(roots) == 0 {
		return ErrNothingToWatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if s.watcher != nil {
		return ErrWatching
	}

	w, err := watch.New(roots, func(diskPath string) {
		if h, changed := src.reload(diskPath); changed {
			s.NotifyChanged(h)
		}
	}, s.log)
	if err != nil {
		return err
	}
	s.watcher = w

	go func() {
		defer func() { _ = w.Close() }()
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.log.WithError(err).Warn("editor: watcher stopped")
		}
	}()

	s.log.WithField("roots", roots).Debug("editor: watching")
	return nil
}

// Close stops watching and clears the reverse indexes. Safe to call more
// than once.
func (s *EditorSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	if s.watcher != nil {
		err = s.watcher.Close()
		s.watcher = nil
	}
	s.xamls.Reset()
	s.textures.Reset()
	return err
}
