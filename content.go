package uiprovider

import (
	"errors"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-uiprovider/internal/content"
)

// Compile-time interface implementation checks.
var (
	_ XamlLoader     = (*ContentSource)(nil)
	_ TextureLoader  = (*ContentSource)(nil)
	_ FontFaceLoader = (*ContentSource)(nil)
	_ XamlAsset      = xamlHandle{}
	_ TextureAsset   = textureHandle{}
	_ FontFaceAsset  = fontFaceHandle{}
)

// Mount points of the bundled content system.
const (
	DefaultMountPoint = content.DefaultMountPoint
	EngineMountPoint  = content.EngineMountPoint
)

// ContentConfig configures OpenContent.
type ContentConfig struct {
	// Root is the game content directory. Empty mounts engine content only.
	Root string

	// MountPoint is where Root appears in logical paths (default "/Game").
	MountPoint string

	// EngineOverride is a directory whose files replace engine content.
	EngineOverride string

	// Editor keeps editor-only data: every font face holds its bytes
	// inline, whatever its loading policy.
	Editor bool

	Logger *logrus.Logger
}

// ContentSource serves assets from a content directory and the embedded
// engine content. It implements XamlLoader, TextureLoader and
// FontFaceLoader. Each logical path maps to one handle for the life of the
// source.
type ContentSource struct {
	store *content.Store
	log   *logrus.Logger
}

// OpenContent creates a ContentSource.
func OpenContent(cfg ContentConfig) (*ContentSource, error) {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	store, err := content.NewStore(content.Config{
		Root:           cfg.Root,
		MountPoint:     cfg.MountPoint,
		EngineOverride: cfg.EngineOverride,
		Editor:         cfg.Editor,
		Logger:         cfg.Logger,
	})
	if err != nil {
		return nil, convertContentError(err)
	}
	return &ContentSource{store: store, log: cfg.Logger}, nil
}

// Editor reports whether the source keeps editor-only data.
func (c *ContentSource) Editor() bool { return c.store.Editor() }

// MountPoints returns the mounted logical roots.
func (c *ContentSource) MountPoints() []string { return c.store.MountPoints() }

// WatchRoots returns the directories an editor session watches.
func (c *ContentSource) WatchRoots() []string { return c.store.WatchRoots() }

func (c *ContentSource) LoadXaml(path string) (XamlAsset, bool) {
	x, err := c.store.LoadXaml(path)
	if err != nil {
		c.miss(path, err)
		return nil, false
	}
	return xamlHandle{x: x, store: c.store}, true
}

func (c *ContentSource) LoadTexture(path string) (TextureAsset, bool) {
	t, err := c.store.LoadTexture(path)
	if err != nil {
		c.miss(path, err)
		return nil, false
	}
	return textureHandle{t: t}, true
}

func (c *ContentSource) FindTexture(path string) (TextureAsset, bool) {
	obj, ok := c.store.Find(path, content.KindTexture)
	if !ok {
		return nil, false
	}
	return textureHandle{t: obj.(*content.Texture)}, true
}

func (c *ContentSource) LoadFontFace(path string) (FontFaceAsset, bool) {
	f, err := c.store.LoadFontFace(path)
	if err != nil {
		c.miss(path, err)
		return nil, false
	}
	return fontFaceHandle{f: f}, true
}

// ListFontFaces returns the logical paths of the font faces in folder.
func (c *ContentSource) ListFontFaces(folder string) ([]string, error) {
	paths, err := c.store.List(folder, content.KindFontFace)
	if err != nil {
		return nil, convertContentError(err)
	}
	return paths, nil
}

// RegisterFonts loads every font face in folder and registers it with reg.
// Returns the number of faces registered.
func (c *ContentSource) RegisterFonts(folder string, reg FontRegistrar) (int, error) {
	paths, err := c.ListFontFaces(folder)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range paths {
		face, ok := c.LoadFontFace(p)
		if !ok {
			continue
		}
		reg.RegisterFont(face)
		n++
	}
	return n, nil
}

// reload re-reads the asset backed by diskPath. It returns the asset
// handle when a loaded asset changed.
func (c *ContentSource) reload(diskPath string) (any, bool) {
	path, _, ok := c.store.LogicalPath(diskPath)
	if !ok {
		return nil, false
	}
	obj, changed, err := c.store.Reload(path)
	if err != nil {
		c.log.WithFields(logrus.Fields{"path": path, "file": diskPath}).WithError(err).Warn("content: reload failed")
		return nil, false
	}
	if obj == nil || !changed {
		return nil, false
	}
	return c.handle(obj), true
}

func (c *ContentSource) handle(obj content.Object) any {
	switch o := obj.(type) {
	case *content.Xaml:
		return xamlHandle{x: o, store: c.store}
	case *content.Texture:
		return textureHandle{t: o}
	case *content.FontFace:
		return fontFaceHandle{f: o}
	}
	return nil
}

// miss logs a failed lookup. Not-found is expected and stays at Debug.
func (c *ContentSource) miss(path string, err error) {
	entry := c.log.WithField("path", path).WithError(err)
	if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrUnknownMount) {
		entry.Debug("content: miss")
		return
	}
	entry.Warn("content: load failed")
}

// Handles are small comparable values so they can key a ReverseIndex.

type xamlHandle struct {
	x     *content.Xaml
	store *content.Store
}

func (h xamlHandle) Path() string { return h.x.Path() }
func (h xamlHandle) Text() []byte { return h.x.Text() }

// RegisterDependencies registers every font face the markup depends on,
// directly or through other markup.
func (h xamlHandle) RegisterDependencies(reg FontRegistrar) {
	for _, dep := range h.store.Dependencies(h.x) {
		if f, ok := dep.(*content.FontFace); ok {
			reg.RegisterFont(fontFaceHandle{f: f})
		}
	}
}

type textureHandle struct {
	t *content.Texture
}

func (h textureHandle) Path() string     { return h.t.Path() }
func (h textureHandle) Size() (int, int) { return h.t.Size() }
func (h textureHandle) Format() string   { return h.t.Format() }

func (h textureHandle) Decode() (image.Image, error) {
	img, err := h.t.Decode()
	if err != nil {
		return nil, convertContentError(err)
	}
	return img, nil
}

type fontFaceHandle struct {
	f *content.FontFace
}

func (h fontFaceHandle) PathName() string { return h.f.Path() }

// Data returns inline bytes when the face holds them, and the backing file
// otherwise.
func (h fontFaceHandle) Data() FontData {
	if data, ok := h.f.InlineData(); ok {
		return InlineFontData(data)
	}
	if name := h.f.Filename(); name != "" {
		return FileFontData(name)
	}
	return nil
}
