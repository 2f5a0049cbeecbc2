package content

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
)

// Mount points.
const (
	// DefaultMountPoint is where Config.Root is mounted when no mount is set.
	DefaultMountPoint = "/Game"

	// EngineMountPoint serves the embedded engine content.
	EngineMountPoint = "/Engine"
)

// Config configures a Store.
type Config struct {
	Root           string // game content directory; empty mounts engine content only
	MountPoint     string // mount point for Root (default: /Game)
	EngineOverride string // directory overlaying engine content (optional)
	Editor         bool   // keep editor-only data: font bytes are always loaded inline
	Logger         *logrus.Logger
}

type mount struct {
	point  string
	loader Loader
	disk   []*FilesystemLoader // watchable directories behind loader
}

// Store resolves logical paths to loaded objects. It keeps at most one live
// object per canonical path, whatever spelling of the path was used.
type Store struct {
	mounts []mount
	editor bool
	log    *logrus.Logger

	mu      sync.RWMutex
	objects map[string]Object
}

// NewStore creates a Store with the engine mount and, if cfg.Root is set,
// a filesystem mount at cfg.MountPoint.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	s := &Store{
		editor:  cfg.Editor,
		log:     cfg.Logger,
		objects: make(map[string]Object),
	}

	if cfg.Root != "" {
		point := cfg.MountPoint
		if point == "" {
			point = DefaultMountPoint
		}
		if err := validateMountPoint(point); err != nil {
			return nil, err
		}
		if point == EngineMountPoint {
			return nil, fmt.Errorf("%w: %s is reserved", ErrInvalidMount, point)
		}
		fsLoader, err := NewFilesystemLoader(cfg.Root)
		if err != nil {
			return nil, err
		}
		s.mounts = append(s.mounts, mount{point: point, loader: fsLoader, disk: []*FilesystemLoader{fsLoader}})
	}

	resolver, err := NewResolver(cfg.EngineOverride, NewEmbeddedLoader())
	if err != nil {
		return nil, err
	}
	engineMount := mount{point: EngineMountPoint, loader: resolver}
	if o := resolver.Override(); o != nil {
		engineMount.disk = []*FilesystemLoader{o}
	}
	s.mounts = append(s.mounts, engineMount)

	return s, nil
}

// Editor reports whether the store keeps editor-only data.
func (s *Store) Editor() bool {
	return s.editor
}

// MountPoints returns the configured mount points.
func (s *Store) MountPoints() []string {
	points := make([]string, 0, len(s.mounts))
	for _, m := range s.mounts {
		points = append(points, m.point)
	}
	return points
}

// WatchRoots returns the directories backing filesystem mounts.
func (s *Store) WatchRoots() []string {
	var roots []string
	for _, m := range s.mounts {
		for _, d := range m.disk {
			roots = append(roots, d.Root())
		}
	}
	return roots
}

// Load returns the object at path, loading it on first use. A miss returns
// an error wrapping ErrNotFound and is not logged above Debug.
func (s *Store) Load(path string, kind Kind) (Object, error) {
	key := PackagePath(path)

	if obj, ok := s.lookup(key); ok {
		return checkKind(obj, kind)
	}

	m, rel, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	entry, err := m.loader.Locate(rel, kind)
	if err != nil {
		return nil, err
	}

	obj := newObject(key, kind)
	if err := s.fill(obj, entry); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if existing, ok := s.objects[key]; ok {
		s.mu.Unlock()
		return checkKind(existing, kind)
	}
	s.objects[key] = obj
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"path": key, "kind": kind, "file": entry.Name}).Debug("content: loaded")
	return obj, nil
}

// LoadXaml loads a markup asset.
func (s *Store) LoadXaml(path string) (*Xaml, error) {
	obj, err := s.Load(path, KindXaml)
	if err != nil {
		return nil, err
	}
	return obj.(*Xaml), nil
}

// LoadTexture loads a texture asset.
func (s *Store) LoadTexture(path string) (*Texture, error) {
	obj, err := s.Load(path, KindTexture)
	if err != nil {
		return nil, err
	}
	return obj.(*Texture), nil
}

// LoadFontFace loads a font face asset.
func (s *Store) LoadFontFace(path string) (*FontFace, error) {
	obj, err := s.Load(path, KindFontFace)
	if err != nil {
		return nil, err
	}
	return obj.(*FontFace), nil
}

// Find returns an already-loaded object of kind. It never loads.
func (s *Store) Find(path string, kind Kind) (Object, bool) {
	obj, ok := s.lookup(PackagePath(path))
	if !ok || obj.Kind() != kind {
		return nil, false
	}
	return obj, true
}

// Reload re-reads a loaded object in place and reports whether its content
// changed. Objects that were never loaded are ignored.
func (s *Store) Reload(path string) (Object, bool, error) {
	key := PackagePath(path)
	obj, ok := s.lookup(key)
	if !ok {
		return nil, false, nil
	}

	m, rel, err := s.resolve(key)
	if err != nil {
		return obj, false, err
	}
	entry, err := m.loader.Locate(rel, obj.Kind())
	if err != nil {
		return obj, false, err
	}

	before := digestOf(obj)
	if err := s.fill(obj, entry); err != nil {
		return obj, false, err
	}
	changed := digestOf(obj) != before

	s.log.WithFields(logrus.Fields{"path": key, "changed": changed}).Debug("content: reloaded")
	return obj, changed, nil
}

// List returns the logical paths of kind directly inside folder.
func (s *Store) List(folder string, kind Kind) ([]string, error) {
	key := strings.TrimSuffix(CleanPath(folder), Separator)
	m, rel, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	names, err := m.loader.List(rel, kind)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = m.point + Separator + n
	}
	return paths, nil
}

// LogicalPath maps a file under a watched root to its logical path.
func (s *Store) LogicalPath(diskPath string) (string, Kind, bool) {
	for _, m := range s.mounts {
		for _, d := range m.disk {
			if rel, kind, ok := d.Rel(diskPath); ok {
				return m.point + Separator + rel, kind, true
			}
		}
	}
	return "", 0, false
}

// Dependencies returns every object x depends on, transitively. Folder
// references contribute all font faces in the folder. Missing references
// are skipped. Cycles between markup assets are visited once.
func (s *Store) Dependencies(x *Xaml) []Object {
	visited := map[string]bool{x.path: true}
	queue := []*Xaml{x}
	var deps []Object

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, ref := range cur.Refs() {
			if ref.Folder {
				deps = append(deps, s.folderFonts(ref, visited)...)
				continue
			}
			if visited[ref.Path] {
				continue
			}
			visited[ref.Path] = true

			obj, err := s.loadAny(ref.Path)
			if err != nil {
				s.log.WithFields(logrus.Fields{"from": cur.path, "ref": ref.Path}).Debug("content: dependency skipped: ", err)
				continue
			}
			deps = append(deps, obj)
			if dx, ok := obj.(*Xaml); ok {
				queue = append(queue, dx)
			}
		}
	}
	return deps
}

func (s *Store) folderFonts(ref Ref, visited map[string]bool) []Object {
	names, err := s.List(ref.Path, KindFontFace)
	if err != nil {
		s.log.WithFields(logrus.Fields{"folder": ref.Path, "family": ref.Family}).Debug("content: font folder skipped: ", err)
		return nil
	}
	var fonts []Object
	for _, name := range names {
		if visited[name] {
			continue
		}
		visited[name] = true
		face, err := s.Load(name, KindFontFace)
		if err != nil {
			s.log.WithField("path", name).Debug("content: font skipped: ", err)
			continue
		}
		fonts = append(fonts, face)
	}
	return fonts
}

func (s *Store) loadAny(path string) (Object, error) {
	if obj, ok := s.lookup(PackagePath(path)); ok {
		return obj, nil
	}
	for _, kind := range allKinds {
		obj, err := s.Load(path, kind)
		if err == nil {
			return obj, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
}

func (s *Store) lookup(key string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	return obj, ok
}

func (s *Store) resolve(key string) (mount, string, error) {
	for _, m := range s.mounts {
		if key == m.point {
			return m, "", nil
		}
		if strings.HasPrefix(key, m.point+Separator) {
			return m, key[len(m.point)+1:], nil
		}
	}
	return mount{}, "", fmt.Errorf("%w: %q", ErrUnknownMount, key)
}

// fill reads entry into obj.
func (s *Store) fill(obj Object, entry Entry) error {
	switch o := obj.(type) {
	case *Xaml:
		data, err := entry.Read()
		if err != nil {
			return err
		}
		refs := make([]Ref, 0, len(entry.Manifest.Dependencies))
		for _, dep := range entry.Manifest.Dependencies {
			refs = append(refs, Ref{Path: dep})
		}
		refs = append(refs, scanRefs(data)...)
		o.update(data, refs, digest(data, entry.Manifest))
		return nil

	case *Texture:
		data, err := entry.Read()
		if err != nil {
			return err
		}
		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDecode, entry.Name, err)
		}
		o.update(data, cfg, format, digest(data, entry.Manifest))
		return nil

	case *FontFace:
		policy := entry.Manifest.LoadingPolicy
		if policy == "" {
			policy = PolicyLazy
		}
		if entry.DiskPath == "" {
			policy = PolicyInline
		}

		if !s.editor && policy != PolicyInline {
			sum, err := statDigest(entry.DiskPath, entry.Manifest)
			if err != nil {
				return err
			}
			o.update(policy, entry.DiskPath, nil, sum)
			return nil
		}

		data, err := entry.Read()
		if err != nil {
			return err
		}
		o.update(policy, entry.DiskPath, data, digest(data, entry.Manifest))
		return nil
	}
	return fmt.Errorf("%w: unsupported object %T", ErrWrongKind, obj)
}

func newObject(key string, kind Kind) Object {
	switch kind {
	case KindTexture:
		return &Texture{path: key}
	case KindFontFace:
		return &FontFace{path: key}
	default:
		return &Xaml{path: key}
	}
}

func checkKind(obj Object, kind Kind) (Object, error) {
	if obj.Kind() != kind {
		return nil, fmt.Errorf("%w: %s is a %s, not a %s", ErrWrongKind, obj.Path(), obj.Kind(), kind)
	}
	return obj, nil
}

func digest(data []byte, m Manifest) uint64 {
	h := xxhash.New()
	_, _ = h.Write(data)
	_, _ = h.WriteString(string(m.LoadingPolicy))
	for _, dep := range m.Dependencies {
		_, _ = h.WriteString("\x00" + dep)
	}
	return h.Sum64()
}

// statDigest fingerprints a file-backed face without reading it.
func statDigest(path string, m Manifest) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return xxhash.Sum64String(fmt.Sprintf("%s|%d|%d|%s", path, info.Size(), info.ModTime().UnixNano(), m.LoadingPolicy)), nil
}
