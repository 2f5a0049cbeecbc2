package fontmatch

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// MaxFontSize bounds the bytes read from one font file.
const MaxFontSize = 64 << 20

var (
	ErrNotFound    = errors.New("fontmatch: font not found")
	ErrInvalidFont = errors.New("fontmatch: invalid font data")
	ErrTooLarge    = errors.New("fontmatch: font too large")
)

// OpenFunc opens a registered font file. It returns nil when the file
// cannot be found.
type OpenFunc func(folder, filename string) io.ReadCloser

// ScanFunc is called once per folder, before the first query against it.
type ScanFunc func(folder string)

type entry struct {
	filename string
	face     Face
}

type folder struct {
	entries []entry
}

// Cache holds the faces of registered font files grouped by folder.
// Folder keys ignore leading and trailing slashes. Safe for concurrent use.
type Cache struct {
	open OpenFunc
	scan ScanFunc
	log  *logrus.Logger

	mu      sync.Mutex
	folders map[string]*folder
	scanned map[string]bool // only used with a scan callback
}

// NewCache creates a Cache. scan may be nil.
func NewCache(open OpenFunc, scan ScanFunc, log *logrus.Logger) *Cache {
	if log == nil {
		log = logrus.New()
	}
	return &Cache{
		open:    open,
		scan:    scan,
		log:     log,
		folders: make(map[string]*folder),
		scanned: make(map[string]bool),
	}
}

// Register opens filename, parses its faces and files them under folder.
// Registering a file again replaces its previous faces. Returns the number
// of faces added.
func (c *Cache) Register(folderName, filename string) (int, error) {
	rc := c.open(folderName, filename)
	if rc == nil {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, filename)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(io.LimitReader(rc, MaxFontSize+1))
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", filename, err)
	}
	if len(data) > MaxFontSize {
		return 0, fmt.Errorf("%w: %s", ErrTooLarge, filename)
	}

	faces, err := ParseFaces(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", filename, err)
	}

	c.add(folderName, filename, faces)
	c.log.WithFields(logrus.Fields{
		"folder": folderKey(folderName),
		"file":   filename,
		"faces":  len(faces),
	}).Debug("fontmatch: registered")
	return len(faces), nil
}

// Remove drops every face of filename. Reports whether any was registered.
func (c *Cache) Remove(filename string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(filename)
}

// Match returns the face of family in folder closest to the request.
func (c *Cache) Match(folderName, family string, weight Weight, stretch Stretch, style Style) (Source, bool) {
	c.ensureScanned(folderName)

	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.familyLocked(folderName, family)
	if len(entries) == 0 {
		return Source{}, false
	}
	faces := make([]Face, len(entries))
	for i, e := range entries {
		faces[i] = e.face
	}
	e := entries[best(faces, weight, stretch, style)]
	return Source{
		Filename:  e.filename,
		FaceIndex: e.face.Index,
		Weight:    e.face.Weight,
		Stretch:   e.face.Stretch,
		Style:     e.face.Style,
	}, true
}

// FamilyExists reports whether any face of family is registered in folder.
func (c *Cache) FamilyExists(folderName, family string) bool {
	c.ensureScanned(folderName)

	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.familyLocked(folderName, family)) > 0
}

// Families returns the sorted family names registered in folder.
func (c *Cache) Families(folderName string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.folders[folderKey(folderName)]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, e := range f.entries {
		if !seen[e.face.Family] {
			seen[e.face.Family] = true
			names = append(names, e.face.Family)
		}
	}
	sort.Strings(names)
	return names
}

func (c *Cache) add(folderName, filename string, faces []Face) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(filename)
	key := folderKey(folderName)
	f, ok := c.folders[key]
	if !ok {
		f = &folder{}
		c.folders[key] = f
	}
	for _, face := range faces {
		f.entries = append(f.entries, entry{filename: filename, face: face})
	}
}

func (c *Cache) removeLocked(filename string) bool {
	removed := false
	for _, f := range c.folders {
		kept := f.entries[:0]
		for _, e := range f.entries {
			if e.filename == filename {
				removed = true
				continue
			}
			kept = append(kept, e)
		}
		f.entries = kept
	}
	return removed
}

func (c *Cache) familyLocked(folderName, family string) []entry {
	f, ok := c.folders[folderKey(folderName)]
	if !ok {
		return nil
	}
	var out []entry
	for _, e := range f.entries {
		if strings.EqualFold(e.face.Family, family) {
			out = append(out, e)
		}
	}
	return out
}

// ensureScanned runs the scan callback without holding the lock so the
// callback may register fonts. Without a callback no state is kept, so
// queries against unknown folders leave the cache untouched.
func (c *Cache) ensureScanned(folderName string) {
	if c.scan == nil {
		return
	}
	key := folderKey(folderName)

	c.mu.Lock()
	if c.scanned[key] {
		c.mu.Unlock()
		return
	}
	c.scanned[key] = true
	c.mu.Unlock()

	c.scan(folderName)
}

func folderKey(folderName string) string {
	return strings.Trim(folderName, "/")
}
