package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/alnah/go-uiprovider/internal/fileutil"
)

//go:embed engine
var engine embed.FS

const engineDir = "engine"

// engineFonts are served as inline font faces under Fonts/.
var engineFonts = map[string][]byte{
	"Fonts/GoRegular":    goregular.TTF,
	"Fonts/GoBold":       gobold.TTF,
	"Fonts/GoItalic":     goitalic.TTF,
	"Fonts/GoBoldItalic": gobolditalic.TTF,
	"Fonts/GoMono":       gomono.TTF,
}

// EmbeddedLoader loads engine content compiled into the binary.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Locate finds an embedded asset. Embedded font faces are always inline.
func (e *EmbeddedLoader) Locate(rel string, kind Kind) (Entry, error) {
	if err := ValidateRelPath(rel); err != nil {
		return Entry{}, err
	}

	if kind == KindFontFace {
		data, ok := engineFonts[rel]
		if !ok {
			return Entry{}, fmt.Errorf("%w: %s %q", ErrNotFound, kind, rel)
		}
		return Entry{
			Name:     rel + ".ttf",
			Manifest: Manifest{LoadingPolicy: PolicyInline},
			read: func() ([]byte, error) {
				return append([]byte(nil), data...), nil
			},
		}, nil
	}

	for _, ext := range kind.Extensions() {
		name := path.Join(engineDir, rel+ext)
		if _, err := fs.Stat(engine, name); err != nil {
			continue
		}

		manifest := Manifest{}
		if data, err := engine.ReadFile(name + ManifestSuffix); err == nil {
			manifest, err = parseManifest(name+ManifestSuffix, data)
			if err != nil {
				return Entry{}, err
			}
		}

		return Entry{
			Name:     rel + ext,
			Manifest: manifest,
			read: func() ([]byte, error) {
				data, err := engine.ReadFile(name)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
				}
				return data, nil
			},
		}, nil
	}

	return Entry{}, fmt.Errorf("%w: %s %q", ErrNotFound, kind, rel)
}

// List returns embedded package paths of kind directly inside dir.
func (e *EmbeddedLoader) List(dir string, kind Kind) ([]string, error) {
	if dir != "" {
		if err := ValidateRelPath(dir); err != nil {
			return nil, err
		}
	}

	var names []string
	if kind == KindFontFace {
		for rel := range engineFonts {
			if parent, _ := splitLast(rel); strings.TrimSuffix(parent, Separator) == dir {
				names = append(names, rel)
			}
		}
		sort.Strings(names)
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: folder %q", ErrNotFound, dir)
		}
		return names, nil
	}

	entries, err := fs.ReadDir(engine, path.Join(engineDir, dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: folder %q", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		ext := fileutil.MatchExtension(ent.Name(), kind.Extensions())
		if ext == "" {
			continue
		}
		stem := ent.Name()[:len(ent.Name())-len(ext)]
		if dir != "" {
			stem = dir + Separator + stem
		}
		names = append(names, stem)
	}
	sort.Strings(names)
	return names, nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
