package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-uiprovider/internal/fileutil"
)

// FilesystemLoader loads assets from a directory on the filesystem.
// Implements Loader interface.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Containment checks compare resolved paths, so resolve the base too.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// Root returns the resolved base directory.
func (f *FilesystemLoader) Root() string {
	return f.basePath
}

// Locate looks for {basePath}/{rel}{ext} for each extension of kind.
func (f *FilesystemLoader) Locate(rel string, kind Kind) (Entry, error) {
	if err := ValidateRelPath(rel); err != nil {
		return Entry{}, err
	}

	for _, ext := range kind.Extensions() {
		filePath := filepath.Join(f.basePath, filepath.FromSlash(rel)+ext)

		if err := f.verifyPathContainment(filePath); err != nil {
			return Entry{}, err
		}

		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Entry{}, fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		if info.IsDir() {
			continue
		}

		manifest, err := f.readManifest(filePath)
		if err != nil {
			return Entry{}, err
		}

		return Entry{
			Name:     rel + ext,
			DiskPath: filePath,
			Manifest: manifest,
			read: func() ([]byte, error) {
				data, err := fileutil.LoadFile(filePath)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
				}
				return data, nil
			},
		}, nil
	}

	return Entry{}, fmt.Errorf("%w: %s %q", ErrNotFound, kind, rel)
}

// List returns package paths of kind directly inside {basePath}/{dir}.
func (f *FilesystemLoader) List(dir string, kind Kind) ([]string, error) {
	dirPath := f.basePath
	if dir != "" {
		if err := ValidateRelPath(dir); err != nil {
			return nil, err
		}
		dirPath = filepath.Join(f.basePath, filepath.FromSlash(dir))
		if err := f.verifyPathContainment(dirPath + string(filepath.Separator)); err != nil {
			return nil, err
		}
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: folder %q", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := fileutil.MatchExtension(e.Name(), kind.Extensions())
		if ext == "" {
			continue
		}
		stem := e.Name()[:len(e.Name())-len(ext)]
		if dir != "" {
			stem = dir + Separator + stem
		}
		names = append(names, stem)
	}
	sort.Strings(names)
	return names, nil
}

// Rel maps a file on disk back to its relative package path and kind.
// Manifest files map to the asset they describe.
func (f *FilesystemLoader) Rel(diskPath string) (string, Kind, bool) {
	abs, err := filepath.Abs(diskPath)
	if err != nil {
		return "", 0, false
	}
	// The base is resolved; resolve the directory too. The file itself may
	// be gone already.
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}
	rel, err := filepath.Rel(f.basePath, abs)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", 0, false
	}
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, ManifestSuffix)

	i := strings.LastIndexByte(rel, '.')
	if i <= 0 {
		return "", 0, false
	}
	kind, ok := kindForExtension(strings.ToLower(rel[i:]))
	if !ok {
		return "", 0, false
	}
	return rel[:i], kind, true
}

func (f *FilesystemLoader) readManifest(filePath string) (Manifest, error) {
	manifestPath := filePath + ManifestSuffix
	data, err := os.ReadFile(manifestPath) // #nosec G304 -- sibling of a containment-checked path
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, nil
		}
		return Manifest{}, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return parseManifest(filepath.Base(manifestPath), data)
}

// verifyPathContainment ensures the resolved file path is within basePath.
// Prevents path traversal even if rel validation is bypassed, including
// escape through symlinks pointing outside basePath.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A missing file fails to open later; the prefix check still applies.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	// Separator suffix prevents /base/path matching /base/pathevil.
	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
