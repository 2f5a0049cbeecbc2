package content

// Loader locates asset files for mount-relative package paths.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type Loader interface {
	// Locate finds the file backing rel (a package path without extension)
	// for the given kind, along with its manifest.
	// Returns ErrNotFound if no such file exists.
	// Returns ErrInvalidPath if rel is not a safe relative path.
	Locate(rel string, kind Kind) (Entry, error)

	// List returns the relative package paths of kind directly inside dir.
	// dir is "" for the loader root.
	List(dir string, kind Kind) ([]string, error)
}

// Entry is a located asset file.
type Entry struct {
	// Name is the loader-relative file name, slash separated.
	Name string

	// DiskPath is the absolute path on disk; empty for embedded entries.
	DiskPath string

	// Manifest holds the sidecar settings, or the zero Manifest.
	Manifest Manifest

	read func() ([]byte, error)
}

// Read returns the entry's bytes in a buffer the caller owns.
func (e Entry) Read() ([]byte, error) {
	if e.read == nil {
		return nil, ErrAssetRead
	}
	return e.read()
}
