package content

import (
	"fmt"
	"strings"
)

// Separator is the logical path separator.
const Separator = "/"

// CleanPath collapses runs of duplicate separators. It is idempotent and
// leaves everything else, including a trailing separator, untouched.
func CleanPath(p string) string {
	if !strings.Contains(p, "//") {
		return p
	}
	var b strings.Builder
	b.Grow(len(p))
	prevSep := false
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '/' {
			if prevSep {
				continue
			}
			prevSep = true
		} else {
			prevSep = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

// PackagePath returns the canonical form of a logical path: duplicate
// separators collapsed, a known file extension stripped, and an object
// suffix repeating the package name ("/A/B.B") stripped.
func PackagePath(p string) string {
	p = CleanPath(p)
	p = strings.TrimSuffix(p, Separator)
	if p == "" {
		return p
	}

	dir, name := splitLast(p)
	if ext := knownExtension(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	if i := strings.IndexByte(name, '.'); i > 0 && name[:i] == name[i+1:] {
		name = name[:i]
	}
	return dir + name
}

// PackageFolder returns the folder containing the package: "/Game/Fonts"
// for "/Game/Fonts/Roboto".
func PackageFolder(p string) string {
	dir, _ := splitLast(PackagePath(p))
	if len(dir) > 1 {
		dir = strings.TrimSuffix(dir, Separator)
	}
	return dir
}

// TrimLeadingSlash removes one leading separator, if present.
func TrimLeadingSlash(p string) string {
	return strings.TrimPrefix(p, Separator)
}

// ValidateRelPath checks that a mount-relative path is safe to map onto a
// file. Returns ErrInvalidPath for empty paths, absolute paths, backslashes,
// NUL bytes, and "." or ".." elements.
func ValidateRelPath(rel string) error {
	if rel == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.HasPrefix(rel, Separator) || strings.ContainsAny(rel, "\\\x00:") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, rel)
	}
	for _, elem := range strings.Split(rel, Separator) {
		if elem == "" || elem == "." || elem == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidPath, rel)
		}
	}
	return nil
}

// validateMountPoint accepts "/Name" with a single non-empty element.
func validateMountPoint(point string) error {
	if !strings.HasPrefix(point, Separator) || len(point) < 2 || strings.Contains(point[1:], Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidMount, point)
	}
	return nil
}

func splitLast(p string) (dir, name string) {
	i := strings.LastIndex(p, Separator)
	return p[:i+1], p[i+1:]
}

func knownExtension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	ext := strings.ToLower(name[i:])
	if _, ok := kindForExtension(ext); ok {
		return name[i:]
	}
	return ""
}
