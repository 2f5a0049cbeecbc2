// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrFileTooLarge = errors.New("file exceeds maximum size")
	ErrNotRegular   = errors.New("not a regular file")
)

// MaxFileSize bounds LoadFile reads. Font and texture files above this are
// rejected rather than pulled into memory.
var MaxFileSize int64 = 256 << 20

// LoadFile reads a whole regular file into a freshly allocated buffer that
// the caller owns.
func LoadFile(path string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- callers pass containment-checked paths
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s (%d bytes, max %d)", ErrFileTooLarge, path, info.Size(), MaxFileSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s grew while reading", ErrFileTooLarge, path)
	}
	return data, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "studio" -> false (name)
//   - "./uiassets.yaml" -> true (relative path)
//   - "/etc/uiassets.yaml" -> true (absolute)
//   - "C:\config\uiassets.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// MatchExtension returns the entry of exts matching the extension of name,
// compared case-insensitively, or "" if none does.
func MatchExtension(name string, exts []string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	for _, e := range exts {
		if e == ext {
			return e
		}
	}
	return ""
}
