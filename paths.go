package uiprovider

import "github.com/alnah/go-uiprovider/internal/content"

// CleanPath collapses runs of '/' in a logical path. It is idempotent.
func CleanPath(path string) string {
	return content.CleanPath(path)
}

// PackageFolder returns the folder of a logical path: "/Game/Fonts" for
// "/Game/Fonts/Roboto".
func PackageFolder(path string) string {
	return content.PackageFolder(path)
}

// TrimLeadingSlash removes one leading '/'.
func TrimLeadingSlash(path string) string {
	return content.TrimLeadingSlash(path)
}
