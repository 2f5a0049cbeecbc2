package content

import (
	"bytes"
	"fmt"

	"github.com/alnah/go-uiprovider/internal/yamlutil"
)

// ManifestSuffix is appended to an asset's file name to form its manifest.
const ManifestSuffix = ".asset.yaml"

// LoadingPolicy controls where a font face keeps its bytes.
type LoadingPolicy string

const (
	// PolicyLazy keeps only the file path; bytes are read when opened.
	PolicyLazy LoadingPolicy = "lazy"

	// PolicyStream behaves like PolicyLazy for this host.
	PolicyStream LoadingPolicy = "stream"

	// PolicyInline embeds the bytes in the asset record at load time.
	PolicyInline LoadingPolicy = "inline"
)

// Manifest is the optional per-asset sidecar.
type Manifest struct {
	LoadingPolicy LoadingPolicy `yaml:"loadingPolicy"`
	Dependencies  []string      `yaml:"dependencies"`
}

// parseManifest decodes and validates manifest data.
func parseManifest(name string, data []byte) (Manifest, error) {
	var m Manifest
	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}
	if err := yamlutil.Decode(name, data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: %v", ErrManifest, err)
	}
	switch m.LoadingPolicy {
	case "", PolicyLazy, PolicyStream, PolicyInline:
	default:
		return Manifest{}, fmt.Errorf("%w: %s: unknown loadingPolicy %q", ErrManifest, name, m.LoadingPolicy)
	}
	for i, dep := range m.Dependencies {
		m.Dependencies[i] = PackagePath(dep)
	}
	return m, nil
}
