package content

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestEmbeddedLoader_Locate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("default theme", func(t *testing.T) {
		t.Parallel()

		entry, err := loader.Locate("Theme/Default", KindXaml)
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}
		data, err := entry.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if !bytes.Contains(data, []byte("ResourceDictionary")) {
			t.Error("default theme does not look like a resource dictionary")
		}
		if entry.DiskPath != "" {
			t.Errorf("DiskPath = %q, want empty for embedded entry", entry.DiskPath)
		}
	})

	t.Run("engine font is inline", func(t *testing.T) {
		t.Parallel()

		entry, err := loader.Locate("Fonts/GoRegular", KindFontFace)
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}
		if entry.Manifest.LoadingPolicy != PolicyInline {
			t.Errorf("LoadingPolicy = %q, want inline", entry.Manifest.LoadingPolicy)
		}
		data, err := entry.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if !bytes.Equal(data, goregular.TTF) {
			t.Error("embedded font bytes differ from goregular.TTF")
		}
		data[0] ^= 0xff
		if bytes.Equal(data, goregular.TTF) {
			t.Error("Read() returned the shared font buffer")
		}
	})

	tests := []struct {
		name    string
		rel     string
		kind    Kind
		wantErr error
	}{
		{"missing markup", "Theme/Nope", KindXaml, ErrNotFound},
		{"missing font", "Fonts/Nope", KindFontFace, ErrNotFound},
		{"traversal", "../secret", KindXaml, ErrInvalidPath},
		{"empty", "", KindXaml, ErrInvalidPath},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := loader.Locate(tt.rel, tt.kind)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Locate(%q) error = %v, want %v", tt.rel, err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedLoader_List(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	fonts, err := loader.List("Fonts", KindFontFace)
	if err != nil {
		t.Fatalf("List(Fonts) error = %v", err)
	}
	if len(fonts) != len(engineFonts) {
		t.Errorf("List(Fonts) returned %d faces, want %d", len(fonts), len(engineFonts))
	}

	themes, err := loader.List("Theme", KindXaml)
	if err != nil {
		t.Fatalf("List(Theme) error = %v", err)
	}
	if len(themes) != 1 || themes[0] != "Theme/Default" {
		t.Errorf("List(Theme) = %v, want [Theme/Default]", themes)
	}

	if _, err := loader.List("Nowhere", KindFontFace); !errors.Is(err, ErrNotFound) {
		t.Errorf("List(Nowhere) error = %v, want ErrNotFound", err)
	}
}
