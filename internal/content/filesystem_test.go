package content

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if loader == nil {
			t.Fatal("NewFilesystemLoader() returned nil")
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		filePath := writeFile(t, t.TempDir(), "file.txt", []byte("test"))

		_, err := NewFilesystemLoader(filePath)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoader_Locate(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "UI/Main.xaml", []byte("<Grid/>"))
	writeFile(t, root, "Textures/Logo.png", pngBytes(t, 2, 2))
	writeFile(t, root, "Fonts/Body.ttf", []byte("not really a font"))
	writeFile(t, root, "Fonts/Body.ttf"+ManifestSuffix, []byte("loadingPolicy: inline\n"))
	writeFile(t, root, "Fonts/Broken.ttf", []byte("x"))
	writeFile(t, root, "Fonts/Broken.ttf"+ManifestSuffix, []byte("loadingPolicy: sometimes\n"))

	loader, err := NewFilesystemLoader(root)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	t.Run("locates markup", func(t *testing.T) {
		t.Parallel()

		entry, err := loader.Locate("UI/Main", KindXaml)
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}
		if entry.Name != "UI/Main.xaml" {
			t.Errorf("Name = %q, want UI/Main.xaml", entry.Name)
		}
		data, err := entry.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if string(data) != "<Grid/>" {
			t.Errorf("Read() = %q, want <Grid/>", data)
		}
	})

	t.Run("reads manifest", func(t *testing.T) {
		t.Parallel()

		entry, err := loader.Locate("Fonts/Body", KindFontFace)
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}
		if entry.Manifest.LoadingPolicy != PolicyInline {
			t.Errorf("LoadingPolicy = %q, want inline", entry.Manifest.LoadingPolicy)
		}
		if entry.DiskPath == "" {
			t.Error("DiskPath is empty for filesystem entry")
		}
	})

	t.Run("invalid manifest", func(t *testing.T) {
		t.Parallel()

		_, err := loader.Locate("Fonts/Broken", KindFontFace)
		if !errors.Is(err, ErrManifest) {
			t.Errorf("Locate() error = %v, want ErrManifest", err)
		}
	})

	t.Run("wrong kind is not found", func(t *testing.T) {
		t.Parallel()

		_, err := loader.Locate("UI/Main", KindTexture)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Locate() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("traversal rejected", func(t *testing.T) {
		t.Parallel()

		_, err := loader.Locate("../outside", KindXaml)
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Locate() error = %v, want ErrInvalidPath", err)
		}
	})
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	t.Parallel()

	outside := t.TempDir()
	writeFile(t, outside, "Secret.xaml", []byte("<Secret/>"))

	root := t.TempDir()
	if err := os.Symlink(filepath.Join(outside, "Secret.xaml"), filepath.Join(root, "Link.xaml")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	loader, err := NewFilesystemLoader(root)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	_, err = loader.Locate("Link", KindXaml)
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("Locate() error = %v, want ErrPathTraversal", err)
	}
}

func TestFilesystemLoader_List(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "Fonts/B.ttf", []byte("b"))
	writeFile(t, root, "Fonts/A.OTF", []byte("a"))
	writeFile(t, root, "Fonts/A.OTF"+ManifestSuffix, []byte(""))
	writeFile(t, root, "Fonts/readme.txt", []byte("x"))
	writeFile(t, root, "Fonts/Nested/C.ttf", []byte("c"))

	loader, err := NewFilesystemLoader(root)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	got, err := loader.List("Fonts", KindFontFace)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"Fonts/A", "Fonts/B"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if _, err := loader.List("Missing", KindFontFace); !errors.Is(err, ErrNotFound) {
		t.Errorf("List(Missing) error = %v, want ErrNotFound", err)
	}
}

func TestFilesystemLoader_Rel(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	loader, err := NewFilesystemLoader(root)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}
	base := loader.Root()

	tests := []struct {
		name     string
		disk     string
		wantRel  string
		wantKind Kind
		wantOK   bool
	}{
		{"markup", filepath.Join(base, "UI", "Main.xaml"), "UI/Main", KindXaml, true},
		{"texture upper ext", filepath.Join(base, "T", "Logo.PNG"), "T/Logo", KindTexture, true},
		{"manifest maps to asset", filepath.Join(base, "F", "Body.ttf"+ManifestSuffix), "F/Body", KindFontFace, true},
		{"unknown ext", filepath.Join(base, "notes.txt"), "", 0, false},
		{"outside root", filepath.Join(filepath.Dir(base), "Other.xaml"), "", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rel, kind, ok := loader.Rel(tt.disk)
			if ok != tt.wantOK || rel != tt.wantRel || kind != tt.wantKind {
				t.Errorf("Rel(%q) = (%q, %v, %v), want (%q, %v, %v)", tt.disk, rel, kind, ok, tt.wantRel, tt.wantKind, tt.wantOK)
			}
		})
	}
}
