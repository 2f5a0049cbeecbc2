package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const testXaml = `<Grid xmlns="http://schemas.microsoft.com/winfx/2006/xaml/presentation">
  <TextBlock FontFamily="/Game/Fonts/#Go" Text="Hello"/>
</Grid>`

// setupContent writes a small content tree and returns its directory:
//
//	UI/Main.xaml
//	Textures/Logo.png     16x8
//	Fonts/GoRegular.ttf
//	Fonts/GoBold.ttf
func setupContent(t *testing.T) string {
	t.Helper()

	var png16x8 bytes.Buffer
	if err := png.Encode(&png16x8, image.NewNRGBA(image.Rect(0, 0, 16, 8))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	root := t.TempDir()
	files := map[string][]byte{
		"UI/Main.xaml":        []byte(testXaml),
		"Textures/Logo.png":   png16x8.Bytes(),
		"Fonts/GoRegular.ttf": goregular.TTF,
		"Fonts/GoBold.ttf":    gobold.TTF,
	}
	for rel, data := range files {
		writeTestFile(t, root, rel, data)
	}
	return root
}

func writeTestFile(t *testing.T, root, rel string, data []byte) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// runCLI runs the CLI with captured output.
func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	env := &Environment{Stdout: &out, Stderr: &errOut}
	code = runMain(append([]string{"uiassets"}, args...), env)
	return code, out.String(), errOut.String()
}
