package uiprovider

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const mainXaml = `<Grid xmlns="http://schemas.microsoft.com/winfx/2006/xaml/presentation">
  <Image Source="/Game/Textures/Logo.png"/>
  <TextBlock FontFamily="/Game/Fonts/#Go" Text="Hello"/>
</Grid>`

// writeFile creates root/rel with data, making parent directories.
func writeFile(t *testing.T, root, rel string, data []byte) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}

// pngBytes encodes a solid w x h image.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestContent writes a small content tree and opens it:
//
//	UI/Main.xaml          markup using the logo and the Go family
//	Textures/Logo.png     8x4
//	Fonts/GoRegular.ttf   lazy
//	Fonts/GoBold.ttf      lazy
//	Fonts/GoMono.ttf      inline via manifest
func newTestContent(t *testing.T, editor bool) (*ContentSource, string) {
	t.Helper()

	root := t.TempDir()
	writeFile(t, root, "UI/Main.xaml", []byte(mainXaml))
	writeFile(t, root, "Textures/Logo.png", pngBytes(t, 8, 4))
	writeFile(t, root, "Fonts/GoRegular.ttf", goregular.TTF)
	writeFile(t, root, "Fonts/GoBold.ttf", gobold.TTF)
	writeFile(t, root, "Fonts/GoMono.ttf", gomono.TTF)
	writeFile(t, root, "Fonts/GoMono.ttf.asset.yaml", []byte("loadingPolicy: inline\n"))

	src, err := OpenContent(ContentConfig{Root: root, Editor: editor, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("OpenContent() error = %v", err)
	}
	return src, root
}

func readAll(t *testing.T, s Stream) []byte {
	t.Helper()

	data, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("reading stream: %v", err)
	}
	return data
}
