package content

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

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
			img.Set(x, y, color.NRGBA{R: 0x20, G: 0x80, B: 0xff, A: 0xff})
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
	log.SetOutput(new(bytes.Buffer))
	return log
}

func newTestStore(t *testing.T, root string, editor bool) *Store {
	t.Helper()

	s, err := NewStore(Config{Root: root, Editor: editor, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return s
}
