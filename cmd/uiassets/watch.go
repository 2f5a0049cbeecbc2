package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	uiprovider "github.com/alnah/go-uiprovider"
	"github.com/alnah/go-uiprovider/internal/hints"
)

// runWatch loads each path and prints it again every time its asset
// changes on disk, until ctx is done.
func runWatch(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseWatchFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: watch needs at least one path", ErrUsage)
	}

	s, err := openSession(&flags.common, env)
	if err != nil {
		return err
	}

	out := &lockedWriter{w: env.Stdout}
	editor := uiprovider.NewEditorSession(uiprovider.WithLogger(s.log))
	defer editor.Close()

	opts := []uiprovider.Option{
		uiprovider.WithLogger(s.log),
		uiprovider.WithEditorSession(editor),
		uiprovider.WithChangeHandler(func(path string) {
			fmt.Fprintf(out, "changed\t%s\n", path)
		}),
	}
	fonts := uiprovider.NewFontProvider(s.src, opts...)
	xamls := uiprovider.NewXamlProvider(s.src, fonts, opts...)
	textures := uiprovider.NewTextureProvider(s.src, opts...)
	s.preloadFonts(fonts)

	for _, path := range positional {
		kind, ok := loadAny(path, s.src, xamls, textures, fonts)
		if !ok {
			return s.notFound(path)
		}
		fmt.Fprintf(out, "loaded\t%s\t%s\n", kind, path)
	}

	if err := editor.Watch(ctx, s.src); err != nil {
		if errors.Is(err, uiprovider.ErrNothingToWatch) {
			return fmt.Errorf("%w%s", err, hints.ForContentRoot())
		}
		return fmt.Errorf("%w: %v%s", ErrWatchStart, err, hints.ForWatch())
	}

	<-ctx.Done()
	return nil
}

// loadAny loads path as markup, then texture, then font face, and names
// the kind it found.
func loadAny(path string, src *uiprovider.ContentSource, xamls *uiprovider.XamlProvider,
	textures *uiprovider.TextureProvider, fonts *uiprovider.FontProvider,
) (string, bool) {
	if stream := xamls.LoadXaml(path); stream != nil {
		_ = stream.Close()
		return "xaml", true
	}
	if info := textures.GetTextureInfo(path); !info.IsZero() {
		return "texture", true
	}
	if face, ok := src.LoadFontFace(path); ok {
		fonts.RegisterFont(face)
		return "font", true
	}
	return "", false
}

// lockedWriter serializes writes from the watcher goroutine and the
// command goroutine.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
