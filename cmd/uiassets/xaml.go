package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"

	uiprovider "github.com/alnah/go-uiprovider"
)

// runXaml prints the markup at a logical path.
func runXaml(args []string, env *Environment) error {
	flags, positional, err := parseXamlFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: xaml takes exactly one path", ErrUsage)
	}
	path := positional[0]

	s, err := openSession(&flags.common, env)
	if err != nil {
		return err
	}

	fonts := uiprovider.NewFontProvider(s.src, uiprovider.WithLogger(s.log))
	s.preloadFonts(fonts)
	xamls := uiprovider.NewXamlProvider(s.src, fonts, uiprovider.WithLogger(s.log))

	stream := xamls.LoadXaml(path)
	if stream == nil {
		return s.notFound(path)
	}
	defer stream.Close()

	markup, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if flags.color {
		return highlightXaml(env.Stdout, markup, flags.style)
	}
	_, err = env.Stdout.Write(markup)
	return err
}

// highlightXaml writes markup with terminal color escapes.
func highlightXaml(w io.Writer, markup []byte, style string) error {
	if err := quick.Highlight(w, string(markup), "xml", "terminal256", style); err != nil {
		return fmt.Errorf("highlighting markup: %w", err)
	}
	return nil
}
