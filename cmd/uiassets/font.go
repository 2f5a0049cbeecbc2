package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	uiprovider "github.com/alnah/go-uiprovider"
	"github.com/alnah/go-uiprovider/internal/hints"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// runFont dispatches the font subcommands.
func runFont(args []string, env *Environment) error {
	if len(args) == 0 {
		printFontUsage(env.Stderr)
		return fmt.Errorf("%w: font needs a subcommand", ErrUsage)
	}
	sub, rest := args[0], args[1:]

	flags, positional, err := parseFontFlags(rest, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	switch sub {
	case "list":
		if len(positional) != 1 {
			return fmt.Errorf("%w: font list takes one folder", ErrUsage)
		}
		return runFontList(flags, positional[0], env)
	case "match":
		if len(positional) != 2 {
			return fmt.Errorf("%w: font match takes a folder and a family", ErrUsage)
		}
		return runFontMatch(flags, positional[0], positional[1], env)
	case "open":
		if len(positional) != 1 {
			return fmt.Errorf("%w: font open takes one path", ErrUsage)
		}
		return runFontOpen(flags, positional[0], env)
	default:
		return fmt.Errorf("%w: unknown font subcommand %q", ErrUsage, sub)
	}
}

// openFonts opens content and registers the preload folders plus folder.
func openFonts(flags *fontFlags, folder string, env *Environment) (*session, *uiprovider.FontProvider, error) {
	s, err := openSession(&flags.common, env)
	if err != nil {
		return nil, nil, err
	}
	fonts := uiprovider.NewFontProvider(s.src, uiprovider.WithLogger(s.log))
	s.preloadFonts(fonts)

	if folder != "" {
		if _, err := s.src.RegisterFonts(folder, fonts); err != nil {
			return nil, nil, fmt.Errorf("registering %s: %w%s", folder, err, hints.ForAssetNotFound(s.src.MountPoints()))
		}
	}
	return s, fonts, nil
}

// runFontList prints the families and faces registered in folder.
func runFontList(flags *fontFlags, folder string, env *Environment) error {
	s, fonts, err := openFonts(flags, folder, env)
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, "Families:")
	for _, family := range fonts.Families(folder) {
		fmt.Fprintf(env.Stdout, "  %s\n", family)
	}

	paths, err := s.src.ListFontFaces(folder)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, "Faces:")
	for _, path := range paths {
		stream := fonts.OpenFont(folder, path)
		if stream == nil {
			fmt.Fprintf(env.Stdout, "  %s\t(unreadable)\n", path)
			continue
		}
		fmt.Fprintf(env.Stdout, "  %s\t%s\n", path, humanize.Bytes(uint64(stream.Size())))
		_ = stream.Close()
	}
	return nil
}

// runFontMatch prints the face chosen for family in folder.
func runFontMatch(flags *fontFlags, folder, family string, env *Environment) error {
	weight, ok := uiprovider.ParseFontWeight(flags.weight)
	if !ok {
		return fmt.Errorf("%w: unknown weight %q", ErrUsage, flags.weight)
	}
	stretch, ok := uiprovider.ParseFontStretch(flags.stretch)
	if !ok {
		return fmt.Errorf("%w: unknown stretch %q", ErrUsage, flags.stretch)
	}
	style, ok := uiprovider.ParseFontStyle(flags.style)
	if !ok {
		return fmt.Errorf("%w: unknown style %q", ErrUsage, flags.style)
	}

	_, fonts, err := openFonts(flags, folder, env)
	if err != nil {
		return err
	}

	if !fonts.FamilyExists(folder, family) {
		return fmt.Errorf("%w: %q in %s%s", ErrFamilyNotFound, family, folder, hints.ForFamilyNotFound(fonts.Families(folder)))
	}

	src := fonts.MatchFont(folder, family, weight, stretch, style)
	fmt.Fprintf(env.Stdout, "%s\t#%d\t%s %s %s\n", src.Filename, src.FaceIndex, src.Weight, src.Stretch, src.Style)
	return nil
}

// runFontOpen reads the face at path, optionally writing its bytes out.
func runFontOpen(flags *fontFlags, path string, env *Environment) error {
	s, fonts, err := openFonts(flags, "", env)
	if err != nil {
		return err
	}

	stream := fonts.OpenFont(uiprovider.PackageFolder(path), path)
	if stream == nil {
		return s.notFound(path)
	}
	defer stream.Close()

	fmt.Fprintf(env.Stdout, "%s\t%s\n", path, humanize.Bytes(uint64(stream.Size())))

	if flags.output == "" {
		return nil
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := os.WriteFile(flags.output, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFont, err)
	}
	return nil
}
