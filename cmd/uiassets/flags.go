package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config         string
	content        string
	mount          string
	engineOverride string
	editor         bool
	quiet          bool
	verbose        bool
}

// xamlFlags holds flags for the xaml command.
type xamlFlags struct {
	common commonFlags
	color  bool
	style  string
}

// textureFlags holds flags for the texture command.
type textureFlags struct {
	common  commonFlags
	load    bool
	maxSize int
}

// fontFlags holds flags for the font subcommands.
type fontFlags struct {
	common  commonFlags
	weight  string
	stretch string
	style   string
	output  string
}

// watchFlags holds flags for the watch command.
type watchFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.content, "content", "", "game content directory")
	fs.StringVar(&f.mount, "mount", "", "mount point of the content directory (default /Game)")
	fs.StringVar(&f.engineOverride, "engine-override", "", "directory overriding engine content")
	fs.BoolVar(&f.editor, "editor", false, "keep editor-only data")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show provider lookups")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseXamlFlags parses xaml command flags and returns positional args.
func parseXamlFlags(args []string, stderr io.Writer) (*xamlFlags, []string, error) {
	f := &xamlFlags{}
	fs := newFlagSet("xaml", printXamlUsage, stderr)
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.color, "color", false, "highlight markup for the terminal")
	fs.StringVar(&f.style, "style", "monokai", "highlight style")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTextureFlags parses texture command flags and returns positional args.
func parseTextureFlags(args []string, stderr io.Writer) (*textureFlags, []string, error) {
	f := &textureFlags{}
	fs := newFlagSet("texture", printTextureUsage, stderr)
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.load, "load", false, "create the texture on the software device")
	fs.IntVar(&f.maxSize, "max-size", 0, "longer side limit of created textures (0 = config)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseFontFlags parses font subcommand flags and returns positional args.
func parseFontFlags(args []string, stderr io.Writer) (*fontFlags, []string, error) {
	f := &fontFlags{}
	fs := newFlagSet("font", printFontUsage, stderr)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.weight, "weight", "normal", "font weight: thin..black or 100-950")
	fs.StringVar(&f.stretch, "stretch", "normal", "font stretch: ultra-condensed..ultra-expanded")
	fs.StringVar(&f.style, "style", "normal", "font style: normal, oblique, italic")
	fs.StringVarP(&f.output, "output", "o", "", "write opened font bytes to a file")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseWatchFlags parses watch command flags and returns positional args.
func parseWatchFlags(args []string, stderr io.Writer) (*watchFlags, []string, error) {
	f := &watchFlags{}
	fs := newFlagSet("watch", printWatchUsage, stderr)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// hasVerboseFlag reports whether args ask for verbose output. It runs
// before command dispatch, so it only looks for the literal flags.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
