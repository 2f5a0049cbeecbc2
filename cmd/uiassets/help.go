package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uiassets <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  xaml       Print markup resolved by logical path")
	fmt.Fprintln(w, "  texture    Show texture dimensions, optionally create it")
	fmt.Fprintln(w, "  font       List, match and open font faces")
	fmt.Fprintln(w, "  watch      Report changes to loaded assets")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'uiassets help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "      --content <dir>          Game content directory")
	fmt.Fprintln(w, "      --mount <path>           Mount point of the content (default /Game)")
	fmt.Fprintln(w, "      --engine-override <dir>  Directory overriding engine content")
	fmt.Fprintln(w, "      --editor                 Keep editor-only data")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show provider lookups")
}

// printXamlUsage prints usage for the xaml command.
func printXamlUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uiassets xaml <path> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the markup at a logical path such as /Game/UI/Main.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Display:")
	fmt.Fprintln(w, "      --color                  Highlight markup for the terminal")
	fmt.Fprintln(w, "      --style <name>           Highlight style (default monokai)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printTextureUsage prints usage for the texture command.
func printTextureUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uiassets texture <path> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the dimensions of the texture at a logical path.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Device:")
	fmt.Fprintln(w, "      --load                   Create the texture on the software device")
	fmt.Fprintln(w, "      --max-size <n>           Longer side limit in pixels (0 = config)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printFontUsage prints usage for the font command.
func printFontUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uiassets font <list|match|open> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Subcommands:")
	fmt.Fprintln(w, "  list <folder>                List families and faces in a folder")
	fmt.Fprintln(w, "  match <folder> <family>      Pick the face closest to a request")
	fmt.Fprintln(w, "  open <path>                  Read the bytes of a face")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Matching:")
	fmt.Fprintln(w, "      --weight <w>             thin..black or 100-950 (default normal)")
	fmt.Fprintln(w, "      --stretch <s>            ultra-condensed..ultra-expanded (default normal)")
	fmt.Fprintln(w, "      --style <s>              normal, oblique, italic (default normal)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <file>          Write opened font bytes to a file")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uiassets watch <path>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Load assets and print their logical path each time one changes on disk.")
	fmt.Fprintln(w, "Press Ctrl+C to stop.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "xaml":
		printXamlUsage(env.Stdout)
	case "texture":
		printTextureUsage(env.Stdout)
	case "font":
		printFontUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: uiassets version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: uiassets help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
