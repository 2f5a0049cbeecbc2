// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"runtime"
	"strings"

	"github.com/alnah/go-uiprovider/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// GOOS is the target operating system, replaceable in tests.
var GOOS = runtime.GOOS

// ForWatch returns hints for file watcher start failures.
// On Linux the usual cause is the inotify watch limit.
func ForWatch() string {
	var hints []string

	if GOOS == "linux" {
		h := "raise fs.inotify.max_user_watches (sysctl -w fs.inotify.max_user_watches=524288)"
		if IsInContainer() {
			h += " on the host"
		}
		hints = append(hints, h)
	}
	hints = append(hints, "watch a smaller content root with --content")

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/uiassets/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/uiassets) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/uiassets") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForContentRoot returns hints for an invalid content directory.
func ForContentRoot() string {
	hint := "use --content /path/to/Content"
	if os.Getenv("UIASSETS_CONTENT") != "" {
		hint += " (UIASSETS_CONTENT is set and may point elsewhere)"
	} else {
		hint += " or set UIASSETS_CONTENT"
	}
	return format(hint)
}

// ForAssetNotFound returns hints for assets missing from every mount.
func ForAssetNotFound(mounts []string) string {
	if len(mounts) == 0 {
		return ""
	}
	return format("paths must start with a mount point: " + strings.Join(mounts, ", "))
}

// ForFamilyNotFound returns hints listing the families that were found.
func ForFamilyNotFound(available []string) string {
	if len(available) == 0 {
		return format("no fonts registered in this folder; check the folder path")
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
