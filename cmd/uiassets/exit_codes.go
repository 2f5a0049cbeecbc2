package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	uiprovider "github.com/alnah/go-uiprovider"
	"github.com/alnah/go-uiprovider/internal/config"
)

// Exit codes for the uiassets CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Command succeeded
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or arguments
	ExitIO       = 3 // Directory missing, permission denied, unreadable asset
	ExitNotFound = 4 // Asset or font family not found
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	// Lookup misses (exit 4)
	if errors.Is(err, uiprovider.ErrNotFound) ||
		errors.Is(err, ErrFamilyNotFound) {
		return ExitNotFound
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, uiprovider.ErrInvalidRoot) ||
		errors.Is(err, uiprovider.ErrAssetRead) ||
		errors.Is(err, ErrWatchStart) ||
		errors.Is(err, ErrWriteFont) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, uiprovider.ErrInvalidPath) ||
		errors.Is(err, uiprovider.ErrInvalidMount) ||
		errors.Is(err, uiprovider.ErrWrongKind) ||
		errors.Is(err, uiprovider.ErrNothingToWatch) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
