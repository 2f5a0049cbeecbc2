// Package config loads the uiassets YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-uiprovider/internal/fileutil"
	"github.com/alnah/go-uiprovider/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxMountLength    = 64   // "/Game"
	MaxLogLevelLength = 10   // "warning"
	MaxPreloadFolders = 64
)

// DirName is the directory searched under the user config directory.
const DirName = "uiassets"

// Config holds the uiassets configuration.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Editor  bool          `yaml:"editor"` // keep editor-only data, load every font inline
	Log     LogConfig     `yaml:"log"`
	Fonts   FontsConfig   `yaml:"fonts"`
	Texture TextureConfig `yaml:"texture"`
}

// ContentConfig defines where content is read from.
type ContentConfig struct {
	Root           string `yaml:"root"`           // Empty = engine content only
	Mount          string `yaml:"mount"`          // Mount point for root (default: "/Game")
	EngineOverride string `yaml:"engineOverride"` // Directory overriding engine content
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"` // logrus level name (empty = warning)
}

// FontsConfig defines font registration options.
type FontsConfig struct {
	Preload []string `yaml:"preload"` // Logical folders registered at startup
}

// TextureConfig defines software device options.
type TextureConfig struct {
	MaxSize int `yaml:"maxSize"` // Longer side limit in pixels (0 = none)
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for callers that
// construct Config directly.
func (c *Config) Validate() error {
	if err := validateFieldLength("content.root", c.Content.Root, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("content.engineOverride", c.Content.EngineOverride, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("content.mount", c.Content.Mount, MaxMountLength); err != nil {
		return err
	}
	if c.Content.Mount != "" {
		m := c.Content.Mount
		if !strings.HasPrefix(m, "/") || len(m) < 2 || strings.Contains(m[1:], "/") {
			return fmt.Errorf("%w: content.mount %q (must look like /Game)", ErrInvalidValue, m)
		}
		if m == "/Engine" {
			return fmt.Errorf("%w: content.mount %q is reserved", ErrInvalidValue, m)
		}
	}

	if err := validateFieldLength("log.level", c.Log.Level, MaxLogLevelLength); err != nil {
		return err
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level)
		}
	}

	if len(c.Fonts.Preload) > MaxPreloadFolders {
		return fmt.Errorf("%w: fonts.preload has %d folders (max %d)", ErrInvalidValue, len(c.Fonts.Preload), MaxPreloadFolders)
	}
	for i, folder := range c.Fonts.Preload {
		field := fmt.Sprintf("fonts.preload[%d]", i)
		if err := validateFieldLength(field, folder, MaxPathLength); err != nil {
			return err
		}
		if !strings.HasPrefix(folder, "/") {
			return fmt.Errorf("%w: %s %q (must be a logical path like /Game/Fonts)", ErrInvalidValue, field, folder)
		}
	}

	if c.Texture.MaxSize < 0 {
		return fmt.Errorf("%w: texture.maxSize must not be negative, got %d", ErrInvalidValue, c.Texture.MaxSize)
	}

	return nil
}

// LogLevel returns the configured level, warning by default.
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil || c.Log.Level == "" {
		return logrus.WarnLevel
	}
	return level
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration serving engine content only.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Mount: "/Game"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Decode(configPath, data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	// Relative content paths are relative to the config file.
	base := filepath.Dir(configPath)
	cfg.Content.Root = resolveRelative(base, cfg.Content.Root)
	cfg.Content.EngineOverride = resolveRelative(base, cfg.Content.EngineOverride)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func resolveRelative(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/uiassets/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, DirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
