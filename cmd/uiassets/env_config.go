package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-uiprovider/internal/config"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath     string // UIASSETS_CONFIG: config file name or path
	Content        string // UIASSETS_CONTENT: game content directory
	EngineOverride string // UIASSETS_ENGINE_OVERRIDE: engine override directory
	Editor         bool   // UIASSETS_EDITOR: keep editor-only data
	LogLevel       string // UIASSETS_LOG_LEVEL: logrus level name
	MaxSize        int    // UIASSETS_MAX_SIZE: texture size limit
}

// knownEnvVars lists valid UIASSETS_* environment variables.
var knownEnvVars = map[string]bool{
	"UIASSETS_CONFIG":          true,
	"UIASSETS_CONTENT":         true,
	"UIASSETS_ENGINE_OVERRIDE": true,
	"UIASSETS_EDITOR":          true,
	"UIASSETS_LOG_LEVEL":       true,
	"UIASSETS_MAX_SIZE":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed booleans and sizes are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("UIASSETS_CONFIG"),
		Content:        os.Getenv("UIASSETS_CONTENT"),
		EngineOverride: os.Getenv("UIASSETS_ENGINE_OVERRIDE"),
		LogLevel:       os.Getenv("UIASSETS_LOG_LEVEL"),
	}

	if v := os.Getenv("UIASSETS_EDITOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Editor = b
		}
	}

	if v := os.Getenv("UIASSETS_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSize = n
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized UIASSETS_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "UIASSETS_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig fills config values the file left unset.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Content != "" && cfg.Content.Root == "" {
		cfg.Content.Root = env.Content
	}
	if env.EngineOverride != "" && cfg.Content.EngineOverride == "" {
		cfg.Content.EngineOverride = env.EngineOverride
	}
	if env.Editor {
		cfg.Editor = true
	}
	if env.LogLevel != "" && cfg.Log.Level == "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.MaxSize > 0 && cfg.Texture.MaxSize == 0 {
		cfg.Texture.MaxSize = env.MaxSize
	}
}
