package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	uiprovider "github.com/alnah/go-uiprovider"
	"github.com/alnah/go-uiprovider/internal/config"
	"github.com/alnah/go-uiprovider/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrFamilyNotFound = errors.New("font family not found")
	ErrWatchStart     = errors.New("failed to start watching")
	ErrWriteFont      = errors.New("failed to write font file")
)

// commands lists the recognized command names.
var commands = map[string]bool{
	"xaml":    true,
	"texture": true,
	"font":    true,
	"watch":   true,
	"version": true,
	"help":    true,
}

// isCommand reports whether name is a recognized command.
func isCommand(name string) bool {
	return commands[name]
}

// runMain dispatches args to a command and returns the process exit code.
// args[0] is the program name.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[1], args[2:]
	if !isCommand(name) {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", name)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch name {
	case "version":
		fmt.Fprintf(env.Stdout, "uiassets %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var err error
	switch name {
	case "xaml":
		err = runXaml(rest, env)
	case "texture":
		err = runTexture(rest, env)
	case "font":
		err = runFont(rest, env)
	case "watch":
		err = runWatch(ctx, rest, env)
	}

	code := exitCodeFor(err)
	if err != nil && code != ExitSuccess {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return code
}

// usageError wraps a flag or argument problem so it maps to ExitUsage.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// session bundles what every command needs: the merged configuration,
// the logger and the opened content.
type session struct {
	cfg *config.Config
	log *logrus.Logger
	src *uiprovider.ContentSource
}

// openSession loads configuration and opens content.
// Priority: CLI flags > env vars > config file > defaults.
func openSession(f *commonFlags, env *Environment) (*session, error) {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(f.config, envCfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(f, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := newLogger(cfg, f, env)

	src, err := uiprovider.OpenContent(uiprovider.ContentConfig{
		Root:           cfg.Content.Root,
		MountPoint:     cfg.Content.Mount,
		EngineOverride: cfg.Content.EngineOverride,
		Editor:         cfg.Editor,
		Logger:         log,
	})
	if err != nil {
		if errors.Is(err, uiprovider.ErrInvalidRoot) {
			return nil, fmt.Errorf("opening content: %w%s", err, hints.ForContentRoot())
		}
		return nil, fmt.Errorf("opening content: %w", err)
	}

	return &session{cfg: cfg, log: log, src: src}, nil
}

// loadConfig loads the file named by the flag, falling back to the
// environment. With neither set it returns the defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(userConfigPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// userConfigPaths returns where a config named name may be created.
func userConfigPaths(name string) []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, config.DirName, name+".yaml")}
}

// mergeFlags applies CLI flags over cfg. Unset flags leave cfg alone.
func mergeFlags(f *commonFlags, cfg *config.Config) {
	if f.content != "" {
		cfg.Content.Root = f.content
	}
	if f.mount != "" {
		cfg.Content.Mount = f.mount
	}
	if f.engineOverride != "" {
		cfg.Content.EngineOverride = f.engineOverride
	}
	if f.editor {
		cfg.Editor = true
	}
}

// newLogger builds the provider logger. -v and -q win over log.level.
func newLogger(cfg *config.Config, f *commonFlags, env *Environment) *logrus.Logger {
	log := logrus.New()
	log.Out = env.Stderr
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true, QuoteEmptyFields: true}

	switch {
	case f.verbose:
		log.SetLevel(logrus.DebugLevel)
	case f.quiet:
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(cfg.LogLevel())
	}
	return log
}

// notFound builds the error for a logical path missing from every mount.
func (s *session) notFound(path string) error {
	return fmt.Errorf("%w: %s%s", uiprovider.ErrNotFound, path, hints.ForAssetNotFound(s.src.MountPoints()))
}

// preloadFonts registers the folders listed in fonts.preload with reg.
// A missing folder is logged, not fatal.
func (s *session) preloadFonts(reg uiprovider.FontRegistrar) {
	for _, folder := range s.cfg.Fonts.Preload {
		n, err := s.src.RegisterFonts(folder, reg)
		if err != nil {
			s.log.WithField("folder", folder).WithError(err).Warn("font: preload failed")
			continue
		}
		s.log.WithFields(logrus.Fields{"folder": folder, "faces": n}).Debug("font: preloaded")
	}
}
