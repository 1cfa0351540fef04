package config

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/conn-castle/xig/internal/gateway"
	"github.com/conn-castle/xig/internal/messages"
	"github.com/conn-castle/xig/internal/source"
)

// Environment variables read by Resolve. The same keys are honored in the .env file.
const (
	envPrefix = "XIG_"

	EnvTargetDir  = "XIG_TARGET_DIR"
	EnvGatewayDir = "XIG_GATEWAY_DIR"
	EnvNoColor    = "XIG_NO_COLOR"
	EnvVerbose    = "XIG_VERBOSE"
)

// Overrides are the values given on the command line. Empty strings and false mean unset.
type Overrides struct {
	TargetDir  string
	GatewayDir string
	ConfigPath string
	Verbose    bool
	NoColor    bool
}

// Options controls Resolve.
type Options struct {
	Overrides Overrides
	System    System
	// Resolver detects the gateway source when none is configured.
	Resolver source.Resolver
	// DefaultTargetDir supplies the target when none is configured.
	DefaultTargetDir func(ctx context.Context) string
}

// Settings are the resolved inputs for one command invocation.
type Settings struct {
	TargetDir string
	// GatewayDir is empty when no source is configured or detected.
	GatewayDir   string
	Verbose      bool
	Color        bool
	DiffMaxLines int
}

// Resolve layers command-line overrides, environment, .env, config.toml, and detected
// defaults, in that order of precedence. Explicitly configured directories must exist.
func Resolve(ctx context.Context, opts Options) (Settings, error) {
	sys := opts.System
	if sys == nil {
		return Settings{}, errors.New(messages.ConfigSystemRequired)
	}

	paths, required, err := configPaths(sys, opts.Overrides.ConfigPath)
	if err != nil {
		return Settings{}, err
	}
	cfg, err := LoadConfig(sys, paths.ConfigPath, required)
	if err != nil {
		return Settings{}, err
	}
	dotenv, err := LoadEnv(sys, paths.EnvPath)
	if err != nil {
		return Settings{}, err
	}
	lookup := func(key string) (string, bool) {
		if value, ok := sys.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok && strings.TrimSpace(value) != ""
	}

	settings := Settings{
		Color:        true,
		DiffMaxLines: cfg.Output.DiffMaxLines,
	}

	targetDir := firstNonEmpty(opts.Overrides.TargetDir, envValue(lookup, EnvTargetDir), cfg.TargetDir)
	if targetDir != "" {
		settings.TargetDir, err = ValidateDir(sys, targetDir)
		if err != nil {
			return Settings{}, err
		}
	} else if opts.DefaultTargetDir != nil {
		settings.TargetDir = opts.DefaultTargetDir(ctx)
	} else {
		settings.TargetDir = source.FallbackTargetDir
	}

	gatewayDir := firstNonEmpty(opts.Overrides.GatewayDir, envValue(lookup, EnvGatewayDir), cfg.GatewayDir)
	if gatewayDir != "" {
		settings.GatewayDir, err = ValidateDir(sys, gatewayDir)
		if err != nil {
			return Settings{}, err
		}
	} else if opts.Resolver != nil {
		detected, ok, err := opts.Resolver.Resolve(ctx)
		if err != nil {
			return Settings{}, fmt.Errorf(messages.ConfigResolveSourceFmt, err)
		}
		if ok {
			settings.GatewayDir = detected
		}
	}

	verbose, err := boolValue(lookup, EnvVerbose)
	if err != nil {
		return Settings{}, err
	}
	settings.Verbose = opts.Overrides.Verbose || verbose || cfg.Output.Verbose

	noColor, err := boolValue(lookup, EnvNoColor)
	if err != nil {
		return Settings{}, err
	}
	if cfg.Output.Color != nil {
		settings.Color = *cfg.Output.Color
	}
	if opts.Overrides.NoColor || noColor {
		settings.Color = false
	}
	return settings, nil
}

// ValidateDir expands path and checks that it names an existing directory.
// Failures wrap gateway.ErrDirectoryNotFound.
func ValidateDir(sys System, path string) (string, error) {
	dir, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	info, err := sys.Stat(dir)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigDirectoryFmt, gateway.ErrDirectoryNotFound, path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf(messages.ConfigNotDirectoryFmt, gateway.ErrDirectoryNotFound, path)
	}
	return dir, nil
}

func configPaths(sys System, explicit string) (Paths, bool, error) {
	if strings.TrimSpace(explicit) != "" {
		path, err := ExpandPath(explicit)
		if err != nil {
			return Paths{}, false, err
		}
		return PathsFor(path), true, nil
	}
	paths, err := DefaultPaths(sys)
	return paths, false, err
}

func envValue(lookup func(string) (string, bool), key string) string {
	value, _ := lookup(key)
	return strings.TrimSpace(value)
}

func boolValue(lookup func(string) (string, bool), key string) (bool, error) {
	value, ok := lookup(key)
	if !ok {
		return false, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf(messages.ConfigInvalidBoolFmt, key, value, err)
	}
	return parsed, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
