package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/xig/internal/messages"
)

const (
	appDirName   = "xig"
	configName   = "config.toml"
	envFileName  = ".env"
	envXDGConfig = "XDG_CONFIG_HOME"
)

// Paths holds resolved paths for the config file and its companion .env file.
type Paths struct {
	ConfigDir  string
	ConfigPath string
	EnvPath    string
}

// DefaultPaths returns $XDG_CONFIG_HOME/xig, or ~/.config/xig when XDG_CONFIG_HOME is unset.
func DefaultPaths(sys System) (Paths, error) {
	base, ok := sys.LookupEnv(envXDGConfig)
	if !ok || strings.TrimSpace(base) == "" {
		home, err := homedir.Dir()
		if err != nil {
			return Paths{}, fmt.Errorf(messages.ConfigResolveHomeFmt, err)
		}
		base = filepath.Join(home, ".config")
	}
	return PathsFor(filepath.Join(base, appDirName, configName)), nil
}

// PathsFor returns the paths for an explicit config file location.
func PathsFor(configPath string) Paths {
	dir := filepath.Dir(configPath)
	return Paths{
		ConfigDir:  dir,
		ConfigPath: configPath,
		EnvPath:    filepath.Join(dir, envFileName),
	}
}

// ExpandPath expands a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(strings.TrimSpace(path))
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	return abs, nil
}
