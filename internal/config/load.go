package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/xig/internal/messages"
)

// Config is the content of config.toml.
type Config struct {
	TargetDir  string       `toml:"target_dir"`
	GatewayDir string       `toml:"gateway_dir"`
	Output     OutputConfig `toml:"output"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Color is nil when unset so the default (on) can be told apart from an explicit false.
	Color        *bool `toml:"color"`
	Verbose      bool  `toml:"verbose"`
	DiffMaxLines int   `toml:"diff_max_lines"`
}

// System abstracts environment and filesystem access for configuration loading.
type System interface {
	LookupEnv(key string) (string, bool)
	ReadFile(name string) ([]byte, error)
	Stat(name string) (os.FileInfo, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookupEnv returns the value and presence of an environment variable.
func (RealSystem) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ParseConfig parses and validates config TOML data. source is used in error messages.
// Keys that do not map to a Config field are rejected.
func ParseConfig(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.ConfigUnknownKeysFmt, source, err)
	}
	if cfg.Output.DiffMaxLines < 0 {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, errors.New(messages.ConfigNegativeDiffLines))
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// LoadConfig reads config.toml at path. When required is false a missing file yields
// an empty Config.
func LoadConfig(sys System, path string, required bool) (*Config, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if required {
				return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
			}
			return &Config{}, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return ParseConfig(data, path)
}

// LoadEnv reads the optional .env file at path, keeping only XIG_ keys.
// A missing file yields an empty map.
func LoadEnv(sys System, path string) (map[string]string, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, path, err)
	}
	env, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, path, err)
	}
	return filterXigEnv(env), nil
}

// filterXigEnv restricts .env values to the XIG_ namespace.
func filterXigEnv(env map[string]string) map[string]string {
	filtered := make(map[string]string, len(env))
	for key, value := range env {
		if strings.HasPrefix(key, envPrefix) {
			filtered[key] = value
		}
	}
	return filtered
}
