// Package config manages the optional gitstamp configuration file.
// Configuration is discovered by walking up from the starting
// directory; a missing file yields defaults so the tool runs with
// zero configuration.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

const ConfigFile = ".gitstamp.toml"

// Config represents the gitstamp configuration
type Config struct {
	GitBinary  string `toml:"git_binary"`  // git executable name or path
	Untracked  bool   `toml:"untracked"`   // count untracked files as dirty
	OutputMode string `toml:"output_mode"` // octal file mode for the output file
	path       string // path to the config file, empty when defaults are used
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		GitBinary:  "git",
		OutputMode: "0644",
	}
}

// FindConfig finds a .gitstamp.toml by walking up from startDir.
// Returns an empty path, not an error, when no config file exists.
func FindConfig(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, ConfigFile)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load loads the configuration for startDir, falling back to defaults
// when no config file is present
func Load(startDir string) (*Config, error) {
	configPath, err := FindConfig(startDir)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	cfg.path = configPath
	return cfg, nil
}

// Path returns the location the configuration was loaded from, or ""
// when defaults are in use
func (c *Config) Path() string {
	return c.path
}

// OutputFileMode returns the file mode for written output files.
func (c *Config) OutputFileMode() fs.FileMode {
	mode, err := strconv.ParseUint(c.OutputMode, 8, 32)
	if err != nil {
		// Default to 0644 on parse error
		return 0o644
	}
	return fs.FileMode(mode)
}
