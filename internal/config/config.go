// Package config loads jsoncstrip settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seanhalberthal/jsoncstrip/internal/types"
)

const (
	defaultConcurrency = 8
	configFileName     = "config.yaml"
)

// errInvalidConcurrency indicates a concurrency setting below one.
var errInvalidConcurrency = errors.New("concurrency must be at least 1")

// Config holds settings for file discovery and checking.
type Config struct {
	// Extensions lists the file extensions picked up when walking a directory.
	Extensions []string `yaml:"extensions"`
	// ExcludeDirs lists directory names never descended into.
	// Hidden directories are always skipped.
	ExcludeDirs []string `yaml:"exclude_dirs"`
	// Concurrency bounds how many files are checked at once.
	Concurrency int `yaml:"concurrency"`
	// Validate makes check also require the stripped output to be valid JSON.
	Validate bool `yaml:"validate"`

	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Extensions:  []string{".json", ".jsonc"},
		ExcludeDirs: []string{"node_modules"},
		Concurrency: defaultConcurrency,
		Validate:    true,
	}
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "jsoncstrip", configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "jsoncstrip", configFileName), nil
}

// Load reads the config file at path over the defaults.
// An empty path means DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()

	// #nosec G304 -- path is supplied by the user running the tool
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.path = path

	if err := cfg.normalise(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// normalise validates c and canonicalises its extensions.
func (c *Config) normalise() error {
	if c.Concurrency < 1 {
		return errInvalidConcurrency
	}
	exts := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.Extensions = exts
	return nil
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// HasExtension reports whether name ends in one of the configured extensions.
func (c *Config) HasExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range c.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// IsExcludedDir reports whether a directory with this name is skipped.
func (c *Config) IsExcludedDir(name string) bool {
	if name != "" && name[0] == '.' && name != "." && name != ".." {
		return true
	}
	for _, d := range c.ExcludeDirs {
		if name == d {
			return true
		}
	}
	return false
}

// Info returns the config in its reportable form.
func (c *Config) Info() types.ConfigInfo {
	return types.ConfigInfo{
		Path:        c.path,
		Extensions:  c.Extensions,
		ExcludeDirs: c.ExcludeDirs,
		Concurrency: c.Concurrency,
		Validate:    c.Validate,
	}
}
