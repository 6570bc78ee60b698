// Package config manages the draftwrapper configuration file at ~/.draftwrapper/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/azure/draftwrapper/internal/platform"
	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("config file not found")

// Output formats accepted by the info command.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

type Config struct {
	Version string `yaml:"version"` // draftv2 release tag
	Output  string `yaml:"output"`  // default info format
}

// Dir returns the config directory path (~/.draftwrapper).
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".draftwrapper")
}

// Path returns the config file path (~/.draftwrapper/config.yaml).
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Exists checks if the config file exists.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load reads and parses the config file. Returns ErrNotFound if it doesn't exist.
func Load() (*Config, error) {
	return loadFrom(Path())
}

// LoadOrDefault is Load with a fallback to Default when no file exists.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return cfg, err
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := marshalConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func marshalConfig(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Validate rejects values the commands cannot act on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Version) == "" {
		return fmt.Errorf("version cannot be empty")
	}
	if !strings.HasPrefix(c.Version, "v") {
		return fmt.Errorf("invalid version %q: must start with \"v\"", c.Version)
	}
	if err := ValidateOutput(c.Output); err != nil {
		return err
	}
	return nil
}

// ValidateOutput checks that format is a known info output format.
func ValidateOutput(format string) error {
	switch format {
	case OutputText, OutputYAML:
		return nil
	default:
		return fmt.Errorf("invalid output %q: must be %q or %q", format, OutputText, OutputYAML)
	}
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		Version: platform.Version,
		Output:  OutputText,
	}
}
