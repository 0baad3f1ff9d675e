// Package config provides configuration management for plcoach.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/plcoach/plcoach/internal/units"
)

// Config represents the plcoach configuration structure, stored as
// ~/.plcoach/config.yaml.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Unit   string       `yaml:"unit"` // kg | lb
	Rest   RestConfig   `yaml:"rest"`
}

// ServerConfig points the client at a coaching server.
type ServerConfig struct {
	URL string `yaml:"url"`
}

// RestConfig controls the rest timer between sets.
type RestConfig struct {
	DefaultSeconds int   `yaml:"default_seconds"`
	Options        []int `yaml:"options"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Unit: string(units.KG),
		Rest: RestConfig{
			DefaultSeconds: 90,
			Options:        []int{30, 60, 90, 120, 180, 240, 300},
		},
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}
	return filepath.Join(home, ".plcoach", "config.yaml"), nil
}

// Load reads the config file, returning defaults when it does not exist.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config file.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DisplayUnit returns the configured display unit, defaulting to kilograms
// when unset or unknown.
func (c *Config) DisplayUnit() units.Unit {
	u := units.Unit(c.Unit)
	if !u.Valid() {
		return units.KG
	}
	return u
}

// RestOptions returns the timer picker durations in seconds.
func (c *Config) RestOptions() []int {
	if len(c.Rest.Options) == 0 {
		return Default().Rest.Options
	}
	return c.Rest.Options
}
