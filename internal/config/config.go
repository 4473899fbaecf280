package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"mysql-typemap/typemap"
)

const (
	DefaultTag    = "mysql"
	FormatText    = "text"
	FormatYAML    = "yaml"
	currentSchema = "1"
)

// Config is the top level configuration file.
type Config struct {
	Version  string          `yaml:"version"`
	Resolver typemap.Options `yaml:"resolver"`
	Tag      string          `yaml:"tag,omitempty"`
	Format   string          `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = currentSchema
	}

	if c.Resolver.InlineSizeCeiling == 0 {
		c.Resolver.InlineSizeCeiling = typemap.DefaultInlineSizeCeiling
	}

	if c.Resolver.DefaultTextLength == 0 {
		c.Resolver.DefaultTextLength = typemap.DefaultTextLength
	}

	if c.Tag == "" {
		c.Tag = DefaultTag
	}

	if c.Format == "" {
		c.Format = FormatText
	}
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	if c.Version != currentSchema {
		return fmt.Errorf("unsupported config version %q", c.Version)
	}

	if !slices.Contains([]string{FormatText, FormatYAML}, c.Format) {
		return fmt.Errorf("unsupported report format %q", c.Format)
	}

	if err := c.Resolver.Validate(); err != nil {
		return fmt.Errorf("invalid resolver options: %w", err)
	}

	return nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Config to the given path.
func WriteFile(c *Config, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
