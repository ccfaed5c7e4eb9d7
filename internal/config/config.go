// Package config loads named algebra definitions for the cliff CLI.
package config

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/cliffgo/signature"
)

// Config represents the top-level cliff.yml configuration
type Config struct {
	Version  string             `yaml:"version"`
	Algebras map[string]Algebra `yaml:"algebras"`
}

// Algebra is a named signature.
type Algebra struct {
	Positive    int    `yaml:"positive"`
	Negative    int    `yaml:"negative"`
	Zero        int    `yaml:"zero"`
	Inner       string `yaml:"inner,omitempty"` // left (default), right, bidirectional or none
	Description string `yaml:"description,omitempty"`
}

// Signature converts the definition into a signature.
func (a Algebra) Signature() (signature.Signature, error) {
	ip, err := signature.ParseInnerProduct(a.Inner)
	if err != nil {
		return signature.Signature{}, err
	}
	return signature.New(a.Positive, a.Negative, a.Zero, signature.WithInnerProduct(ip))
}

// Validate performs strict validation on the configuration
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}
	for name, a := range c.Algebras {
		if name == "" {
			return fmt.Errorf("algebra with empty name")
		}
		if _, err := a.Signature(); err != nil {
			return fmt.Errorf("algebra '%s': %w", name, err)
		}
	}
	return nil
}

// Lookup returns the signature of the named algebra.
func (c *Config) Lookup(name string) (signature.Signature, bool) {
	if c == nil {
		return signature.Signature{}, false
	}
	a, ok := c.Algebras[name]
	if !ok {
		return signature.Signature{}, false
	}
	sig, err := a.Signature()
	return sig, err == nil
}

// Names returns the algebra names in sorted order.
func (c *Config) Names() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.Algebras))
}

// Load reads and validates cliff.yml from the specified path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
