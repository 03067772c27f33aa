// Package config handles configuration loading and conversion defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional configuration file. Values act as defaults
// and are overridden by command line flags.
type Config struct {
	// Zone is the JGD2011 plane rectangular zone of the inputs, 1-19.
	Zone int `yaml:"zone,omitempty" json:"zone,omitempty"`

	// Output selects the destination system: wgs84, webmercator or source.
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	// OutDir overrides writing outputs next to their inputs.
	OutDir string `yaml:"out_dir,omitempty" json:"out_dir,omitempty"`

	Pretty bool `yaml:"pretty,omitempty" json:"pretty,omitempty"`
}

// Default returns the built-in defaults: zone 9 (Tokyo area), WGS84 output.
func Default() *Config {
	return &Config{Zone: 9, Output: "wgs84"}
}

// Load reads and parses the YAML configuration file from the specified path,
// layered over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
