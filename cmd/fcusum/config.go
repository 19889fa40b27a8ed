package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional yaml run configuration. Flags override any field
// set here.
type Config struct {
	// Path of the CSV data file
	Data string `yaml:"data"`
	// Name of the response column
	Y string `yaml:"y"`
	// Names of the regressor columns
	X []string `yaml:"x"`
	// Upper bound of the frequency grid
	KStar float64 `yaml:"kstar"`
	// Optional path for the result CSV
	Out string `yaml:"out"`
}

// LoadConfig reads and parses a yaml config file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
