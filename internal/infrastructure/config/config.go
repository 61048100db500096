// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for cardlink configuration.
	DefaultConfigDir = ".cardlink"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds static configuration for an enrichment run.
type Config struct {
	Paths PathsConfig `yaml:"paths,omitempty"`
	Match MatchConfig `yaml:"match,omitempty"`
}

// PathsConfig holds the three fixed paths of the pipeline.
type PathsConfig struct {
	// Graph is the input graph serialization.
	Graph string `yaml:"graph,omitempty"`
	// Catalog is the external card catalog JSON file.
	Catalog string `yaml:"catalog,omitempty"`
	// Output is where the enriched graph is written.
	Output string `yaml:"output,omitempty"`
}

// MatchConfig holds matching parameters.
type MatchConfig struct {
	// Threshold is the minimum fuzzy similarity ratio, in [0,1].
	Threshold float64 `yaml:"threshold,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Graph:   "data/rdf/tolkien_kg.nt",
			Catalog: "data/external/cards.json",
			Output:  "data/rdf/tolkien_kg_enriched.nt",
		},
		Match: MatchConfig{
			Threshold: 0.85,
		},
	}
}

// Load loads configuration from the .cardlink directory under basePath.
// A missing config file is not an error; defaults apply.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	data, err := os.ReadFile(configFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if cfg.Match.Threshold < 0 || cfg.Match.Threshold > 1 {
		return nil, fmt.Errorf("match threshold %v out of range [0,1]", cfg.Match.Threshold)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CARDLINK_MATCH_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing CARDLINK_MATCH_THRESHOLD: %w", err)
		}
		c.Match.Threshold = threshold
	}
	return nil
}
