// Package config loads the YAML run configuration for the gridsearch CLI:
// which map to search, with which strategy, between which cells and how fast
// to tick.
//
//	map: maps/demo.txt
//	strategy: astar
//	check_destination: true
//	tick: 50ms
//	source: {x: 0, y: 0}
//	destination: {x: 7, y: 2}
//
// A relative map path is resolved against the directory of the config file.
// Source and destination may be left out when the map marks them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridsearch"
)

// Config is a single search run.
type Config struct {
	Map              string           `yaml:"map"`
	Strategy         string           `yaml:"strategy"`
	CheckDestination bool             `yaml:"check_destination"`
	Tick             time.Duration    `yaml:"tick"`
	Source           *gridsearch.Cell `yaml:"source"`
	Destination      *gridsearch.Cell `yaml:"destination"`
}

// Default returns the configuration used for keys a file leaves out.
func Default() *Config {
	return &Config{
		Strategy:         gridsearch.AStar.String(),
		CheckDestination: true,
		Tick:             50 * time.Millisecond,
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Map != "" && !filepath.IsAbs(cfg.Map) {
		cfg.Map = filepath.Join(filepath.Dir(path), cfg.Map)
	}
	return cfg, nil
}

// Validate checks the values that do not depend on the map.
func (c *Config) Validate() error {
	if _, err := gridsearch.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Tick < 0 {
		return fmt.Errorf("config: negative tick %s", c.Tick)
	}
	return nil
}

// EngineOptions translates the config into engine options.
func (c *Config) EngineOptions() ([]gridsearch.Option, error) {
	strategy, err := gridsearch.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return []gridsearch.Option{
		gridsearch.WithStrategy(strategy),
		gridsearch.WithDestinationCheck(c.CheckDestination),
	}, nil
}
