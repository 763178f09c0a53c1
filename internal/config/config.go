// Package config loads pathlab's YAML configuration.
//
// Lookup order: an explicit --config path, then $XDG_CONFIG_HOME/pathlab/config.yaml
// (and the XDG config dirs). A missing implicit file yields Default();
// a missing explicit file is an error. Command-line flags override values
// read here.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlab/dijkstra"
)

// RelPath is the config location relative to the XDG config directories.
const RelPath = "pathlab/config.yaml"

// Config is the on-disk configuration.
type Config struct {
	// Graph is the default edge-list file.
	Graph string `yaml:"graph"`

	// Strategy is one of incremental, rescan, declarative.
	Strategy string `yaml:"strategy"`

	// MaxRounds caps solver rounds; 0 disables the cap.
	MaxRounds int `yaml:"max_rounds"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Strategy:  dijkstra.StrategyIncremental.String(),
		MaxRounds: 0,
		LogLevel:  logrus.InfoLevel.String(),
	}
}

// Load reads the configuration from path, or from the XDG location when
// path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(RelPath)
		if err != nil {
			return Default(), nil
		}
		path = found
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// Decode parses YAML from r on top of Default() and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := dijkstra.ParseStrategy(c.Strategy); err != nil {
		return errors.WithStack(err)
	}
	if c.MaxRounds < 0 {
		return errors.Errorf("max_rounds must be non-negative, got %d", c.MaxRounds)
	}
	if _, err := logrus.ParseLevel(strings.TrimSpace(c.LogLevel)); err != nil {
		return errors.Wrap(err, "log_level")
	}

	return nil
}

// SolverStrategy returns the parsed Strategy. Call Validate first.
func (c *Config) SolverStrategy() dijkstra.Strategy {
	s, _ := dijkstra.ParseStrategy(c.Strategy)
	return s
}

// Level returns the parsed log level, InfoLevel if unparsable.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(c.LogLevel))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
