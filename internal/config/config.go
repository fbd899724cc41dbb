// Package config loads the optional aoc2023 YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides log.level from the file.
const EnvLogLevel = "AOC2023_LOG_LEVEL"

type Config struct {
	Log LogConfig `yaml:"log"`
	// Inputs maps a day number to its puzzle input file.
	Inputs map[string]string `yaml:"inputs"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Inputs: map[string]string{},
	}
}

// Load reads path on top of the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.Inputs == nil {
			cfg.Inputs = map[string]string{}
		}
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be console or json", c.Log.Format)
	}
	for day := range c.Inputs {
		if _, err := strconv.Atoi(day); err != nil {
			return fmt.Errorf("invalid input day %q", day)
		}
	}
	return nil
}

// InputPath returns the configured input file for day, if any.
func (c *Config) InputPath(day int) (string, bool) {
	p, ok := c.Inputs[strconv.Itoa(day)]
	return p, ok && p != ""
}
