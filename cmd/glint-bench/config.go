package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML benchmark configuration. Flags override file values.
type Config struct {
	// Iterations is the number of write rounds per scenario.
	Iterations int `yaml:"iterations"`

	// Width controls graph size: chain depth, fan-out count, batch size.
	Width int `yaml:"width"`

	// Scenarios selects which scenarios run; empty means all.
	Scenarios []string `yaml:"scenarios"`
}

func defaultBenchConfig() Config {
	return Config{
		Iterations: 10000,
		Width:      100,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultBenchConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Iterations <= 0 {
		return cfg, fmt.Errorf("config %s: iterations must be positive", path)
	}
	if cfg.Width <= 0 {
		return cfg, fmt.Errorf("config %s: width must be positive", path)
	}
	return cfg, nil
}
