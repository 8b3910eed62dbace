package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config is the benchmark matrix: every middleware count is run against every
// subscriber count.
type config struct {
	Middleware  []int `yaml:"middleware"`
	Subscribers []int `yaml:"subscribers"`
	Iterations  int   `yaml:"iterations"`
}

func defaultConfig() config {
	return config{
		Middleware:  []int{0, 1, 10},
		Subscribers: []int{1, 10, 100, 1_000},
		Iterations:  1_000,
	}
}

func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Iterations <= 0 {
		return config{}, fmt.Errorf("parse config %s: iterations must be positive, got %d", path, cfg.Iterations)
	}
	return cfg, nil
}
