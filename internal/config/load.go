package config

import (
	"fmt"
	"os"

	"quizmd/internal/spec"
)

// Load reads, parses, normalizes, and validates a config file. The history
// path is resolved against the project root.
func Load(path string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := spec.ParseConfig(data)
	if err != nil {
		return spec.Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return spec.Config{}, err
	}
	cfg.History.Path = ResolvePath(RootFromConfigPath(path), cfg.History.Path)
	return cfg, nil
}
