package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"quizmd/internal/config"
	"quizmd/internal/spec"
)

// resolveConfigPath normalizes a config path or finds it from CWD. An empty
// result with a nil error means no config file exists.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		found, err := config.FindConfigPath("")
		if errors.Is(err, config.ErrNotFound) {
			return "", nil
		}
		return found, err
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads the explicit or discovered config, falling back to
// defaults when none exists.
func loadConfig(configPath string) (spec.Config, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return spec.Config{}, err
	}
	if resolved == "" {
		return config.Default(), nil
	}
	return config.Load(resolved)
}
