package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const scaffoldTemplate = `version: 1
review:
  ui: %s
  shuffle: false
  strict: false
  no_color: false
server:
  addr: %q
  max_upload_bytes: %d
  cors_origins: []
  max_sessions: %d
  session_ttl: %s
history:
  enabled: %t
  path: %q
logging:
  level: %s
  format: %s
`

// ScaffoldOptions holds the answers collected by init.
type ScaffoldOptions struct {
	UI      string
	History bool
}

// RenderScaffold returns the YAML written by Scaffold.
func RenderScaffold(opts ScaffoldOptions) string {
	ui := opts.UI
	if ui == "" {
		ui = DefaultUIMode
	}
	return fmt.Sprintf(scaffoldTemplate, ui, DefaultAddr, DefaultMaxUploadBytes, DefaultMaxSessions, DefaultSessionTTL, opts.History, DefaultHistoryPath, DefaultLogLevel, DefaultLogFormat)
}

// Scaffold writes a config file, refusing to overwrite one.
func Scaffold(configPath string, opts ScaffoldOptions) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(RenderScaffold(opts)), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
