package spec

import "time"

// Config is the .quizmd/config.yml document.
type Config struct {
	Version int           `yaml:"version"`
	Review  ReviewConfig  `yaml:"review"`
	Server  ServerConfig  `yaml:"server"`
	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReviewConfig holds defaults for the review command.
type ReviewConfig struct {
	UI      string `yaml:"ui"`
	Shuffle bool   `yaml:"shuffle"`
	Strict  bool   `yaml:"strict"`
	NoColor bool   `yaml:"no_color"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
	CORSOrigins    []string      `yaml:"cors_origins"`
	MaxSessions    int           `yaml:"max_sessions"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
}

// HistoryConfig configures the answer history store.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig configures server logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
