package config

import (
	"time"

	"quizmd/internal/spec"
)

// Defaults applied by Normalize and used when no config file exists.
const (
	DefaultUIMode         = "auto"
	DefaultAddr           = "127.0.0.1:8080"
	DefaultMaxUploadBytes = int64(1 << 20)
	DefaultMaxSessions    = 1000
	DefaultSessionTTL     = 2 * time.Hour
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
)

// Default returns the configuration used without a config file.
func Default() spec.Config {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	return cfg
}
