package config

import (
	"strings"

	"quizmd/internal/spec"
)

// Normalize trims values and fills unset fields with defaults.
func Normalize(cfg *spec.Config) {
	cfg.Review.UI = strings.ToLower(strings.TrimSpace(cfg.Review.UI))
	if cfg.Review.UI == "" {
		cfg.Review.UI = DefaultUIMode
	}

	cfg.Server.Addr = strings.TrimSpace(cfg.Server.Addr)
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if cfg.Server.MaxSessions == 0 {
		cfg.Server.MaxSessions = DefaultMaxSessions
	}
	if cfg.Server.SessionTTL == 0 {
		cfg.Server.SessionTTL = DefaultSessionTTL
	}
	for i, origin := range cfg.Server.CORSOrigins {
		cfg.Server.CORSOrigins[i] = strings.TrimSpace(origin)
	}

	cfg.History.Path = strings.TrimSpace(cfg.History.Path)
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath
	}

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}
