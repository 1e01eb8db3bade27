package config

import (
	"fmt"
	"strings"

	"quizmd/internal/spec"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

var (
	uiModes    = []string{"auto", "live", "plain"}
	logLevels  = []string{"trace", "debug", "info", "warn", "error"}
	logFormats = []string{"console", "json", "pretty"}
)

// Validate checks a normalized config for correctness.
func Validate(cfg *spec.Config) error {
	collector := &issueCollector{}
	root := collector.section("")

	if cfg.Version == 0 {
		root("version", "is required")
	} else if cfg.Version != 1 {
		root("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	requireOneOf(collector.section("review"), "ui", cfg.Review.UI, uiModes)

	server := collector.section("server")
	if cfg.Server.Addr == "" {
		server("addr", "is required")
	}
	if cfg.Server.MaxUploadBytes < 0 {
		server("max_upload_bytes", "must be > 0")
	}
	if cfg.Server.MaxSessions < 0 {
		server("max_sessions", "must be > 0")
	}
	if cfg.Server.SessionTTL < 0 {
		server("session_ttl", "must be > 0")
	}
	for i, origin := range cfg.Server.CORSOrigins {
		if origin == "" {
			server(fmt.Sprintf("cors_origins[%d]", i), "is required")
		}
	}

	if cfg.History.Enabled && cfg.History.Path == "" {
		collector.section("history")("path", "is required when history is enabled")
	}

	logging := collector.section("logging")
	requireOneOf(logging, "level", cfg.Logging.Level, logLevels)
	requireOneOf(logging, "format", cfg.Logging.Format, logFormats)

	return collector.result()
}

// UIModes lists the accepted review.ui values.
func UIModes() []string {
	return append([]string(nil), uiModes...)
}

func requireOneOf(add issueAdder, field, value string, allowed []string) {
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	add(field, fmt.Sprintf("unsupported value %q (expected %s)", value, strings.Join(allowed, "|")))
}
