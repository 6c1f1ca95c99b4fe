package types

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultSession is the calculator session used when a request names none
const DefaultSession = "default"

// Config represents the configuration for the calc-mcp server
type Config struct {
	LogLevel       string `json:"log_level,omitempty"`
	Console        bool   `json:"console,omitempty"`
	DefaultSession string `json:"default_session,omitempty"`
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.DefaultSession == "" {
		c.DefaultSession = DefaultSession
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel converts a log level name to a slog.Level; empty means info
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}
