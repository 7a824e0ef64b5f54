package config

import (
	"strings"

	"github.com/jsolano/ridgevault/pkg/content"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// Default Strategy:
//   - Zero values (0, "", false) are replaced with defaults
//   - Explicit values are preserved
//   - Database defaults are handled by store.Config.ApplyDefaults
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	cfg.Database.ApplyDefaults()
	applyContentDefaults(&cfg.Content)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

// applyContentDefaults sets the default per-file size cap.
func applyContentDefaults(cfg *ContentConfig) {
	if cfg.MaxFileSize == 0 {
		cfg.MaxFileSize = content.DefaultMaxSize
	}
}

// GetDefaultConfig returns a Config populated entirely with default values.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
