package config

import (
	"path/filepath"
	"testing"

	"github.com/jsolano/ridgevault/pkg/store"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected default log level INFO, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected default log format text, got %q", cfg.Logging.Format)
	}
	if cfg.Database.Type != store.DatabaseTypeSQLite {
		t.Errorf("expected default database type sqlite, got %q", cfg.Database.Type)
	}
	if cfg.Content.MaxFileSize == 0 {
		t.Errorf("expected a non-zero default max file size")
	}
}

func TestLoadWithMissingConfigFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load returned error for a missing file: %v", err)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected defaults when config file is missing, got level %q", cfg.Logging.Level)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	original := GetDefaultConfig()
	original.Logging.Level = "DEBUG"
	original.Database.SQLite.Path = "/var/lib/ridgevault/backups.db"

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Logging.Level != "DEBUG" {
		t.Errorf("expected level DEBUG after round trip, got %q", loaded.Logging.Level)
	}
	if loaded.Database.SQLite.Path != "/var/lib/ridgevault/backups.db" {
		t.Errorf("expected sqlite path to survive round trip, got %q", loaded.Database.SQLite.Path)
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "TRACE"

	if err := Validate(cfg); err == nil {
		t.Errorf("expected validation to reject log level TRACE")
	}
}
