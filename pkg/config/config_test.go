package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apickard/discbin/pkg/lostfound/store"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// Nonexistent path falls back to defaults.
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "INFO" {
		t.Errorf("logging level = %q, want INFO", cfg.Logging.Level)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("api port = %d, want 8080", cfg.API.Port)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("shutdown timeout = %v, want 30s", cfg.ShutdownTimeout)
	}
	if cfg.Database.Type != store.DatabaseTypeSQLite {
		t.Errorf("database type = %q, want sqlite", cfg.Database.Type)
	}
	if cfg.Telemetry.Enabled {
		t.Error("telemetry enabled by default")
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics enabled by default")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
  format: json
shutdown_timeout: 15s
api:
  port: 9999
  request_timeout: 10s
database:
  type: sqlite
  sqlite:
    path: /tmp/discbin-test.db
metrics:
  enabled: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("logging level = %q, want DEBUG (normalized)", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("logging format = %q, want json", cfg.Logging.Format)
	}
	if cfg.API.Port != 9999 {
		t.Errorf("api port = %d, want 9999", cfg.API.Port)
	}
	if cfg.API.RequestTimeout != 10*time.Second {
		t.Errorf("request timeout = %v, want 10s", cfg.API.RequestTimeout)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("shutdown timeout = %v, want 15s", cfg.ShutdownTimeout)
	}
	if cfg.Metrics.Port != 9090 {
		t.Errorf("metrics port = %d, want default 9090", cfg.Metrics.Port)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "logging:\n  level: verbose\n"},
		{"bad log format", "logging:\n  format: xml\n"},
		{"bad api port", "api:\n  port: 70000\n"},
		{"bad database type", "database:\n  type: mongodb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, "logging:\n  level: info\n")

	t.Setenv("DISCBIN_LOGGING_LEVEL", "ERROR")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "ERROR" {
		t.Errorf("logging level = %q, want ERROR from env", cfg.Logging.Level)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := GetDefaultConfig()
	cfg.API.Port = 8181
	cfg.Database.SQLite.Path = "/var/lib/discbin/discbin.db"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("saved config missing: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load of saved config failed: %v", err)
	}
	if loaded.API.Port != 8181 {
		t.Errorf("api port = %d, want 8181", loaded.API.Port)
	}
	if loaded.Database.SQLite.Path != "/var/lib/discbin/discbin.db" {
		t.Errorf("sqlite path = %q", loaded.Database.SQLite.Path)
	}
}

func TestMustLoad_MissingExplicitPath(t *testing.T) {
	_, err := MustLoad(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}
