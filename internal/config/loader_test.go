package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	configContent := `
source:
  type: mysql
  design: Bookshelf
  table: cad_bodies
  database:
    host: localhost
    port: 3307
    user: cad
    password: secret
    database: inventory
    tls: disable
    max_connections: 5

units:
  length: mm
  precision: 1

report:
  format: text
  output: report.txt
  sort: numeric

logging:
  level: debug
  format: json
  output: stdout
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Source.Type != SourceMySQL {
		t.Errorf("expected source type 'mysql', got %s", cfg.Source.Type)
	}
	if cfg.Source.Design != "Bookshelf" {
		t.Errorf("expected design 'Bookshelf', got %s", cfg.Source.Design)
	}
	if cfg.Source.Table != "cad_bodies" {
		t.Errorf("expected table 'cad_bodies', got %s", cfg.Source.Table)
	}
	if cfg.Source.Database.Port != 3307 {
		t.Errorf("expected port 3307, got %d", cfg.Source.Database.Port)
	}
	if cfg.Source.Database.MaxConnections != 5 {
		t.Errorf("expected max_connections 5, got %d", cfg.Source.Database.MaxConnections)
	}
	// Unset values keep their defaults
	if cfg.Source.Database.MaxIdleConnections != 2 {
		t.Errorf("expected default max_idle_connections 2, got %d", cfg.Source.Database.MaxIdleConnections)
	}
	if cfg.Units.Length != "mm" {
		t.Errorf("expected units 'mm', got %s", cfg.Units.Length)
	}
	if cfg.Units.Precision != 1 {
		t.Errorf("expected precision 1, got %d", cfg.Units.Precision)
	}
	if cfg.Report.Format != FormatText {
		t.Errorf("expected format 'text', got %s", cfg.Report.Format)
	}
	if cfg.Report.Title != "Total materials used" {
		t.Errorf("expected default title, got %s", cfg.Report.Title)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadWithEnvVars(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "env-host")
	t.Setenv("TEST_DB_PASS", "env-pass")
	t.Setenv("TEST_EXPORT_DIR", "/exports")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-env.yaml")

	configContent := `
source:
  type: file
  path: ${TEST_EXPORT_DIR}/shelf.yaml
  database:
    host: ${TEST_DB_HOST}
    user: $TEST_DB_USER_NOT_SET
    password: $TEST_DB_PASS
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Source.Path != "/exports/shelf.yaml" {
		t.Errorf("expected path '/exports/shelf.yaml', got %s", cfg.Source.Path)
	}
	if cfg.Source.Database.Host != "env-host" {
		t.Errorf("expected host 'env-host', got %s", cfg.Source.Database.Host)
	}
	if cfg.Source.Database.Password != "env-pass" {
		t.Errorf("expected password 'env-pass', got %s", cfg.Source.Database.Password)
	}
	if cfg.Source.Database.User != "$TEST_DB_USER_NOT_SET" {
		t.Errorf("expected unresolved variable to be kept, got %s", cfg.Source.Database.User)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/partlist.yaml")
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(configPath, []byte("source: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected defaults for missing file, got error: %v", err)
	}
	if cfg.Report.Format != FormatHTML {
		t.Errorf("expected default format 'html', got %s", cfg.Report.Format)
	}
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("source.path", "model.json")
	v.Set("units.length", "in")
	v.Set("report.standalone", true)

	cfg, err := LoadFromViper(v)
	if err != nil {
		t.Fatalf("LoadFromViper failed: %v", err)
	}
	if cfg.Source.Path != "model.json" {
		t.Errorf("expected path 'model.json', got %s", cfg.Source.Path)
	}
	if cfg.Units.Length != "in" {
		t.Errorf("expected units 'in', got %s", cfg.Units.Length)
	}
	if !cfg.Report.Standalone {
		t.Error("expected standalone enabled")
	}
	if cfg.Units.Precision != 2 {
		t.Errorf("expected default precision 2, got %d", cfg.Units.Precision)
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("PARTLIST_TEST_VAR", "value")

	tests := []struct {
		input    string
		expected string
	}{
		{"${PARTLIST_TEST_VAR}", "value"},
		{"$PARTLIST_TEST_VAR", "value"},
		{"prefix-${PARTLIST_TEST_VAR}-suffix", "prefix-value-suffix"},
		{"${PARTLIST_UNSET_VAR}", "${PARTLIST_UNSET_VAR}"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := expandEnvVar(tt.input); got != tt.expected {
				t.Errorf("expandEnvVar(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
