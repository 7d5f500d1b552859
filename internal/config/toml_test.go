package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing config, got %v", err)
	}
	if cfg.Data.Dir != nil || cfg.Session.PageSize != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigDecodesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[data]
dir = "/srv/bikeshare"

[session]
page-size = 10
log-level = "debug"

[cities.washington]
file = "dc.csv"

[cities.boston]
file = "boston.csv"
gender = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Data.Dir == nil || *cfg.Data.Dir != "/srv/bikeshare" {
		t.Fatalf("unexpected data dir: %v", cfg.Data.Dir)
	}
	if cfg.Session.PageSize == nil || *cfg.Session.PageSize != 10 {
		t.Fatalf("unexpected page size: %v", cfg.Session.PageSize)
	}
	if cfg.Session.LogLevel == nil || *cfg.Session.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %v", cfg.Session.LogLevel)
	}
	boston, ok := cfg.Cities["boston"]
	if !ok || boston.File == nil || *boston.File != "boston.csv" {
		t.Fatalf("unexpected boston config: %+v", cfg.Cities)
	}
	if boston.Gender == nil || !*boston.Gender || boston.BirthYear != nil {
		t.Fatalf("unexpected boston schema: %+v", boston)
	}
}

func TestLoadConfigRejectsEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
