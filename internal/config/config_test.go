package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "DATABASE_URL", "PE_DATABASE_SOURCE", "MATCH_MODE", "RELOAD_INTERVAL", "RATE_LIMIT_MAX"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want :3000", cfg.ServerAddr)
	}
	if cfg.DatabaseSource != SourceBundled {
		t.Errorf("DatabaseSource = %q, want %q", cfg.DatabaseSource, SourceBundled)
	}
	if cfg.MatchMode != "substring" {
		t.Errorf("MatchMode = %q, want substring", cfg.MatchMode)
	}
	if cfg.ReloadInterval != 0 {
		t.Errorf("ReloadInterval = %v, want 0", cfg.ReloadInterval)
	}
	if cfg.RateLimitMax != 120 {
		t.Errorf("RateLimitMax = %d, want 120", cfg.RateLimitMax)
	}
	if cfg.HasDatabase() {
		t.Error("HasDatabase() = true without DATABASE_URL")
	}
	if !cfg.IsDev() {
		t.Error("IsDev() = false for default env")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/pecheck")
	t.Setenv("PE_DATABASE_SOURCE", SourcePostgres)
	t.Setenv("RELOAD_INTERVAL", "15m")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")

	cfg := Load()
	if cfg.IsDev() {
		t.Error("IsDev() = true for production")
	}
	if !cfg.HasDatabase() {
		t.Error("HasDatabase() = false")
	}
	if cfg.DatabaseSource != SourcePostgres {
		t.Errorf("DatabaseSource = %q", cfg.DatabaseSource)
	}
	if cfg.ReloadInterval != 15*time.Minute {
		t.Errorf("ReloadInterval = %v, want 15m", cfg.ReloadInterval)
	}
	if cfg.RateLimitMax != 120 {
		t.Errorf("RateLimitMax = %d, want fallback 120", cfg.RateLimitMax)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `overrides:
  - key: WWW.Example.com
    company: Example
    owner: Example Capital
    year: "2021"
    source: Internal
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadYAMLFile(path)
	if err != nil {
		t.Fatalf("LoadYAMLFile() error = %v", err)
	}
	if len(cfg.GetOverrides()) != 1 {
		t.Fatalf("GetOverrides() = %d entries, want 1", len(cfg.GetOverrides()))
	}

	o := cfg.GetOverride("example.com")
	if o == nil {
		t.Fatal("GetOverride(example.com) = nil")
	}
	if o.Record.Company != "Example" || o.Record.Owner != "Example Capital" || o.Record.Year != "2021" {
		t.Errorf("override record = %+v", o.Record)
	}
}

func TestLoadYAMLFile_Missing(t *testing.T) {
	cfg, err := LoadYAMLFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil || cfg != nil {
		t.Errorf("LoadYAMLFile(missing) = %v, %v; want nil, nil", cfg, err)
	}
	if cfg.GetOverrides() != nil {
		t.Error("nil config should have no overrides")
	}
}
