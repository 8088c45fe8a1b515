package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port default = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Clients.Yahoo.BaseURL != "https://query1.finance.yahoo.com" {
		t.Errorf("Yahoo.BaseURL default = %q", cfg.Clients.Yahoo.BaseURL)
	}
	if cfg.Storage.Ledger.Path != "data/ledger" {
		t.Errorf("Storage.Ledger.Path default = %q", cfg.Storage.Ledger.Path)
	}
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("TRACKER_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d after env override, want %d", cfg.Server.Port, 9090)
	}
}

func TestConfig_DataPathEnvOverride(t *testing.T) {
	t.Setenv("TRACKER_DATA_PATH", "/var/lib/tracker")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Storage.Ledger.Path != "/var/lib/tracker" {
		t.Errorf("Storage.Ledger.Path = %q after env override", cfg.Storage.Ledger.Path)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.toml")
	content := `
environment = "production"

[server]
port = 9000

[clients.yahoo]
rate_limit = 2
timeout = "5s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Clients.Yahoo.RateLimit != 2 {
		t.Errorf("Yahoo.RateLimit = %d, want 2", cfg.Clients.Yahoo.RateLimit)
	}
	if got := cfg.Clients.Yahoo.GetTimeout(); got != 5*time.Second {
		t.Errorf("Yahoo.GetTimeout() = %v, want 5s", got)
	}
	// Unset fields keep their defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default", cfg.Server.Host)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false for environment = production")
	}
}

func TestLoadConfig_MissingFileIsSkipped(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestYahooConfig_TimeoutFallback(t *testing.T) {
	c := YahooConfig{Timeout: "not-a-duration"}
	if got := c.GetTimeout(); got != 30*time.Second {
		t.Errorf("GetTimeout() = %v, want 30s fallback", got)
	}
}
