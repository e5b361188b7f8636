package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
query:
  ticker: aapl
  start: 1609459200
  end: 1609545600
  interval: 1wk
  event: div
output: json
proxy: http://localhost:8080
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Query.Ticker != "aapl" || cfg.Query.Interval != "1wk" || cfg.Query.Event != "div" {
		t.Errorf("query not loaded: %+v", cfg.Query)
	}
	if cfg.Query.Start != 1609459200 || cfg.Query.End != 1609545600 {
		t.Errorf("timestamps not loaded: %+v", cfg.Query)
	}
	if cfg.Output != "json" || cfg.Proxy != "http://localhost:8080" {
		t.Errorf("output/proxy not loaded: %s %s", cfg.Output, cfg.Proxy)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
query:
  ticker: SPY
  start: 1609459200
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Query.Event != "history" {
		t.Errorf("event default %s, want history", cfg.Query.Event)
	}
	if cfg.Output != "table" {
		t.Errorf("output default %s, want table", cfg.Output)
	}
	if cfg.Query.End != 0 {
		t.Errorf("end should stay unset, got %f", cfg.Query.End)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Output != "table" {
		t.Errorf("defaults not applied on missing file: %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
query:
  ticker: SPY
  start: 1
`)
	t.Setenv("HISTFETCH_TICKER", "msft")
	t.Setenv("HISTFETCH_START", "1700000000.7")
	t.Setenv("HISTFETCH_INTERVAL", "1mo")
	t.Setenv("HISTFETCH_OUTPUT", "json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Query.Ticker != "msft" {
		t.Errorf("ticker override not applied: %s", cfg.Query.Ticker)
	}
	if cfg.Query.Start != 1700000000.7 {
		t.Errorf("start override not applied: %f", cfg.Query.Start)
	}
	if cfg.Query.Interval != "1mo" || cfg.Output != "json" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing ticker", func(c *Config) { c.Query.Ticker = "" }, true},
		{"zero start", func(c *Config) { c.Query.Start = 0 }, true},
		{"bad event", func(c *Config) { c.Query.Event = "earnings" }, true},
		{"bad output", func(c *Config) { c.Output = "csv" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Query.Ticker = "AAPL"
			cfg.Query.Start = 1609459200
			cfg.Query.Event = "history"
			cfg.Output = "table"
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
