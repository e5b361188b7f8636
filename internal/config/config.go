package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all CLI configuration.
type Config struct {
	Query struct {
		Ticker   string  `yaml:"ticker"`
		Start    float64 `yaml:"start"`
		End      float64 `yaml:"end"`
		Interval string  `yaml:"interval"`
		Event    string  `yaml:"event"`
	} `yaml:"query"`
	Output string `yaml:"output"`
	Proxy  string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HISTFETCH_TICKER"); v != "" {
		cfg.Query.Ticker = v
	}
	if v := os.Getenv("HISTFETCH_START"); v != "" {
		if ts, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Query.Start = ts
		}
	}
	if v := os.Getenv("HISTFETCH_END"); v != "" {
		if ts, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Query.End = ts
		}
	}
	if v := os.Getenv("HISTFETCH_INTERVAL"); v != "" {
		cfg.Query.Interval = v
	}
	if v := os.Getenv("HISTFETCH_EVENT"); v != "" {
		cfg.Query.Event = v
	}
	if v := os.Getenv("HISTFETCH_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Query.Event == "" {
		cfg.Query.Event = "history"
	}
	if cfg.Output == "" {
		cfg.Output = "table"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and enumerations are sane.
func (c *Config) Validate() error {
	if c.Query.Ticker == "" {
		return fmt.Errorf("query.ticker is required")
	}
	if c.Query.Start <= 0 {
		return fmt.Errorf("query.start must be a positive UNIX timestamp")
	}
	switch c.Query.Event {
	case "history", "div", "split":
	default:
		return fmt.Errorf("query.event must be one of history, div, split")
	}
	switch c.Output {
	case "table", "json":
	default:
		return fmt.Errorf("output must be table or json")
	}
	return nil
}
