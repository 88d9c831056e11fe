package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8081" {
		t.Fatalf("unexpected default port: %s", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("unexpected default backend: %s", cfg.DataBackend)
	}
	if cfg.TrendWindow != 6 {
		t.Fatalf("unexpected default trend window: %d", cfg.TrendWindow)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("TREND_WINDOW", "12")
	t.Setenv("EXPORT_INTERVAL", "1m")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Fatalf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.DataBackend != "memory" {
		t.Fatalf("expected memory backend, got %s", cfg.DataBackend)
	}
	if cfg.TrendWindow != 12 {
		t.Fatalf("expected window 12, got %d", cfg.TrendWindow)
	}
	if cfg.ExportInterval != time.Minute {
		t.Fatalf("expected 1m interval, got %s", cfg.ExportInterval)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = "abc" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"bad backend", func(c *Config) { c.DataBackend = "postgres" }},
		{"empty sqlite path", func(c *Config) { c.DataBackend = "sqlite"; c.SQLiteDBPath = " " }},
		{"window too small", func(c *Config) { c.TrendWindow = 0 }},
		{"window too large", func(c *Config) { c.TrendWindow = 25 }},
		{"interval too short", func(c *Config) { c.ExportInterval = time.Millisecond }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Load()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
