// internal/config/config_test.go
package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Printer.Transport != "tcp" {
		t.Errorf("printer.transport = %q, want tcp", cfg.Printer.Transport)
	}
	if cfg.Printer.Port != "9100" {
		t.Errorf("printer.port = %q, want 9100", cfg.Printer.Port)
	}
	if cfg.Printer.Defaults.CPI != "10 cpi" {
		t.Errorf("printer.defaults.cpi = %q, want 10 cpi", cfg.Printer.Defaults.CPI)
	}
	if cfg.Printer.Defaults.RightMargin != 7.5 {
		t.Errorf("printer.defaults.right_margin = %v, want 7.5", cfg.Printer.Defaults.RightMargin)
	}
	if cfg.Printer.Defaults.Mode != "LINE_BY_LINE" {
		t.Errorf("printer.defaults.mode = %q, want LINE_BY_LINE", cfg.Printer.Defaults.Mode)
	}
	if cfg.Printer.PushDefaultsOnStart {
		t.Errorf("printer.push_defaults_on_start should default to false")
	}
	if cfg.History.Enabled {
		t.Errorf("history.enabled should default to false")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:  ServerConfig{Host: "0.0.0.0", Port: "8090"},
			Printer: PrinterConfig{Transport: "tcp", Host: "192.168.1.200", Defaults: DefaultsConfig{Mode: "LINE_BY_LINE"}},
			Logging: LoggingConfig{Level: "info"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown transport", func(c *Config) { c.Printer.Transport = "parallel" }},
		{"tcp without host", func(c *Config) { c.Printer.Host = "" }},
		{"serial without device", func(c *Config) { c.Printer.Transport = "serial" }},
		{"bad mode", func(c *Config) { c.Printer.Defaults.Mode = "BUFFERED" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"history without database host", func(c *Config) { c.History.Enabled = true }},
		{"missing server port", func(c *Config) { c.Server.Port = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := validate(cfg); err == nil {
				t.Errorf("validate() accepted invalid config")
			}
		})
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: "8090"},
		Printer: PrinterConfig{Transport: "tcp", Host: "10.0.0.5", Defaults: DefaultsConfig{Mode: "LIVE"}},
		Logging: LoggingConfig{Level: "debug"},
	}
	if err := validate(cfg); err != nil {
		t.Errorf("validate() error = %v", err)
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host: "localhost", Port: 5432, User: "postgres",
			Password: "postgres", DBName: "okidata", SSLMode: "disable",
		},
	}
	want := "host=localhost port=5432 user=postgres password=postgres dbname=okidata sslmode=disable"
	if got := cfg.GetDatabaseDSN(); got != want {
		t.Errorf("GetDatabaseDSN() = %q, want %q", got, want)
	}
}
