package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Expected defaults %+v, got %+v", *Default(), *cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transcriber.yaml")
	data := "images_dir: scans\nport: \"9000\"\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TRANSCRIBER_OUTPUT_DIR", "exports")
	t.Setenv("TRANSCRIBER_PORT", "9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.ImagesDir != "scans" {
		t.Errorf("Expected images dir scans, got %s", cfg.ImagesDir)
	}
	if cfg.OutputDir != "exports" {
		t.Errorf("Expected output dir exports, got %s", cfg.OutputDir)
	}
	if cfg.Port != "9100" {
		t.Errorf("Expected env to override port, got %s", cfg.Port)
	}
	if cfg.StaticDir != "static" {
		t.Errorf("Expected default static dir, got %s", cfg.StaticDir)
	}
	level, _ := cfg.Level()
	if level != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", level)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "empty images dir", mutate: func(c *Config) { c.ImagesDir = "" }, wantErr: true},
		{name: "non numeric port", mutate: func(c *Config) { c.Port = "http" }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
