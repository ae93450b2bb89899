package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given and the file exists
const DefaultPath = "./transcriber.yaml"

// Config holds the settings shared by the CLI commands
type Config struct {
	ImagesDir string `yaml:"images_dir"`
	OutputDir string `yaml:"output_dir"`
	StaticDir string `yaml:"static_dir"`
	Port      string `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ImagesDir: "1954_jpg",
		OutputDir: ".",
		StaticDir: "static",
		Port:      "8888",
		LogLevel:  "info",
	}
}

// Load builds the configuration from defaults, then the YAML file, then TRANSCRIBER_* environment variables.
// An explicit path must exist; the default path is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		cfg.merge(&fileConfig)
		slog.Debug("Loaded config file", "path", path)
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) merge(other *Config) {
	if other.ImagesDir != "" {
		c.ImagesDir = other.ImagesDir
	}
	if other.OutputDir != "" {
		c.OutputDir = other.OutputDir
	}
	if other.StaticDir != "" {
		c.StaticDir = other.StaticDir
	}
	if other.Port != "" {
		c.Port = other.Port
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

func (c *Config) applyEnv() {
	envMappings := map[string]*string{
		"TRANSCRIBER_IMAGES_DIR": &c.ImagesDir,
		"TRANSCRIBER_OUTPUT_DIR": &c.OutputDir,
		"TRANSCRIBER_STATIC_DIR": &c.StaticDir,
		"TRANSCRIBER_PORT":       &c.Port,
		"TRANSCRIBER_LOG_LEVEL":  &c.LogLevel,
	}

	for envVar, field := range envMappings {
		if value := strings.TrimSpace(os.Getenv(envVar)); value != "" {
			*field = value
		}
	}
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	if c.ImagesDir == "" {
		return fmt.Errorf("images_dir must not be empty")
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel onto a slog level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}
