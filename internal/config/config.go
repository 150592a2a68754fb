// Package config provides configuration loading for writertools.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name looked up in the working
// directory when no explicit path is given.
const DefaultConfigFile = "writertools.yaml"

// Config represents the complete writertools configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig configures the web server
type ServerConfig struct {
	// Addr is the listen address (default: ":8000")
	Addr string `yaml:"addr"`
	// Debug enables gin's debug mode and verbose request logging
	Debug bool `yaml:"debug"`
	// TemplateGlob locates the HTML templates (default: "web/templates/*.html")
	TemplateGlob string `yaml:"template_glob"`
}

// DatabaseConfig configures the record store
type DatabaseConfig struct {
	// Path is the SQLite database file (empty = ~/.writertools/writertools.db)
	Path string `yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8000",
			Debug:        false,
			TemplateGlob: "web/templates/*.html",
		},
		Database: DatabaseConfig{
			Path: "", // Use the per-user default
		},
	}
}

// Load reads configuration from the given YAML file, layered over the
// defaults. An empty path falls back to writertools.yaml in the working
// directory; a missing file is not an error, defaults apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.TemplateGlob == "" {
		return fmt.Errorf("server.template_glob is required")
	}
	return nil
}
