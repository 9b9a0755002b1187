// Package config loads the planarity CLI configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the ~/.planarity/config.yaml configuration.
type Config struct {
	// Service endpoint configuration
	Service *ServiceConfig `yaml:"service,omitempty"`

	// Directory where result images are written
	OutputDir string `yaml:"outputDir,omitempty"`

	// Preview server configuration
	Preview *PreviewConfig `yaml:"preview,omitempty"`
}

// ServiceConfig points the CLI at a planarity service.
type ServiceConfig struct {
	// Base URL of the service
	URL string `yaml:"url,omitempty"`

	// Request timeout in seconds; 0 leaves requests unbounded
	TimeoutSeconds int `yaml:"timeoutSeconds,omitempty"`
}

// PreviewConfig configures the local result preview server.
type PreviewConfig struct {
	// Server host
	Host string `yaml:"host,omitempty"`

	// Server port
	Port int `yaml:"port,omitempty"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planarity", "config.yaml")
}

// Load loads configuration from path, or from DefaultPath when path is
// empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

// Save writes configuration to path, or to DefaultPath when path is empty,
// creating the parent directory if needed.
func Save(config *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Service: &ServiceConfig{
			URL:            "http://localhost:5000",
			TimeoutSeconds: 0,
		},
		OutputDir: "planarity-out",
		Preview: &PreviewConfig{
			Host: "localhost",
			Port: 5173,
		},
	}
}

// applyDefaults applies default values to missing configuration
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.Service == nil {
		config.Service = defaults.Service
	} else if config.Service.URL == "" {
		config.Service.URL = defaults.Service.URL
	}

	if config.OutputDir == "" {
		config.OutputDir = defaults.OutputDir
	}

	if config.Preview == nil {
		config.Preview = defaults.Preview
	} else {
		if config.Preview.Host == "" {
			config.Preview.Host = defaults.Preview.Host
		}
		if config.Preview.Port == 0 {
			config.Preview.Port = defaults.Preview.Port
		}
	}
}

// ServiceURL returns the configured service URL, falling back to the
// default when unset.
func (c *Config) ServiceURL() string {
	if c.Service != nil && c.Service.URL != "" {
		return c.Service.URL
	}
	return DefaultConfig().Service.URL
}

// Timeout returns the configured request timeout; zero means none.
func (c *Config) Timeout() time.Duration {
	if c.Service == nil {
		return 0
	}
	return time.Duration(c.Service.TimeoutSeconds) * time.Second
}
