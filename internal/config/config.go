// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		NoColor bool   `yaml:"no_color"`
		Debug   bool   `yaml:"debug"`
	} `yaml:"defaults"`

	// Resource limits applied to each extraction call. Container input is
	// untrusted, so both the size and the parse time are bounded.
	Limits struct {
		MaxFileSizeMB       int64 `yaml:"max_file_size_mb"`
		ParseTimeoutSeconds int   `yaml:"parse_timeout_seconds"`
	} `yaml:"limits"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.NoColor = false
	config.Defaults.Debug = false
	config.Limits.MaxFileSizeMB = 500
	config.Limits.ParseTimeoutSeconds = 30

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads the configuration file, falling back to the
// defaults on any error.
func LoadConfigOrDefault(configPath string) *Config {
	config, err := LoadConfig(configPath)
	if err != nil {
		config, _ = LoadConfig("")
	}
	return config
}

// FindConfigFile looks for a config file in standard locations
func FindConfigFile() string {
	candidates := []string{
		"media-scan.yaml",
		".media-scan.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "media-scan", "config.yaml"),
			filepath.Join(home, ".media-scan.yaml"),
		)
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// MaxFileSize returns the configured size cap in bytes; zero disables it.
func (c *Config) MaxFileSize() int64 {
	if c.Limits.MaxFileSizeMB <= 0 {
		return 0
	}
	return c.Limits.MaxFileSizeMB * 1024 * 1024
}

// ParseTimeout returns the per-call parse time bound; zero disables it.
func (c *Config) ParseTimeout() time.Duration {
	if c.Limits.ParseTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Limits.ParseTimeoutSeconds) * time.Second
}
