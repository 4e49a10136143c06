// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected default format=text, got %q", cfg.Defaults.Format)
	}
	if cfg.Defaults.NoColor {
		t.Error("expected color enabled by default")
	}
	if cfg.Limits.MaxFileSizeMB != 500 {
		t.Errorf("expected default max_file_size_mb=500, got %d", cfg.Limits.MaxFileSizeMB)
	}
	if cfg.Limits.ParseTimeoutSeconds != 30 {
		t.Errorf("expected default parse_timeout_seconds=30, got %d", cfg.Limits.ParseTimeoutSeconds)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  format: json
  no_color: true
limits:
  max_file_size_mb: 50
  parse_timeout_seconds: 5
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("expected format=json, got %q", cfg.Defaults.Format)
	}
	if !cfg.Defaults.NoColor {
		t.Error("expected no_color=true")
	}
	if cfg.MaxFileSize() != 50*1024*1024 {
		t.Errorf("expected 50MB size cap, got %d", cfg.MaxFileSize())
	}
	if cfg.ParseTimeout() != 5*time.Second {
		t.Errorf("expected 5s parse timeout, got %v", cfg.ParseTimeout())
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	// A path that doesn't exist should fall back to defaults
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults)")
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected default format=text, got %q", cfg.Defaults.Format)
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Should fall back to defaults, not panic
	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults on parse error)")
	}
}

func TestLimits_ZeroDisablesBounds(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Limits.MaxFileSizeMB = 0
	cfg.Limits.ParseTimeoutSeconds = 0
	if cfg.MaxFileSize() != 0 {
		t.Errorf("expected disabled size cap, got %d", cfg.MaxFileSize())
	}
	if cfg.ParseTimeout() != 0 {
		t.Errorf("expected disabled timeout, got %v", cfg.ParseTimeout())
	}
}
