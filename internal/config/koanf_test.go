// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Server.Environment != EnvDevelopment {
		t.Errorf("Server.Environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Security.SessionTimeout != 24*time.Hour {
		t.Errorf("Security.SessionTimeout = %v, want 24h", cfg.Security.SessionTimeout)
	}
	if cfg.Security.AdminUsername != "xvmee" {
		t.Errorf("Security.AdminUsername = %q, want xvmee", cfg.Security.AdminUsername)
	}
	if cfg.Storage.MaxUploadBytes != 5*1024*1024 {
		t.Errorf("Storage.MaxUploadBytes = %d, want 5MB", cfg.Storage.MaxUploadBytes)
	}
	if cfg.Storage.DataFile != "data/portfolio-data.json" {
		t.Errorf("Storage.DataFile = %q", cfg.Storage.DataFile)
	}
	if cfg.API.DefaultPageSize != 6 {
		t.Errorf("API.DefaultPageSize = %d, want 6", cfg.API.DefaultPageSize)
	}
}

// unsetEnv clears variables for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	unsetEnv(t, ConfigPathEnvVar, "PORT", "ENVIRONMENT")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("SESSION_TIMEOUT", "2h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Errorf("NODE_ENV=production should select production, got %q", cfg.Server.Environment)
	}
	if cfg.Security.SessionTimeout != 2*time.Hour {
		t.Errorf("SessionTimeout = %v, want 2h", cfg.Security.SessionTimeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
storage:
  uploads_dir: /srv/uploads
security:
  admin_password: from-file
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	unsetEnv(t, "ADMIN_PASSWORD", "PORT", "HTTP_PORT", "UPLOADS_DIR", "ENVIRONMENT", "NODE_ENV")
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Storage.UploadsDir != "/srv/uploads" {
		t.Errorf("Storage.UploadsDir = %q", cfg.Storage.UploadsDir)
	}
	if cfg.Security.AdminPassword != "from-file" {
		t.Errorf("Security.AdminPassword = %q, want from-file", cfg.Security.AdminPassword)
	}
}

func TestLoadWithKoanf_MissingAdminPassword(t *testing.T) {
	unsetEnv(t, ConfigPathEnvVar, "ADMIN_PASSWORD")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected error without ADMIN_PASSWORD")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PORTFOLIO_DOTENV_PROBE=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	unsetEnv(t, "PORTFOLIO_DOTENV_PROBE")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv() error = %v", err)
	}
	if got := os.Getenv("PORTFOLIO_DOTENV_PROBE"); got != "loaded" {
		t.Errorf("PORTFOLIO_DOTENV_PROBE = %q, want loaded", got)
	}

	if err := loadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"PORT", "server.port"},
		{"NODE_ENV", "server.environment"},
		{"SESSION_SECRET", "security.session_secret"},
		{"UPLOADS_DIR", "storage.uploads_dir"},
		{"LOG_FORMAT", "logging.format"},
		{"HOME", ""},
		{"PATH", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeEnvironment(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":            EnvDevelopment,
		"dev":         EnvDevelopment,
		"Production":  EnvProduction,
		"prod":        EnvProduction,
		"testing":     EnvTest,
		"staging":     "staging",
		" production": EnvProduction,
	}
	for in, want := range tests {
		if got := normalizeEnvironment(in); got != want {
			t.Errorf("normalizeEnvironment(%q) = %q, want %q", in, got, want)
		}
	}
}
