// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvFile is loaded into the process environment before env vars are read.
// Variables already set in the environment are not overwritten.
const DotEnvFile = ".env"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     EnvDevelopment,
		},
		API: APIConfig{
			DefaultPageSize: 6,
			MaxPageSize:     50,
		},
		Security: SecurityConfig{
			SessionSecret:    DefaultSessionSecret,
			SessionTimeout:   24 * time.Hour,
			SessionStore:     "memory",
			SessionStorePath: "data/sessions",
			SlidingSession:   false,

			AdminUsername: "xvmee",
			AdminPassword: "",

			CORSOrigins: []string{"*"},

			RateLimitDisabled:      false,
			RateLimitLoginRequests: 5,
			RateLimitLoginWindow:   5 * time.Minute,
			RateLimitWriteRequests: 30,
			RateLimitWriteWindow:   time.Minute,
		},
		Storage: StorageConfig{
			DataFile:       "data/portfolio-data.json",
			UploadsDir:     "uploads",
			DemoAssetsDir:  "client/src/assets",
			MaxUploadBytes: 5 * 1024 * 1024,
		},
		Web: WebConfig{
			StaticDir: "web/dist",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration with koanf. Precedence: env > file > defaults.
func LoadWithKoanf() (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Server.Environment = normalizeEnvironment(cfg.Server.Environment)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv applies a .env file if one exists.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// normalizeEnvironment folds the short forms used by hosting platforms.
func normalizeEnvironment(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "", "dev", "development":
		return EnvDevelopment
	case "prod", "production":
		return EnvProduction
	case "test", "testing":
		return EnvTest
	default:
		return strings.ToLower(env)
	}
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values for slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to config paths.
// NODE_ENV and PORT are honoured for compatibility with common PaaS setups.
var envMappings = map[string]string{
	// Server
	"port":                  "server.port",
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",
	"node_env":              "server.environment",

	// API
	"api_default_page_size": "api.default_page_size",
	"api_max_page_size":     "api.max_page_size",

	// Security
	"session_secret":            "security.session_secret",
	"session_timeout":           "security.session_timeout",
	"session_store":             "security.session_store",
	"session_store_path":        "security.session_store_path",
	"sliding_session":           "security.sliding_session",
	"admin_username":            "security.admin_username",
	"admin_password":            "security.admin_password",
	"cors_origins":              "security.cors_origins",
	"disable_rate_limit":        "security.rate_limit_disabled",
	"rate_limit_login_requests": "security.rate_limit_login_requests",
	"rate_limit_login_window":   "security.rate_limit_login_window",
	"rate_limit_write_requests": "security.rate_limit_write_requests",
	"rate_limit_write_window":   "security.rate_limit_write_window",

	// Storage
	"data_file":        "storage.data_file",
	"uploads_dir":      "storage.uploads_dir",
	"demo_assets_dir":  "storage.demo_assets_dir",
	"max_upload_bytes": "storage.max_upload_bytes",

	// Web
	"static_dir": "web.static_dir",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable to its config path. Unmapped
// variables return "" and are skipped.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
