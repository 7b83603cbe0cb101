// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

// Package config loads the server configuration.
//
// Sources are layered with koanf, later layers winning:
//  1. Built-in defaults
//  2. Optional YAML file (CONFIG_PATH, or config.yaml / config.yml in the working directory)
//  3. Environment variables, after a .env file in the working directory is applied
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("load configuration")
//	}
//	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
package config

import (
	"time"
)

// Environment names accepted by ServerConfig.Environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// DefaultSessionSecret is used when SESSION_SECRET is unset.
const DefaultSessionSecret = "secret-key"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Storage  StorageConfig  `koanf:"storage"`
	Web      WebConfig      `koanf:"web"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Environment is development, test or production. Production switches
	// the store to demo data, the uploader to demo images, and marks the
	// session cookie Secure.
	Environment string `koanf:"environment"`
}

// APIConfig holds portfolio listing settings.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds session, credential and rate limit settings.
type SecurityConfig struct {
	SessionSecret    string        `koanf:"session_secret"`
	SessionTimeout   time.Duration `koanf:"session_timeout"`
	SessionStore     string        `koanf:"session_store"` // memory or badger
	SessionStorePath string        `koanf:"session_store_path"`
	SlidingSession   bool          `koanf:"sliding_session"`

	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	CORSOrigins []string `koanf:"cors_origins"`

	RateLimitDisabled      bool          `koanf:"rate_limit_disabled"`
	RateLimitLoginRequests int           `koanf:"rate_limit_login_requests"`
	RateLimitLoginWindow   time.Duration `koanf:"rate_limit_login_window"`
	RateLimitWriteRequests int           `koanf:"rate_limit_write_requests"`
	RateLimitWriteWindow   time.Duration `koanf:"rate_limit_write_window"`
}

// StorageConfig holds paths for persisted portfolio data and images.
type StorageConfig struct {
	// DataFile is the JSON mirror of the portfolio items (development only).
	DataFile string `koanf:"data_file"`

	// UploadsDir receives uploaded images and backs /uploads/.
	UploadsDir string `koanf:"uploads_dir"`

	// DemoAssetsDir holds demo-image-*.jpg served in production.
	DemoAssetsDir string `koanf:"demo_assets_dir"`

	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
}

// WebConfig holds settings for the bundled front end.
type WebConfig struct {
	StaticDir string `koanf:"static_dir"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
