// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package config

import (
	"fmt"
	"time"

	"github.com/xvmee/portfolio/internal/logging"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	return c.validateLogging()
}

var validEnvironments = map[string]bool{
	EnvDevelopment: true,
	EnvProduction:  true,
	EnvTest:        true,
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, test, production")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be at least 1")
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be at least API_DEFAULT_PAGE_SIZE")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.SessionTimeout <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT must be positive")
	}
	if c.Security.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	switch c.Security.SessionStore {
	case "memory":
	case "badger":
		if c.Security.SessionStorePath == "" {
			return fmt.Errorf("SESSION_STORE_PATH is required when SESSION_STORE is badger")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be one of: memory, badger")
	}
	if c.Security.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME is required")
	}
	if c.Security.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	// bcrypt rejects longer inputs
	if len(c.Security.AdminPassword) > 72 {
		return fmt.Errorf("ADMIN_PASSWORD must be at most 72 bytes")
	}
	return c.validateRateLimits()
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	limits := []struct {
		name     string
		requests int
		window   time.Duration
	}{
		{"RATE_LIMIT_LOGIN", c.Security.RateLimitLoginRequests, c.Security.RateLimitLoginWindow},
		{"RATE_LIMIT_WRITE", c.Security.RateLimitWriteRequests, c.Security.RateLimitWriteWindow},
	}
	for _, l := range limits {
		if l.requests < minRateLimitRequests || l.requests > maxRateLimitRequests {
			return fmt.Errorf("%s_REQUESTS must be between %d and %d", l.name, minRateLimitRequests, maxRateLimitRequests)
		}
		if l.window < minRateLimitWindow || l.window > maxRateLimitWindow {
			return fmt.Errorf("%s_WINDOW must be between %v and %v", l.name, minRateLimitWindow, maxRateLimitWindow)
		}
	}
	return nil
}

func (c *Config) validateStorage() error {
	if c.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if c.Storage.UploadsDir == "" {
		return fmt.Errorf("UPLOADS_DIR is required")
	}
	if c.Storage.DataFile == "" && !c.IsProduction() {
		return fmt.Errorf("DATA_FILE is required outside production")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled")
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
	return nil
}

// IsProduction reports whether the server runs with demo data and secure cookies.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// IsDevelopment reports whether the server persists uploads and the JSON mirror.
func (c *Config) IsDevelopment() bool {
	return !c.IsProduction()
}

// ShouldWarnAboutSessionSecret reports whether the built-in session secret
// is in use outside development.
func (c *Config) ShouldWarnAboutSessionSecret() bool {
	return c.Security.SessionSecret == DefaultSessionSecret && c.Server.Environment != EnvDevelopment
}

// ShouldWarnAboutCORS reports whether any origin may send credentialed requests.
func (c *Config) ShouldWarnAboutCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
