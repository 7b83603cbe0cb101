// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/xvmee/portfolio/internal/config"
	"github.com/xvmee/portfolio/internal/logging"
	"github.com/xvmee/portfolio/internal/metrics"
	"github.com/xvmee/portfolio/internal/middleware"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// Rate limiting configuration
	RateLimitLogin    RateLimitConfig
	RateLimitWrite    RateLimitConfig
	RateLimitDisabled bool
}

// RateLimitConfig defines rate limit parameters for specific endpoints.
type RateLimitConfig struct {
	// Requests is the number of requests allowed in the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
}

// Endpoint-specific rate limits
var (
	// DefaultRateLimitLogin throttles password guessing per IP.
	DefaultRateLimitLogin = RateLimitConfig{Requests: 5, Window: 5 * time.Minute}

	// DefaultRateLimitWrite bounds gallery uploads and deletions per IP.
	DefaultRateLimitWrite = RateLimitConfig{Requests: 30, Window: time.Minute}
)

// DefaultChiMiddlewareConfig returns the default configuration. The session
// cookie has to cross origins in development, so credentials are allowed.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins:   []string{},
		CORSAllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		CORSExposedHeaders:   []string{TotalCountHeader, middleware.RequestIDHeader},
		CORSAllowCredentials: true,
		CORSMaxAge:           86400,

		RateLimitLogin: DefaultRateLimitLogin,
		RateLimitWrite: DefaultRateLimitWrite,
	}
}

// ChiMiddlewareConfigFromConfig maps the security settings onto a middleware
// configuration.
func ChiMiddlewareConfigFromConfig(cfg *config.Config) *ChiMiddlewareConfig {
	mc := DefaultChiMiddlewareConfig()
	if cfg == nil {
		return mc
	}
	sec := cfg.Security
	mc.CORSAllowedOrigins = sec.CORSOrigins
	mc.RateLimitDisabled = sec.RateLimitDisabled
	if sec.RateLimitLoginRequests > 0 && sec.RateLimitLoginWindow > 0 {
		mc.RateLimitLogin = RateLimitConfig{Requests: sec.RateLimitLoginRequests, Window: sec.RateLimitLoginWindow}
	}
	if sec.RateLimitWriteRequests > 0 && sec.RateLimitWriteWindow > 0 {
		mc.RateLimitWrite = RateLimitConfig{Requests: sec.RateLimitWriteRequests, Window: sec.RateLimitWriteWindow}
	}
	return mc
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	// cors rejects "*" together with credentials, so a wildcard reflects the
	// request origin instead.
	opts := cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		ExposedHeaders:   config.CORSExposedHeaders,
		AllowCredentials: config.CORSAllowCredentials,
		MaxAge:           config.CORSMaxAge,
	}
	if config.CORSAllowCredentials && containsWildcard(config.CORSAllowedOrigins) {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(*http.Request, string) bool { return true }
	}

	return &ChiMiddleware{
		config: config,
		cors:   cors.Handler(opts),
	}
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// CORS returns a Chi-compatible CORS middleware using go-chi/cors.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimitCustom returns a per-IP rate limiter. Rejections are answered
// with 429 and counted under name.
func (m *ChiMiddleware) RateLimitCustom(name string, config RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		config.Requests,
		config.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded(name)),
	)
}

// RateLimitLogin returns the strict limiter for login attempts.
func (m *ChiMiddleware) RateLimitLogin() func(http.Handler) http.Handler {
	return m.RateLimitCustom("login", m.config.RateLimitLogin)
}

// RateLimitWrite returns the limiter for gallery mutations.
func (m *ChiMiddleware) RateLimitWrite() func(http.Handler) http.Handler {
	return m.RateLimitCustom("write", m.config.RateLimitWrite)
}

func rateLimitExceeded(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.RecordRateLimitHit(name)
		logging.Ctx(r.Context()).Warn().
			Str("limiter", name).
			Str("ip", clientIP(r)).
			Str("path", r.URL.Path).
			Msg("rate limit exceeded")
		NewResponseWriter(w, r).TooManyRequests(msgTooManyRequests)
	}
}

// APISecurityHeaders returns a middleware that adds security headers to every
// response.
//
// Headers added:
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: DENY
//   - Referrer-Policy: strict-origin-when-cross-origin
//   - Strict-Transport-Security, only over HTTPS or behind a TLS-terminating proxy
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
