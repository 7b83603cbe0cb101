// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package logging

import (
	"github.com/rs/zerolog"
)

// AuditLogger records authentication events with sensitive values masked.
type AuditLogger struct {
	logger zerolog.Logger
}

// NewAuditLogger creates an audit logger on the global logger.
func NewAuditLogger() *AuditLogger {
	return &AuditLogger{logger: WithComponent("auth")}
}

// NewAuditLoggerWithLogger creates an audit logger on a specific logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAuditLoggerWithLogger(logger zerolog.Logger) *AuditLogger {
	return &AuditLogger{logger: logger.With().Str("component", "auth").Logger()}
}

// LoginSuccess records a successful admin login.
func (l *AuditLogger) LoginSuccess(userID int, username, sessionID, ip string) {
	l.logger.Info().
		Str("event", "login_success").
		Int("user_id", userID).
		Str("username", SanitizeUsername(username)).
		Str("session_id", SanitizeSessionID(sessionID)).
		Str("ip", ip).
		Msg("login succeeded")
}

// LoginFailure records a rejected login attempt.
func (l *AuditLogger) LoginFailure(username, ip, reason string) {
	l.logger.Warn().
		Str("event", "login_failure").
		Str("username", SanitizeUsername(username)).
		Str("ip", ip).
		Str("reason", reason).
		Msg("login failed")
}

// Logout records a session being destroyed.
func (l *AuditLogger) Logout(sessionID, ip string) {
	l.logger.Info().
		Str("event", "logout").
		Str("session_id", SanitizeSessionID(sessionID)).
		Str("ip", ip).
		Msg("logout")
}

// SanitizeSessionID masks a session ID, keeping four characters at each end.
func SanitizeSessionID(sessionID string) string {
	if sessionID == "" {
		return ""
	}
	if len(sessionID) <= 12 {
		return "***"
	}
	return sessionID[:4] + "..." + sessionID[len(sessionID)-4:]
}

// SanitizeUsername keeps the first two characters of a username.
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}
	if len(username) <= 2 {
		return "***"
	}
	return username[:2] + "***"
}

// SanitizeValue strips control characters and truncates to 200 bytes so
// client-supplied strings cannot forge log lines.
func SanitizeValue(value string) string {
	out := make([]rune, 0, len(value))
	for _, r := range value {
		if r < 0x20 || r == 0x7f {
			continue
		}
		out = append(out, r)
	}
	s := string(out)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
