// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package services

import (
	"context"
	"time"

	"github.com/xvmee/portfolio/internal/logging"
)

// DefaultSessionCleanupInterval is used when no interval is given.
const DefaultSessionCleanupInterval = 15 * time.Minute

// ExpiredSessionCleaner is satisfied by every auth.SessionStore.
type ExpiredSessionCleaner interface {
	CleanupExpired(ctx context.Context) (int, error)
}

// SessionCleanupService periodically drops expired sessions.
type SessionCleanupService struct {
	store    ExpiredSessionCleaner
	interval time.Duration
	name     string
}

// NewSessionCleanupService sweeps store every interval.
func NewSessionCleanupService(store ExpiredSessionCleaner, interval time.Duration) *SessionCleanupService {
	if interval <= 0 {
		interval = DefaultSessionCleanupInterval
	}
	return &SessionCleanupService{
		store:    store,
		interval: interval,
		name:     "session-cleanup",
	}
}

// Serve implements suture.Service. A failed sweep is logged and retried on
// the next tick rather than restarting the service.
func (s *SessionCleanupService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionCleanupService) sweep(ctx context.Context) {
	removed, err := s.store.CleanupExpired(ctx)
	if err != nil {
		logging.Warn().Err(err).Str("component", s.name).Msg("expired session cleanup failed")
		return
	}
	if removed > 0 {
		logging.Debug().Str("component", s.name).Int("removed", removed).Msg("expired sessions removed")
	}
}

// String implements fmt.Stringer for suture's logs.
func (s *SessionCleanupService) String() string {
	return s.name
}
