// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/xvmee/portfolio/internal/logging"
	"github.com/xvmee/portfolio/internal/models"
)

// SessionManagerConfig holds cookie and lifetime settings.
type SessionManagerConfig struct {
	// CookieName is the name of the session cookie.
	CookieName string

	// SessionTTL is both the server-side lifetime and the cookie Max-Age.
	SessionTTL time.Duration

	// SlidingSession extends the session on each authenticated request.
	SlidingSession bool

	CookiePath     string
	CookieDomain   string
	CookieSecure   bool
	CookieSameSite http.SameSite
}

// DefaultSessionManagerConfig returns a 24h, non-sliding, HttpOnly Lax cookie.
// CookieSecure is left false; production turns it on.
func DefaultSessionManagerConfig() *SessionManagerConfig {
	return &SessionManagerConfig{
		CookieName:     "portfolio.sid",
		SessionTTL:     24 * time.Hour,
		SlidingSession: false,
		CookiePath:     "/",
		CookieSecure:   false,
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// SessionManager loads, creates and destroys cookie-backed sessions.
type SessionManager struct {
	store  SessionStore
	signer *CookieSigner
	config *SessionManagerConfig
}

// NewSessionManager creates a session manager.
func NewSessionManager(store SessionStore, signer *CookieSigner, config *SessionManagerConfig) *SessionManager {
	if config == nil {
		config = DefaultSessionManagerConfig()
	}
	return &SessionManager{
		store:  store,
		signer: signer,
		config: config,
	}
}

// Authenticate loads the session named by the request cookie into the
// context. Requests without a valid session continue anonymously; use
// RequireAuth for protected routes.
func (m *SessionManager) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := m.sessionIDFromRequest(r)
		if sessionID == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.store.Get(r.Context(), sessionID)
		if err != nil {
			if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
				logging.Ctx(r.Context()).Error().Err(err).Msg("session lookup failed")
			}
			next.ServeHTTP(w, r)
			return
		}

		if m.config.SlidingSession {
			newExpiry := time.Now().Add(m.config.SessionTTL)
			if err := m.store.Touch(r.Context(), sessionID, newExpiry); err != nil {
				logging.Ctx(r.Context()).Error().Err(err).Msg("failed to touch session")
			} else {
				session.ExpiresAt = newExpiry
				m.setCookie(w, session)
			}
		}

		next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), session)))
	})
}

// RequireAuth answers 401 {"message":"Unauthorized"} unless Authenticate
// placed an authenticated session in the context.
func (m *SessionManager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAuthenticated(r.Context()) {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"}); err != nil {
		logging.Error().Err(err).Msg("failed to write unauthorized response")
	}
}

// Login starts a fresh session for user and sets the cookie. Any session the
// request already carried is destroyed first so a planted ID never becomes
// authenticated.
func (m *SessionManager) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, user *models.User) (*Session, error) {
	if oldID := m.sessionIDFromRequest(r); oldID != "" {
		if err := m.store.Delete(ctx, oldID); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("failed to delete previous session")
		}
	}

	session, err := NewSession(user, m.config.SessionTTL)
	if err != nil {
		return nil, err
	}
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}
	if err := m.setCookie(w, session); err != nil {
		_ = m.store.Delete(ctx, session.ID)
		return nil, err
	}
	return session, nil
}

// Logout destroys the request's session, if any, and clears the cookie.
// It returns the destroyed session ID ("" when there was none).
func (m *SessionManager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, error) {
	sessionID := m.sessionIDFromRequest(r)
	if sessionID != "" {
		if err := m.store.Delete(ctx, sessionID); err != nil {
			return sessionID, err
		}
	}
	m.ClearSessionCookie(w)
	return sessionID, nil
}

// sessionIDFromRequest returns the verified session ID from the cookie, or "".
func (m *SessionManager) sessionIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(m.config.CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	id, err := m.signer.Verify(cookie.Value)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("rejected session cookie")
		return ""
	}
	return id
}

func (m *SessionManager) setCookie(w http.ResponseWriter, session *Session) error {
	value, err := m.signer.Sign(session.ID, session.ExpiresAt)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    value,
		Path:     m.config.CookiePath,
		Domain:   m.config.CookieDomain,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		Secure:   m.config.CookieSecure,
		HttpOnly: true,
		SameSite: m.config.CookieSameSite,
	})
	return nil
}

// ClearSessionCookie expires the session cookie in the browser.
func (m *SessionManager) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    "",
		Path:     m.config.CookiePath,
		Domain:   m.config.CookieDomain,
		MaxAge:   -1,
		Secure:   m.config.CookieSecure,
		HttpOnly: true,
		SameSite: m.config.CookieSameSite,
	})
}
