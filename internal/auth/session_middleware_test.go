// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestManager(t *testing.T, sliding bool) (*SessionManager, *MemorySessionStore) {
	t.Helper()
	store := NewMemorySessionStore()
	signer, err := NewCookieSigner("test-secret")
	if err != nil {
		t.Fatalf("NewCookieSigner: %v", err)
	}
	cfg := DefaultSessionManagerConfig()
	cfg.SlidingSession = sliding
	return NewSessionManager(store, signer, cfg), store
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "portfolio.sid" {
			return c
		}
	}
	t.Fatal("no portfolio.sid cookie set")
	return nil
}

func TestSessionManager_LoginSetsCookie(t *testing.T) {
	t.Parallel()

	m, store := newTestManager(t, false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)

	session, err := m.Login(context.Background(), rec, req, testUser)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	c := sessionCookie(t, rec)
	if !c.HttpOnly {
		t.Error("cookie should be HttpOnly")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want Lax", c.SameSite)
	}
	if c.Path != "/" {
		t.Errorf("Path = %q, want /", c.Path)
	}
	if c.Secure {
		t.Error("cookie should not be Secure by default")
	}
	if c.MaxAge < int((23 * time.Hour).Seconds()) {
		t.Errorf("MaxAge = %d, want about 24h", c.MaxAge)
	}
	if strings.Contains(c.Value, session.ID) {
		t.Error("cookie should carry a signed token, not the bare session ID")
	}
	if store.Count() != 1 {
		t.Errorf("Count = %d, want 1", store.Count())
	}
}

func TestSessionManager_LoginReplacesPreviousSession(t *testing.T) {
	t.Parallel()

	m, store := newTestManager(t, false)

	rec := httptest.NewRecorder()
	first, _ := m.Login(context.Background(), rec, httptest.NewRequest(http.MethodPost, "/", nil), testUser)
	oldCookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(oldCookie)
	second, err := m.Login(context.Background(), httptest.NewRecorder(), req, testUser)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if second.ID == first.ID {
		t.Error("login should issue a new session ID")
	}
	if _, err := store.Get(context.Background(), first.ID); err == nil {
		t.Error("previous session should be destroyed")
	}
}

func TestSessionManager_AuthenticateAndRequireAuth(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t, false)
	protected := m.Authenticate(m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			t.Error("session missing from context")
		}
		w.WriteHeader(http.StatusNoContent)
	})))

	// No cookie.
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/portfolio/1", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"message":"Unauthorized"}` {
		t.Errorf("body = %s", body)
	}

	// Forged cookie.
	req := httptest.NewRequest(http.MethodDelete, "/api/portfolio/1", nil)
	req.AddCookie(&http.Cookie{Name: "portfolio.sid", Value: "forged"})
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("forged cookie status = %d, want 401", rec.Code)
	}

	// Valid login.
	loginRec := httptest.NewRecorder()
	if _, err := m.Login(context.Background(), loginRec, httptest.NewRequest(http.MethodPost, "/", nil), testUser); err != nil {
		t.Fatalf("Login: %v", err)
	}
	req = httptest.NewRequest(http.MethodDelete, "/api/portfolio/1", nil)
	req.AddCookie(sessionCookie(t, loginRec))
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("authenticated status = %d, want 204", rec.Code)
	}
}

func TestSessionManager_Logout(t *testing.T) {
	t.Parallel()

	m, store := newTestManager(t, false)
	loginRec := httptest.NewRecorder()
	session, _ := m.Login(context.Background(), loginRec, httptest.NewRequest(http.MethodPost, "/", nil), testUser)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(sessionCookie(t, loginRec))
	rec := httptest.NewRecorder()
	id, err := m.Logout(context.Background(), rec, req)
	if err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if id != session.ID {
		t.Errorf("Logout id = %q, want %q", id, session.ID)
	}
	if store.Count() != 0 {
		t.Errorf("Count = %d, want 0", store.Count())
	}
	if c := sessionCookie(t, rec); c.MaxAge >= 0 {
		t.Errorf("cleared cookie MaxAge = %d, want negative", c.MaxAge)
	}

	// Logging out without a session still succeeds.
	if _, err := m.Logout(context.Background(), httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil)); err != nil {
		t.Errorf("anonymous Logout: %v", err)
	}
}

func TestSessionManager_SlidingSessionReissuesCookie(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t, true)
	loginRec := httptest.NewRecorder()
	if _, err := m.Login(context.Background(), loginRec, httptest.NewRequest(http.MethodPost, "/", nil), testUser); err != nil {
		t.Fatalf("Login: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(sessionCookie(t, loginRec))
	rec := httptest.NewRecorder()
	m.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	sessionCookie(t, rec)
}

func TestIsAuthenticated(t *testing.T) {
	t.Parallel()

	if IsAuthenticated(context.Background()) {
		t.Error("empty context should not be authenticated")
	}
	ctx := ContextWithSession(context.Background(), &Session{Authenticated: false})
	if IsAuthenticated(ctx) {
		t.Error("unauthenticated session should not count")
	}
	ctx = ContextWithSession(context.Background(), &Session{Authenticated: true})
	if !IsAuthenticated(ctx) {
		t.Error("authenticated session should count")
	}
}
