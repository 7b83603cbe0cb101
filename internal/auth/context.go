// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package auth

import "context"

type contextKey string

// SessionContextKey holds the *Session loaded by SessionManager.Authenticate.
const SessionContextKey contextKey = "session"

// ContextWithSession returns ctx carrying session.
func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, session)
}

// SessionFromContext returns the request's session, or nil.
func SessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(SessionContextKey).(*Session)
	return session
}

// IsAuthenticated reports whether ctx carries an authenticated session.
func IsAuthenticated(ctx context.Context) bool {
	session := SessionFromContext(ctx)
	return session != nil && session.Authenticated
}
