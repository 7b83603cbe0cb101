// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCookie is returned for a session cookie that fails verification.
var ErrInvalidCookie = errors.New("invalid session cookie")

// cookieIssuer is stamped into every cookie token and checked on the way back.
const cookieIssuer = "portfolio"

// CookieSigner wraps session IDs in HS256 tokens keyed by the session secret,
// so a cookie cannot be forged or replayed past its expiry even if the store
// still holds the session.
type CookieSigner struct {
	secret []byte
}

// NewCookieSigner creates a signer. The secret must not be empty.
func NewCookieSigner(secret string) (*CookieSigner, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	return &CookieSigner{secret: []byte(secret)}, nil
}

// Sign returns the cookie value for a session.
func (s *CookieSigner) Sign(sessionID string, expiresAt time.Time) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Issuer:    cookieIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return token, nil
}

// Verify returns the session ID carried by a cookie value.
func (s *CookieSigner) Verify(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cookieIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}
	if claims.ID == "" {
		return "", ErrInvalidCookie
	}
	return claims.ID, nil
}
