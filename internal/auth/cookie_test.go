// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewCookieSigner_RequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewCookieSigner(""); err == nil {
		t.Error("expected error for empty secret")
	}
}

func TestCookieSigner_RoundTrip(t *testing.T) {
	t.Parallel()

	signer, _ := NewCookieSigner("test-secret")
	value, err := signer.Sign("abc123", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	id, err := signer.Verify(value)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id != "abc123" {
		t.Errorf("id = %q, want abc123", id)
	}
}

func TestCookieSigner_Rejects(t *testing.T) {
	t.Parallel()

	signer, _ := NewCookieSigner("test-secret")
	other, _ := NewCookieSigner("other-secret")

	valid, _ := signer.Sign("abc123", time.Now().Add(time.Hour))
	expired, _ := signer.Sign("abc123", time.Now().Add(-time.Hour))
	foreign, _ := other.Sign("abc123", time.Now().Add(time.Hour))
	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		value string
	}{
		{"garbage", "not-a-token"},
		{"expired", expired},
		{"wrong secret", foreign},
		{"tampered payload", tampered},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := signer.Verify(tt.value); !errors.Is(err, ErrInvalidCookie) {
				t.Errorf("Verify error = %v, want ErrInvalidCookie", err)
			}
		})
	}
}
