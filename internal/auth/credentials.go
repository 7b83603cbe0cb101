// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/xvmee/portfolio/internal/models"
	"github.com/xvmee/portfolio/internal/store"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password.
// The two cases are deliberately indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultBcryptCost is used for the admin password hash.
const DefaultBcryptCost = 12

// UserStore is the subset of store.Store needed for credentials.
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, username string, passwordHash []byte) (*models.User, error)
}

// Authenticator checks username/password pairs against bcrypt hashes.
type Authenticator struct {
	users UserStore

	// dummyHash is compared against for unknown users so a miss costs the
	// same as a wrong password.
	dummyHash []byte
}

// NewAuthenticator creates an authenticator. cost should match the cost used
// when seeding users.
func NewAuthenticator(users UserStore, cost int) (*Authenticator, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("portfolio-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}
	return &Authenticator{users: users, dummyHash: dummy}, nil
}

// Authenticate returns the user when password matches.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := a.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// SeedAdmin creates the admin account unless it already exists.
func SeedAdmin(ctx context.Context, users UserStore, username, password string, cost int) (*models.User, error) {
	if existing, err := users.GetUserByUsername(ctx, username); err == nil {
		return existing, nil
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	user, err := users.CreateUser(ctx, username, hash)
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return user, nil
}
