// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

// Package store holds users and portfolio items in process memory.
//
// In development the portfolio items are mirrored to a JSON file after every
// change and reloaded at startup. In demo mode (production) the store is
// seeded with fixed items and never touches disk.
package store

import (
	"context"
	"errors"

	"github.com/xvmee/portfolio/internal/models"
)

var (
	// ErrItemNotFound is returned when no portfolio item has the given ID.
	ErrItemNotFound = errors.New("portfolio item not found")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when creating a user whose name exists.
	ErrUsernameTaken = errors.New("username already exists")
)

// Store is the persistence boundary used by the API and auth packages.
type Store interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, username string, passwordHash []byte) (*models.User, error)

	// ListPortfolioItems returns every item in creation order.
	ListPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error)
	GetPortfolioItem(ctx context.Context, id int) (*models.PortfolioItem, error)
	CreatePortfolioItem(ctx context.Context, item models.NewPortfolioItem) (*models.PortfolioItem, error)

	// DeletePortfolioItem reports whether an item was removed.
	DeletePortfolioItem(ctx context.Context, id int) (bool, error)
	CountPortfolioItems(ctx context.Context) (int, error)
}

// Options configures a MemoryStore.
type Options struct {
	// DataFile is the JSON mirror path. Ignored in demo mode; empty disables
	// persistence.
	DataFile string

	// Demo seeds the fixed demo items and disables persistence.
	Demo bool
}
