// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/xvmee/portfolio/internal/logging"
	"github.com/xvmee/portfolio/internal/models"
)

// MemoryStore is a map-backed Store. It is safe for concurrent use.
type MemoryStore struct {
	mu sync.RWMutex

	users      map[int]models.User
	nextUserID int

	items      map[int]models.PortfolioItem
	nextItemID int

	// mirror is nil when persistence is disabled.
	mirror *fileMirror
}

// NewMemoryStore builds a store and, in development, loads the JSON mirror.
// A missing mirror file is normal; a corrupt one is logged and the store
// starts empty.
func NewMemoryStore(opts Options) *MemoryStore {
	s := &MemoryStore{
		users:      make(map[int]models.User),
		nextUserID: 1,
		items:      make(map[int]models.PortfolioItem),
		nextItemID: 1,
	}

	if opts.Demo {
		s.seedDemo()
		logging.Info().Int("items", len(s.items)).Msg("portfolio store using demo data")
		return s
	}

	if opts.DataFile == "" {
		return s
	}

	s.mirror = &fileMirror{path: opts.DataFile}
	snapshot, err := s.mirror.load()
	if err != nil {
		logging.Error().Err(err).Str("path", opts.DataFile).Msg("failed to load portfolio data file")
		return s
	}
	if snapshot != nil {
		s.restore(snapshot)
		logging.Info().Int("items", len(s.items)).Str("path", opts.DataFile).Msg("loaded portfolio items from file")
	}
	return s
}

func (s *MemoryStore) seedDemo() {
	demo := models.DemoPortfolioItems()
	for _, item := range demo {
		s.items[item.ID] = item
	}
	s.nextItemID = len(demo) + 1
}

// restore replaces the item collection. The next ID never falls at or below
// an ID already present, whatever the file claims.
func (s *MemoryStore) restore(snapshot *mirrorSnapshot) {
	s.items = make(map[int]models.PortfolioItem, len(snapshot.PortfolioItems))
	maxID := 0
	for _, item := range snapshot.PortfolioItems {
		s.items[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	s.nextItemID = snapshot.NextPortfolioID
	if s.nextItemID <= maxID {
		s.nextItemID = maxID + 1
	}
}

// GetUser returns the user with the given ID.
func (s *MemoryStore) GetUser(_ context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// GetUserByUsername scans users for an exact username match.
func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// CreateUser adds a user. Usernames are unique.
func (s *MemoryStore) CreateUser(_ context.Context, username string, passwordHash []byte) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return nil, ErrUsernameTaken
		}
	}

	u := models.User{
		ID:           s.nextUserID,
		Username:     username,
		PasswordHash: append([]byte(nil), passwordHash...),
	}
	s.users[u.ID] = u
	s.nextUserID++
	return &u, nil
}

// ListPortfolioItems returns items sorted by ID, which is creation order.
// The result is never nil.
func (s *MemoryStore) ListPortfolioItems(_ context.Context) ([]models.PortfolioItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedItemsLocked(), nil
}

func (s *MemoryStore) sortedItemsLocked() []models.PortfolioItem {
	items := make([]models.PortfolioItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// GetPortfolioItem returns the item with the given ID.
func (s *MemoryStore) GetPortfolioItem(_ context.Context, id int) (*models.PortfolioItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

// CreatePortfolioItem assigns the next ID, stores the item and rewrites the mirror.
func (s *MemoryStore) CreatePortfolioItem(_ context.Context, in models.NewPortfolioItem) (*models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.PortfolioItem{
		ID:          s.nextItemID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	s.items[item.ID] = item
	s.nextItemID++

	s.persistLocked()
	return &item, nil
}

// DeletePortfolioItem removes an item. The mirror is rewritten only when
// something was deleted.
func (s *MemoryStore) DeletePortfolioItem(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)

	s.persistLocked()
	return true, nil
}

// CountPortfolioItems returns the number of stored items.
func (s *MemoryStore) CountPortfolioItems(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

// persistLocked writes the mirror. Failures are logged and swallowed: the
// in-memory state stays authoritative. Must be called with mu held.
func (s *MemoryStore) persistLocked() {
	if s.mirror == nil {
		return
	}
	snapshot := &mirrorSnapshot{
		PortfolioItems:  s.sortedItemsLocked(),
		NextPortfolioID: s.nextItemID,
	}
	if err := s.mirror.save(snapshot); err != nil {
		logging.Error().Err(err).Str("path", s.mirror.path).Msg("failed to save portfolio data file")
	}
}

var _ Store = (*MemoryStore)(nil)
