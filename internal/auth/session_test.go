// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/xvmee/portfolio/internal/models"
)

var testUser = &models.User{ID: 1, Username: "xvmee"}

func newTestBadgerStore(t *testing.T) *BadgerSessionStore {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewBadgerSessionStore(db)
}

func sessionStores(t *testing.T) map[string]SessionStore {
	return map[string]SessionStore{
		"memory": NewMemorySessionStore(),
		"badger": newTestBadgerStore(t),
	}
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	s, err := NewSession(testUser, time.Hour)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if len(s.ID) != 64 {
		t.Errorf("ID length = %d, want 64", len(s.ID))
	}
	if !s.Authenticated || s.UserID != 1 || s.Username != "xvmee" {
		t.Errorf("session = %+v", s)
	}
	if s.IsExpired() {
		t.Error("new session should not be expired")
	}

	other, _ := NewSession(testUser, time.Hour)
	if other.ID == s.ID {
		t.Error("session IDs should be unique")
	}
}

func TestSessionStore_Lifecycle(t *testing.T) {
	t.Parallel()

	for name, store := range sessionStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s, _ := NewSession(testUser, time.Hour)

			if err := store.Create(ctx, s); err != nil {
				t.Fatalf("Create: %v", err)
			}
			got, err := store.Get(ctx, s.ID)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Username != "xvmee" || !got.Authenticated {
				t.Errorf("Get = %+v", got)
			}

			newExpiry := time.Now().Add(2 * time.Hour).Truncate(time.Second)
			if err := store.Touch(ctx, s.ID, newExpiry); err != nil {
				t.Fatalf("Touch: %v", err)
			}
			got, _ = store.Get(ctx, s.ID)
			if !got.ExpiresAt.Equal(newExpiry) {
				t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, newExpiry)
			}

			if err := store.Delete(ctx, s.ID); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Get after delete error = %v, want ErrSessionNotFound", err)
			}
			if err := store.Delete(ctx, s.ID); err != nil {
				t.Errorf("second Delete should be a no-op, got %v", err)
			}
		})
	}
}

func TestSessionStore_MissingSession(t *testing.T) {
	t.Parallel()

	for name, store := range sessionStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := store.Get(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Get error = %v, want ErrSessionNotFound", err)
			}
			if err := store.Touch(ctx, "nope", time.Now()); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Touch error = %v, want ErrSessionNotFound", err)
			}
			if err := store.Update(ctx, &Session{ID: "nope"}); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Update error = %v, want ErrSessionNotFound", err)
			}
		})
	}
}

func TestSessionStore_DeleteByUserID(t *testing.T) {
	t.Parallel()

	for name, store := range sessionStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a, _ := NewSession(testUser, time.Hour)
			b, _ := NewSession(testUser, time.Hour)
			other, _ := NewSession(&models.User{ID: 2, Username: "guest"}, time.Hour)
			for _, s := range []*Session{a, b, other} {
				if err := store.Create(ctx, s); err != nil {
					t.Fatalf("Create: %v", err)
				}
			}

			n, err := store.DeleteByUserID(ctx, 1)
			if err != nil {
				t.Fatalf("DeleteByUserID: %v", err)
			}
			if n != 2 {
				t.Errorf("deleted = %d, want 2", n)
			}
			if _, err := store.Get(ctx, other.ID); err != nil {
				t.Errorf("other user's session should survive: %v", err)
			}
		})
	}
}

func TestSessionStore_ExpiredSessionRejected(t *testing.T) {
	t.Parallel()

	for name, store := range sessionStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s, _ := NewSession(testUser, -time.Minute)
			if err := store.Create(ctx, s); err != nil {
				t.Fatalf("Create: %v", err)
			}
			if _, err := store.Get(ctx, s.ID); err == nil {
				t.Error("Get of expired session should fail")
			}
		})
	}
}

func TestMemorySessionStore_CleanupExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemorySessionStore()
	live, _ := NewSession(testUser, time.Hour)
	dead, _ := NewSession(testUser, -time.Minute)
	_ = store.Create(ctx, live)
	_ = store.Create(ctx, dead)

	n, err := store.CleanupExpired(ctx)
	if err != nil {
		t.Fatalf("CleanupExpired: %v", err)
	}
	if n != 1 {
		t.Errorf("cleaned = %d, want 1", n)
	}
	if store.Count() != 1 {
		t.Errorf("Count = %d, want 1", store.Count())
	}
}

func TestOpenSessionStore(t *testing.T) {
	t.Parallel()

	store, closeFn, err := OpenSessionStore(SessionStoreMemory, "")
	if err != nil {
		t.Fatalf("OpenSessionStore(memory): %v", err)
	}
	if _, ok := store.(*MemorySessionStore); !ok {
		t.Errorf("store = %T, want *MemorySessionStore", store)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}

	store, closeFn, err = OpenSessionStore(SessionStoreBadger, t.TempDir())
	if err != nil {
		t.Fatalf("OpenSessionStore(badger): %v", err)
	}
	if _, ok := store.(*BadgerSessionStore); !ok {
		t.Errorf("store = %T, want *BadgerSessionStore", store)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}
}
