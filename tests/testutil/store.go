// Package testutil provides shared helpers for store-backed tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/ptran/tracker/internal/notify"
	"github.com/ptran/tracker/internal/store"
)

// NewTestStore creates a SQLiteStore backed by a throwaway database
// file with all migrations applied. hub may be nil. The store is
// closed when the test completes.
func NewTestStore(t *testing.T, hub *notify.Hub) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "tracker.db"), "tester", hub)
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
