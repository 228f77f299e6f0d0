// Package testutil builds isolated stores and trackers for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nhle/todo-tracker/internal/store"
	"github.com/nhle/todo-tracker/internal/tracker"
)

// NewTestStore creates a SQLiteStore on a fresh temporary database file with
// the full schema applied. The store is closed when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "todos.db"))
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

// NewTestTracker creates a Tracker rooted in its own temporary directory.
// The directory carries a root marker so location resolution pins to it
// instead of walking into the surrounding filesystem. The resolved project
// location is returned alongside.
func NewTestTracker(t *testing.T) (*tracker.Tracker, string) {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("creating root marker: %v", err)
	}
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	tr := tracker.New(tracker.Config{
		DatabasePath: filepath.Join(dir, "todos.db"),
		StartDir:     dir,
	})

	t.Cleanup(func() {
		if err := tr.ResetConnection(); err != nil {
			t.Errorf("closing test tracker: %v", err)
		}
	})

	return tr, dir
}
