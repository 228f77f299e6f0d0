// Package tracker binds a filesystem location to a project and exposes the
// repository operations the tool layer consumes.
package tracker

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/nhle/todo-tracker/internal/config"
	"github.com/nhle/todo-tracker/internal/model"
	"github.com/nhle/todo-tracker/internal/store"
	"github.com/nhle/todo-tracker/internal/workspace"
)

const (
	defaultListName        = "Inbox"
	defaultListDescription = "Default todo list"
	fallbackProjectName    = "Default Project"
)

// Config controls where a Tracker stores data and where location resolution
// starts from.
type Config struct {
	// DatabasePath is the SQLite database file.
	DatabasePath string

	// StartDir is the directory project-root resolution starts from. Empty
	// means the process working directory.
	StartDir string
}

// Tracker is an explicit context handle: it owns the storage connection and
// the cached current project, both created lazily on first use. Constructing
// independent Trackers yields fully isolated contexts.
type Tracker struct {
	cfg Config

	mu      sync.Mutex
	st      store.Store
	current *model.Project
}

// New returns a Tracker for cfg. Nothing is opened until first use.
func New(cfg Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// Open builds a Tracker from the resolved user configuration, creating the
// data directory if needed.
func Open() (*Tracker, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, err
	}
	return New(Config{DatabasePath: cfg.DatabasePath}), nil
}

// storeLocked lazily opens the store. Callers must hold t.mu.
func (t *Tracker) storeLocked() (store.Store, error) {
	if t.st == nil {
		st, err := store.NewSQLiteStore(t.cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		t.st = st
	}
	return t.st, nil
}

// storeHandle returns the lazily-opened store for passthrough operations.
func (t *Tracker) storeHandle() (store.Store, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.storeLocked()
}

// EnsureContext resolves the current location to a project, creating the
// project and its default list on first sight, and caches the result. A
// cached project whose location still matches is returned without touching
// storage.
func (t *Tracker) EnsureContext(ctx context.Context) (*model.Project, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ensureContextLocked(ctx)
}

func (t *Tracker) ensureContextLocked(ctx context.Context) (*model.Project, error) {
	location := workspace.Resolve(t.cfg.StartDir)

	if t.current != nil && t.current.Location == location {
		p := *t.current
		return &p, nil
	}

	st, err := t.storeLocked()
	if err != nil {
		return nil, err
	}

	project, err := st.GetProjectByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	if project == nil {
		project, err = st.CreateProject(ctx, projectName(location), location)
		if err != nil {
			return nil, err
		}
	}

	if project.DefaultTodoListID == nil {
		list, err := st.CreateTodoList(ctx, project.ID, defaultListName, defaultListDescription)
		if err != nil {
			return nil, err
		}
		project, err = st.UpdateProject(ctx, project.ID,
			store.ProjectPatch{DefaultTodoListID: &list.ID})
		if err != nil {
			return nil, err
		}
	}

	t.current = project
	p := *project
	return &p, nil
}

// CurrentProject returns the cached project, or looks one up by resolved
// location without creating anything. Returns (nil, nil) when the location
// has no project yet.
func (t *Tracker) CurrentProject(ctx context.Context) (*model.Project, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil {
		p := *t.current
		return &p, nil
	}

	st, err := t.storeLocked()
	if err != nil {
		return nil, err
	}
	return st.GetProjectByLocation(ctx, workspace.Resolve(t.cfg.StartDir))
}

// UpdateProject applies a partial update and refreshes the cache when the
// updated row is the current project.
func (t *Tracker) UpdateProject(ctx context.Context, id int64, patch store.ProjectPatch) (*model.Project, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, err := t.storeLocked()
	if err != nil {
		return nil, err
	}
	project, err := st.UpdateProject(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if t.current != nil && t.current.ID == project.ID {
		t.current = project
	}
	p := *project
	return &p, nil
}

// Reset drops the cached project. Safe to call repeatedly and before first
// use.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = nil
}

// ResetConnection drops the cached project and closes the store so the next
// access reopens it. Safe to call repeatedly and before first use.
func (t *Tracker) ResetConnection() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = nil
	if t.st == nil {
		return nil
	}
	err := t.st.Close()
	t.st = nil
	return err
}

// projectName derives a display name from the last path segment of a
// location, falling back to a fixed name at the filesystem root.
func projectName(location string) string {
	base := filepath.Base(location)
	if base == "." || base == string(filepath.Separator) {
		return fallbackProjectName
	}
	return base
}
