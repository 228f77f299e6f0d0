package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nhle/todo-tracker/internal/model"
)

// CreateProject inserts a new project row for a filesystem location.
// Location is a natural unique key; inserting a duplicate location fails
// with the engine's constraint error.
func (s *SQLiteStore) CreateProject(ctx context.Context, name, location string) (*model.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("project name must not be empty: %w", ErrInvalidInput)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO projects (name, location) VALUES (?, ?)",
		name, location,
	)
	if err != nil {
		return nil, fmt.Errorf("creating project at %s: %w", location, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new project id: %w", err)
	}
	return s.GetProjectByID(ctx, id)
}

// GetProjectByID retrieves a single project, or (nil, nil) when absent.
func (s *SQLiteStore) GetProjectByID(ctx context.Context, id int64) (*model.Project, error) {
	var p model.Project
	err := s.db.GetContext(ctx, &p, "SELECT * FROM projects WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting project %d: %w", id, err)
	}
	return &p, nil
}

// GetProjectByLocation retrieves the project bound to a resolved location,
// or (nil, nil) when the location has never been seen.
func (s *SQLiteStore) GetProjectByLocation(ctx context.Context, location string) (*model.Project, error) {
	var p model.Project
	err := s.db.GetContext(ctx, &p, "SELECT * FROM projects WHERE location = ?", location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting project at %s: %w", location, err)
	}
	return &p, nil
}

// UpdateProject applies the supplied fields to an existing project. A new
// default list must exist and belong to the project being updated.
func (s *SQLiteStore) UpdateProject(ctx context.Context, id int64, patch ProjectPatch) (*model.Project, error) {
	if patch.DefaultTodoListID != nil {
		var ownerID int64
		err := s.db.GetContext(ctx, &ownerID,
			"SELECT project_id FROM todo_lists WHERE id = ?", *patch.DefaultTodoListID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("todo list %d: %w", *patch.DefaultTodoListID, ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("checking todo list %d: %w", *patch.DefaultTodoListID, err)
		}
		if ownerID != id {
			return nil, fmt.Errorf("todo list %d belongs to project %d: %w",
				*patch.DefaultTodoListID, ownerID, ErrInvalidInput)
		}
	}

	var sets []string
	var args []interface{}
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.DefaultTodoListID != nil {
		sets = append(sets, "default_todo_list_id = ?")
		args = append(args, *patch.DefaultTodoListID)
	}

	if len(sets) == 0 {
		p, err := s.GetProjectByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
		}
		return p, nil
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE projects SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("updating project %d: %w", id, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
	}

	return s.GetProjectByID(ctx, id)
}
