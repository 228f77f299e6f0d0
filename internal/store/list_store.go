package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nhle/todo-tracker/internal/model"
)

// CreateTodoList inserts a new list owned by projectID. Statistics start at
// zero; the first todo mutation hands them over to the triggers.
func (s *SQLiteStore) CreateTodoList(ctx context.Context, projectID int64, name, description string) (*model.TodoList, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("todo list name must not be empty: %w", ErrInvalidInput)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO todo_lists (project_id, name, description) VALUES (?, ?, ?)",
		projectID, name, description,
	)
	if err != nil {
		return nil, fmt.Errorf("creating todo list %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new todo list id: %w", err)
	}
	return s.GetTodoListByID(ctx, id)
}

// GetTodoListByID retrieves a single todo list, or (nil, nil) when absent.
func (s *SQLiteStore) GetTodoListByID(ctx context.Context, id int64) (*model.TodoList, error) {
	var list model.TodoList
	err := s.db.GetContext(ctx, &list, "SELECT * FROM todo_lists WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting todo list %d: %w", id, err)
	}
	return &list, nil
}

// ListTodoLists returns every list owned by projectID, oldest first.
func (s *SQLiteStore) ListTodoLists(ctx context.Context, projectID int64) ([]model.TodoList, error) {
	var lists []model.TodoList
	err := s.db.SelectContext(ctx, &lists,
		"SELECT * FROM todo_lists WHERE project_id = ? ORDER BY id", projectID)
	if err != nil {
		return nil, fmt.Errorf("querying todo lists for project %d: %w", projectID, err)
	}
	return lists, nil
}

// UpdateTodoList applies the supplied fields to an existing list.
func (s *SQLiteStore) UpdateTodoList(ctx context.Context, id int64, patch TodoListPatch) (*model.TodoList, error) {
	var sets []string
	var args []interface{}
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}

	if len(sets) == 0 {
		list, err := s.GetTodoListByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if list == nil {
			return nil, fmt.Errorf("todo list %d: %w", id, ErrNotFound)
		}
		return list, nil
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE todo_lists SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("updating todo list %d: %w", id, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, fmt.Errorf("todo list %d: %w", id, ErrNotFound)
	}

	return s.GetTodoListByID(ctx, id)
}

// DeleteTodoList deletes a list and, through the cascade, all of its todos.
// A list referenced as any project's default is refused.
func (s *SQLiteStore) DeleteTodoList(ctx context.Context, id int64) error {
	var refs int
	err := s.db.GetContext(ctx, &refs,
		"SELECT COUNT(*) FROM projects WHERE default_todo_list_id = ?", id)
	if err != nil {
		return fmt.Errorf("checking default list references for %d: %w", id, err)
	}
	if refs > 0 {
		return fmt.Errorf("todo list %d: %w", id, ErrDefaultListProtected)
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM todo_lists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting todo list %d: %w", id, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return fmt.Errorf("todo list %d: %w", id, ErrNotFound)
	}
	return nil
}
