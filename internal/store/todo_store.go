package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/nhle/todo-tracker/internal/model"
)

// GetTodoByID retrieves a single todo, or (nil, nil) when absent.
func (s *SQLiteStore) GetTodoByID(ctx context.Context, id int64) (*model.Todo, error) {
	return getTodo(ctx, s.db, id)
}

// ListTodosByList returns every todo in a list ordered by priority (high,
// medium, low) and ascending id within equal priority. The priority sort is
// applied in memory over the numeric rank.
func (s *SQLiteStore) ListTodosByList(ctx context.Context, listID int64) ([]model.Todo, error) {
	var todos []model.Todo
	err := s.db.SelectContext(ctx, &todos,
		"SELECT * FROM todos WHERE todo_list_id = ? ORDER BY id", listID)
	if err != nil {
		return nil, fmt.Errorf("querying todos for list %d: %w", listID, err)
	}

	sort.SliceStable(todos, func(i, j int) bool {
		ri, rj := todos[i].Priority.Rank(), todos[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return todos[i].ID < todos[j].ID
	})
	return todos, nil
}

// SaveTodo creates or patches the todo identified by in.ID. On create the
// target list is in.TodoListID when supplied, otherwise fallbackListID.
func (s *SQLiteStore) SaveTodo(ctx context.Context, in TodoInput, fallbackListID int64) (*model.Todo, error) {
	return saveTodo(ctx, s.db, in, fallbackListID)
}

// DeleteTodo removes a todo; the triggers refresh the owning list.
func (s *SQLiteStore) DeleteTodo(ctx context.Context, id int64) error {
	return deleteTodo(ctx, s.db, id)
}

// SaveTodoBatch saves every item inside one transaction. Item failures are
// recorded per item and do not abort the rest; only transaction mechanics
// failing rolls the whole batch back.
func (s *SQLiteStore) SaveTodoBatch(ctx context.Context, items []TodoInput, fallbackListID int64) ([]BatchResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning batch transaction: %w", err)
	}
	defer tx.Rollback()

	results := make([]BatchResult, 0, len(items))
	for _, in := range items {
		_, err := saveTodo(ctx, tx, in, fallbackListID)
		results = append(results, BatchResult{ID: in.ID, Success: err == nil, Err: err})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing batch: %w", err)
	}
	return results, nil
}

// DeleteTodoBatch deletes the given todos inside one transaction with
// per-item results.
func (s *SQLiteStore) DeleteTodoBatch(ctx context.Context, ids []int64) ([]BatchResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning batch transaction: %w", err)
	}
	defer tx.Rollback()

	results := make([]BatchResult, 0, len(ids))
	for _, id := range ids {
		err := deleteTodo(ctx, tx, id)
		results = append(results, BatchResult{ID: id, Success: err == nil, Err: err})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing batch: %w", err)
	}
	return results, nil
}

// MoveTodosBatch moves the given todos to targetListID. The target list is
// validated once up front and an invalid target fails the whole call;
// individual missing todos are reported per item.
func (s *SQLiteStore) MoveTodosBatch(ctx context.Context, ids []int64, targetListID int64) ([]BatchResult, error) {
	if err := checkListExists(ctx, s.db, targetListID); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning batch transaction: %w", err)
	}
	defer tx.Rollback()

	results := make([]BatchResult, 0, len(ids))
	for _, id := range ids {
		res, err := tx.ExecContext(ctx,
			"UPDATE todos SET todo_list_id = ? WHERE id = ?", targetListID, id)
		if err == nil {
			if rows, _ := res.RowsAffected(); rows == 0 {
				err = fmt.Errorf("todo %d: %w", id, ErrNotFound)
			}
		}
		results = append(results, BatchResult{ID: id, Success: err == nil, Err: err})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing batch: %w", err)
	}
	return results, nil
}

func getTodo(ctx context.Context, q sqlx.ExtContext, id int64) (*model.Todo, error) {
	var t model.Todo
	err := sqlx.GetContext(ctx, q, &t, "SELECT * FROM todos WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting todo %d: %w", id, err)
	}
	return &t, nil
}

func saveTodo(ctx context.Context, q sqlx.ExtContext, in TodoInput, fallbackListID int64) (*model.Todo, error) {
	existing, err := getTodo(ctx, q, in.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return insertTodo(ctx, q, in, fallbackListID)
	}
	return patchTodo(ctx, q, in)
}

func insertTodo(ctx context.Context, q sqlx.ExtContext, in TodoInput, fallbackListID int64) (*model.Todo, error) {
	// An all-whitespace string is accepted as content; only a missing or
	// empty string is rejected.
	if in.Content == nil || *in.Content == "" {
		return nil, fmt.Errorf("content required: %w", ErrInvalidInput)
	}

	listID := fallbackListID
	if in.TodoListID != nil {
		listID = *in.TodoListID
	}
	if err := checkListExists(ctx, q, listID); err != nil {
		return nil, err
	}

	status := model.StatusPending
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("unknown status %q: %w", *in.Status, ErrInvalidInput)
		}
		status = *in.Status
	}
	priority := model.PriorityMedium
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return nil, fmt.Errorf("unknown priority %q: %w", *in.Priority, ErrInvalidInput)
		}
		priority = *in.Priority
	}

	// The id is caller-supplied and inserted as-is, not auto-assigned.
	_, err := q.ExecContext(ctx, `
		INSERT INTO todos (id, todo_list_id, content, status, priority)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, listID, *in.Content, status, priority,
	)
	if err != nil {
		return nil, fmt.Errorf("creating todo %d: %w", in.ID, err)
	}
	return getTodo(ctx, q, in.ID)
}

func patchTodo(ctx context.Context, q sqlx.ExtContext, in TodoInput) (*model.Todo, error) {
	var sets []string
	var args []interface{}
	if in.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *in.Content)
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("unknown status %q: %w", *in.Status, ErrInvalidInput)
		}
		sets = append(sets, "status = ?")
		args = append(args, *in.Status)
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return nil, fmt.Errorf("unknown priority %q: %w", *in.Priority, ErrInvalidInput)
		}
		sets = append(sets, "priority = ?")
		args = append(args, *in.Priority)
	}
	if in.TodoListID != nil {
		if err := checkListExists(ctx, q, *in.TodoListID); err != nil {
			return nil, err
		}
		sets = append(sets, "todo_list_id = ?")
		args = append(args, *in.TodoListID)
	}

	// No supplied fields is a no-op returning the unchanged row.
	if len(sets) > 0 {
		args = append(args, in.ID)
		_, err := q.ExecContext(ctx,
			"UPDATE todos SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("updating todo %d: %w", in.ID, err)
		}
	}
	return getTodo(ctx, q, in.ID)
}

func deleteTodo(ctx context.Context, q sqlx.ExtContext, id int64) error {
	res, err := q.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return fmt.Errorf("todo %d: %w", id, ErrNotFound)
	}
	return nil
}

func checkListExists(ctx context.Context, q sqlx.ExtContext, listID int64) error {
	var one int
	err := sqlx.GetContext(ctx, q, &one, "SELECT 1 FROM todo_lists WHERE id = ?", listID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("todo list %d: %w", listID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking todo list %d: %w", listID, err)
	}
	return nil
}
