package store

import (
	"context"

	"github.com/nhle/todo-tracker/internal/model"
)

// TodoInput is a create-or-patch request keyed by the caller-supplied ID.
// Nil fields are left untouched on an existing todo; on the create path
// Content is mandatory and TodoListID falls back to the default list the
// caller resolved.
type TodoInput struct {
	ID         int64           `json:"id"`
	Content    *string         `json:"content,omitempty"`
	Status     *model.Status   `json:"status,omitempty"`
	Priority   *model.Priority `json:"priority,omitempty"`
	TodoListID *int64          `json:"todo_list_id,omitempty"`
}

// ProjectPatch carries the updatable project fields. Nil means unchanged.
type ProjectPatch struct {
	Name              *string `json:"name,omitempty"`
	DefaultTodoListID *int64  `json:"default_todo_list_id,omitempty"`
}

// TodoListPatch carries the updatable todo list fields. Nil means unchanged.
type TodoListPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BatchResult is the per-item outcome of a batch operation. Individual
// failures are collected here instead of aborting the batch.
type BatchResult struct {
	ID      int64 `json:"id"`
	Success bool  `json:"success"`
	Err     error `json:"-"`
}

// Store defines the persistence interface for projects, todo lists, and
// todos. Lookup methods return (nil, nil) for a missing row; mutating
// methods report missing targets with ErrNotFound.
type Store interface {
	// === Projects ===

	CreateProject(ctx context.Context, name, location string) (*model.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*model.Project, error)
	GetProjectByLocation(ctx context.Context, location string) (*model.Project, error)
	UpdateProject(ctx context.Context, id int64, patch ProjectPatch) (*model.Project, error)

	// === Todo lists ===

	CreateTodoList(ctx context.Context, projectID int64, name, description string) (*model.TodoList, error)
	GetTodoListByID(ctx context.Context, id int64) (*model.TodoList, error)
	ListTodoLists(ctx context.Context, projectID int64) ([]model.TodoList, error)
	UpdateTodoList(ctx context.Context, id int64, patch TodoListPatch) (*model.TodoList, error)
	DeleteTodoList(ctx context.Context, id int64) error

	// === Todos ===

	GetTodoByID(ctx context.Context, id int64) (*model.Todo, error)
	ListTodosByList(ctx context.Context, listID int64) ([]model.Todo, error)
	SaveTodo(ctx context.Context, in TodoInput, fallbackListID int64) (*model.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
	SaveTodoBatch(ctx context.Context, items []TodoInput, fallbackListID int64) ([]BatchResult, error)
	DeleteTodoBatch(ctx context.Context, ids []int64) ([]BatchResult, error)
	MoveTodosBatch(ctx context.Context, ids []int64, targetListID int64) ([]BatchResult, error)

	// === Settings ===

	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	Close() error
}
