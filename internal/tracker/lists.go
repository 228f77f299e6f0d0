package tracker

import (
	"context"

	"github.com/nhle/todo-tracker/internal/model"
	"github.com/nhle/todo-tracker/internal/store"
)

// CreateTodoList creates a list attached to the current project. List
// creation is never cross-project.
func (t *Tracker) CreateTodoList(ctx context.Context, name, description string) (*model.TodoList, error) {
	project, err := t.EnsureContext(ctx)
	if err != nil {
		return nil, err
	}
	st, err := t.storeHandle()
	if err != nil {
		return nil, err
	}
	return st.CreateTodoList(ctx, project.ID, name, description)
}

// GetTodoListByID retrieves a single list, or (nil, nil) when absent.
func (t *Tracker) GetTodoListByID(ctx context.Context, id int64) (*model.TodoList, error) {
	st, err := t.storeHandle()
	if err != nil {
		return nil, err
	}
	return st.GetTodoListByID(ctx, id)
}

// ListTodoLists returns every list of the current project.
func (t *Tracker) ListTodoLists(ctx context.Context) ([]model.TodoList, error) {
	project, err := t.EnsureContext(ctx)
	if err != nil {
		return nil, err
	}
	st, err := t.storeHandle()
	if err != nil {
		return nil, err
	}
	return st.ListTodoLists(ctx, project.ID)
}

// UpdateTodoList applies a partial update to a list.
func (t *Tracker) UpdateTodoList(ctx context.Context, id int64, patch store.TodoListPatch) (*model.TodoList, error) {
	st, err := t.storeHandle()
	if err != nil {
		return nil, err
	}
	return st.UpdateTodoList(ctx, id, patch)
}

// DeleteTodoList deletes a list and its todos. A project's default list is
// protected.
func (t *Tracker) DeleteTodoList(ctx context.Context, id int64) error {
	st, err := t.storeHandle()
	if err != nil {
		return err
	}
	return st.DeleteTodoList(ctx, id)
}
