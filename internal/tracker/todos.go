package tracker

import (
	"context"

	"github.com/nhle/todo-tracker/internal/model"
	"github.com/nhle/todo-tracker/internal/store"
)

// GetTodoByID retrieves a single todo, or (nil, nil) when absent.
func (t *Tracker) GetTodoByID(ctx context.Context, id int64) (*model.Todo, error) {
	st, err := t.storeHandle()
	if err != nil {
		return nil, err
	}
	return st.GetTodoByID(ctx, id)
}

// GetTodos returns the todos of a list ordered by priority then id. A nil
// listID targets the current project's default list.
func (t *Tracker) GetTodos(ctx context.Context, listID *int64) ([]model.Todo, error) {
	if listID == nil {
		project, err := t.EnsureContext(ctx)
		if err != nil {
			return nil, err
		}
		listID = project.DefaultTodoListID
	}

	st, err := t.storeHandle()
	if err != nil {
		return nil, err
	}
	return st.ListTodosByList(ctx, *listID)
}

// SaveTodo creates or patches a todo. A create without an explicit list
// lands in the current project's default list.
func (t *Tracker) SaveTodo(ctx context.Context, in store.TodoInput) (*model.Todo, error) {
	project, err := t.EnsureContext(ctx)
	if err != nil {
		return nil, err
	}
	st, err := t.storeHandle()
	if err != nil {
		return nil, err
	}
	return st.SaveTodo(ctx, in, *project.DefaultTodoListID)
}

// DeleteTodo removes a todo.
func (t *Tracker) DeleteTodo(ctx context.Context, id int64) error {
	st, err := t.storeHandle()
	if err != nil {
		return err
	}
	return st.DeleteTodo(ctx, id)
}

// SaveTodoBatch saves every item in one transaction with per-item results.
func (t *Tracker) SaveTodoBatch(ctx context.Context, items []store.TodoInput) ([]store.BatchResult, error) {
	project, err := t.EnsureContext(ctx)
	if err != nil {
		return nil, err
	}
	st, err := t.storeHandle()
	if err != nil {
		return nil, err
	}
	return st.SaveTodoBatch(ctx, items, *project.DefaultTodoListID)
}

// DeleteTodoBatch deletes the given todos in one transaction with per-item
// results.
func (t *Tracker) DeleteTodoBatch(ctx context.Context, ids []int64) ([]store.BatchResult, error) {
	st, err := t.storeHandle()
	if err != nil {
		return nil, err
	}
	return st.DeleteTodoBatch(ctx, ids)
}

// MoveTodosBatch moves the given todos to another list. An invalid target
// list fails the whole call.
func (t *Tracker) MoveTodosBatch(ctx context.Context, ids []int64, targetListID int64) ([]store.BatchResult, error) {
	st, err := t.storeHandle()
	if err != nil {
		return nil, err
	}
	return st.MoveTodosBatch(ctx, ids, targetListID)
}
