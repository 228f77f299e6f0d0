package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nhle/todo-tracker/internal/model"
	"github.com/nhle/todo-tracker/internal/store"
	"github.com/nhle/todo-tracker/tests/testutil"
)

func ptr[T any](v T) *T { return &v }

// newProjectAndList seeds a project with one todo list.
func newProjectAndList(t *testing.T, s *store.SQLiteStore) (*model.Project, *model.TodoList) {
	t.Helper()
	ctx := context.Background()

	project, err := s.CreateProject(ctx, "demo", filepath.Join(t.TempDir(), "demo"))
	if err != nil {
		t.Fatalf("creating project: %v", err)
	}
	list, err := s.CreateTodoList(ctx, project.ID, "work", "")
	if err != nil {
		t.Fatalf("creating list: %v", err)
	}
	return project, list
}

func mustSave(t *testing.T, s *store.SQLiteStore, in store.TodoInput, listID int64) *model.Todo {
	t.Helper()
	todo, err := s.SaveTodo(context.Background(), in, listID)
	if err != nil {
		t.Fatalf("saving todo %d: %v", in.ID, err)
	}
	return todo
}

func TestSaveTodoCreateContentBoundary(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)
	ctx := context.Background()

	_, err := s.SaveTodo(ctx, store.TodoInput{ID: 1}, list.ID)
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Fatalf("missing content: got %v, want ErrInvalidInput", err)
	}

	_, err = s.SaveTodo(ctx, store.TodoInput{ID: 1, Content: ptr("")}, list.ID)
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Fatalf("empty content: got %v, want ErrInvalidInput", err)
	}

	// Whitespace-only content is accepted.
	todo, err := s.SaveTodo(ctx, store.TodoInput{ID: 1, Content: ptr("   ")}, list.ID)
	if err != nil {
		t.Fatalf("whitespace content rejected: %v", err)
	}
	if todo.Content != "   " {
		t.Errorf("content = %q, want three spaces", todo.Content)
	}
}

func TestSaveTodoCreateDefaults(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)

	todo := mustSave(t, s, store.TodoInput{ID: 7, Content: ptr("write report")}, list.ID)

	if todo.Status != model.StatusPending {
		t.Errorf("status = %q, want pending", todo.Status)
	}
	if todo.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want medium", todo.Priority)
	}
	if todo.TodoListID != list.ID {
		t.Errorf("todo_list_id = %d, want %d", todo.TodoListID, list.ID)
	}
	if todo.ID != 7 {
		t.Errorf("id = %d, want the caller-supplied 7", todo.ID)
	}
}

func TestSaveTodoCreateUnknownList(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)

	_, err := s.SaveTodo(context.Background(),
		store.TodoInput{ID: 1, Content: ptr("x"), TodoListID: ptr(int64(9999))}, list.ID)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestSaveTodoPatchChangesOnlySuppliedFields(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)
	ctx := context.Background()

	mustSave(t, s, store.TodoInput{
		ID:       1,
		Content:  ptr("ship release"),
		Priority: ptr(model.PriorityHigh),
	}, list.ID)

	patched, err := s.SaveTodo(ctx, store.TodoInput{
		ID:     1,
		Status: ptr(model.StatusCompleted),
	}, list.ID)
	if err != nil {
		t.Fatalf("patching todo: %v", err)
	}

	if patched.Status != model.StatusCompleted {
		t.Errorf("status = %q, want completed", patched.Status)
	}
	if patched.Content != "ship release" {
		t.Errorf("content changed to %q", patched.Content)
	}
	if patched.Priority != model.PriorityHigh {
		t.Errorf("priority changed to %q", patched.Priority)
	}
}

func TestSaveTodoPatchNoFieldsIsNoop(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)

	created := mustSave(t, s, store.TodoInput{ID: 1, Content: ptr("x")}, list.ID)
	again := mustSave(t, s, store.TodoInput{ID: 1}, list.ID)

	if *again != *created {
		t.Errorf("no-op save changed the row: %+v != %+v", again, created)
	}
}

func TestSaveTodoPatchUnknownTargetList(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)

	mustSave(t, s, store.TodoInput{ID: 1, Content: ptr("x")}, list.ID)
	_, err := s.SaveTodo(context.Background(),
		store.TodoInput{ID: 1, TodoListID: ptr(int64(9999))}, list.ID)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestSaveTodoRejectsUnknownEnums(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)
	ctx := context.Background()

	_, err := s.SaveTodo(ctx, store.TodoInput{
		ID: 1, Content: ptr("x"), Status: ptr(model.Status("done")),
	}, list.ID)
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Fatalf("bad status: got %v, want ErrInvalidInput", err)
	}

	_, err = s.SaveTodo(ctx, store.TodoInput{
		ID: 1, Content: ptr("x"), Priority: ptr(model.Priority("urgent")),
	}, list.ID)
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Fatalf("bad priority: got %v, want ErrInvalidInput", err)
	}
}

func TestGetTodoByIDMissingReturnsNil(t *testing.T) {
	s := testutil.NewTestStore(t)

	todo, err := s.GetTodoByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo != nil {
		t.Fatalf("got %+v, want nil", todo)
	}
}

func TestListTodosPriorityOrdering(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)

	priorities := []model.Priority{
		model.PriorityLow,
		model.PriorityHigh,
		model.PriorityMedium,
		model.PriorityHigh,
	}
	for i, priority := range priorities {
		mustSave(t, s, store.TodoInput{
			ID:       int64(i + 1),
			Content:  ptr("x"),
			Priority: ptr(priority),
		}, list.ID)
	}

	todos, err := s.ListTodosByList(context.Background(), list.ID)
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}

	want := []int64{2, 4, 3, 1}
	if len(todos) != len(want) {
		t.Fatalf("got %d todos, want %d", len(todos), len(want))
	}
	for i, id := range want {
		if todos[i].ID != id {
			t.Errorf("position %d: id = %d, want %d", i, todos[i].ID, id)
		}
	}
}

func TestListStatsFollowMutations(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)
	ctx := context.Background()

	assertStats := func(total, completed int64) {
		t.Helper()
		got, err := s.GetTodoListByID(ctx, list.ID)
		if err != nil {
			t.Fatalf("reading list: %v", err)
		}
		if got.TotalCount != total || got.NumCompleted != completed {
			t.Errorf("stats = %d/%d, want total=%d completed=%d",
				got.TotalCount, got.NumCompleted, total, completed)
		}
	}

	assertStats(0, 0)

	mustSave(t, s, store.TodoInput{ID: 1, Content: ptr("a"), Status: ptr(model.StatusCompleted)}, list.ID)
	mustSave(t, s, store.TodoInput{ID: 2, Content: ptr("b"), Status: ptr(model.StatusCompleted)}, list.ID)
	mustSave(t, s, store.TodoInput{ID: 3, Content: ptr("c")}, list.ID)
	assertStats(3, 2)

	if err := s.DeleteTodo(ctx, 1); err != nil {
		t.Fatalf("deleting todo: %v", err)
	}
	assertStats(2, 1)

	mustSave(t, s, store.TodoInput{ID: 3, Status: ptr(model.StatusCompleted)}, list.ID)
	assertStats(2, 2)
}

func TestMoveRecomputesBothLists(t *testing.T) {
	s := testutil.NewTestStore(t)
	project, src := newProjectAndList(t, s)
	ctx := context.Background()

	dst, err := s.CreateTodoList(ctx, project.ID, "later", "")
	if err != nil {
		t.Fatalf("creating list: %v", err)
	}

	mustSave(t, s, store.TodoInput{ID: 1, Content: ptr("a"), Status: ptr(model.StatusCompleted)}, src.ID)
	mustSave(t, s, store.TodoInput{ID: 2, Content: ptr("b")}, src.ID)

	results, err := s.MoveTodosBatch(ctx, []int64{1}, dst.ID)
	if err != nil {
		t.Fatalf("moving todos: %v", err)
	}
	if !results[0].Success {
		t.Fatalf("move failed: %v", results[0].Err)
	}

	srcAfter, _ := s.GetTodoListByID(ctx, src.ID)
	dstAfter, _ := s.GetTodoListByID(ctx, dst.ID)
	if srcAfter.TotalCount != 1 || srcAfter.NumCompleted != 0 {
		t.Errorf("source stats = %d/%d, want 1/0", srcAfter.TotalCount, srcAfter.NumCompleted)
	}
	if dstAfter.TotalCount != 1 || dstAfter.NumCompleted != 1 {
		t.Errorf("target stats = %d/%d, want 1/1", dstAfter.TotalCount, dstAfter.NumCompleted)
	}
}

func TestDeleteTodoNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	err := s.DeleteTodo(context.Background(), 42)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestUpdatedAtMonotonicity(t *testing.T) {
	if testing.Short() {
		t.Skip("waits out the one-second timestamp resolution")
	}

	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)
	ctx := context.Background()

	before := mustSave(t, s, store.TodoInput{ID: 1, Content: ptr("x")}, list.ID)
	listBefore, _ := s.GetTodoListByID(ctx, list.ID)

	// Timestamps are epoch seconds, so cross a second boundary.
	time.Sleep(1100 * time.Millisecond)

	after := mustSave(t, s, store.TodoInput{ID: 1, Status: ptr(model.StatusInProgress)}, list.ID)
	listAfter, _ := s.GetTodoListByID(ctx, list.ID)

	if after.UpdatedAt <= before.UpdatedAt {
		t.Errorf("todo updated_at %d did not increase past %d", after.UpdatedAt, before.UpdatedAt)
	}
	if listAfter.UpdatedAt <= listBefore.UpdatedAt {
		t.Errorf("list updated_at %d did not increase past %d", listAfter.UpdatedAt, listBefore.UpdatedAt)
	}
}

func TestSaveTodoBatchIsolatesFailures(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)
	ctx := context.Background()

	results, err := s.SaveTodoBatch(ctx, []store.TodoInput{
		{ID: 1, Content: ptr("ok")},
		{ID: 2}, // no content, invalid on create
	}, list.ID)
	if err != nil {
		t.Fatalf("batch save: %v", err)
	}

	if !results[0].Success {
		t.Errorf("first item failed: %v", results[0].Err)
	}
	if results[1].Success {
		t.Error("second item unexpectedly succeeded")
	}
	if !errors.Is(results[1].Err, store.ErrInvalidInput) {
		t.Errorf("second item error = %v, want ErrInvalidInput", results[1].Err)
	}

	// The valid item is persisted despite the other's failure.
	todo, err := s.GetTodoByID(ctx, 1)
	if err != nil || todo == nil {
		t.Fatalf("first todo not persisted: %v, %v", todo, err)
	}
}

func TestDeleteTodoBatchMixedResults(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)

	mustSave(t, s, store.TodoInput{ID: 1, Content: ptr("x")}, list.ID)

	results, err := s.DeleteTodoBatch(context.Background(), []int64{1, 99})
	if err != nil {
		t.Fatalf("batch delete: %v", err)
	}
	if !results[0].Success {
		t.Errorf("existing todo not deleted: %v", results[0].Err)
	}
	if results[1].Success || !errors.Is(results[1].Err, store.ErrNotFound) {
		t.Errorf("missing todo result = %+v, want ErrNotFound failure", results[1])
	}
}

func TestMoveTodosBatchInvalidTargetFailsWholeCall(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, list := newProjectAndList(t, s)

	mustSave(t, s, store.TodoInput{ID: 1, Content: ptr("x")}, list.ID)

	results, err := s.MoveTodosBatch(context.Background(), []int64{1}, 9999)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if results != nil {
		t.Errorf("expected no partial results, got %+v", results)
	}
}

func TestMoveTodosBatchReportsMissingTodos(t *testing.T) {
	s := testutil.NewTestStore(t)
	project, list := newProjectAndList(t, s)
	ctx := context.Background()

	dst, err := s.CreateTodoList(ctx, project.ID, "later", "")
	if err != nil {
		t.Fatalf("creating list: %v", err)
	}
	mustSave(t, s, store.TodoInput{ID: 1, Content: ptr("x")}, list.ID)

	results, err := s.MoveTodosBatch(ctx, []int64{1, 99}, dst.ID)
	if err != nil {
		t.Fatalf("batch move: %v", err)
	}
	if !results[0].Success {
		t.Errorf("existing todo not moved: %v", results[0].Err)
	}
	if results[1].Success || !errors.Is(results[1].Err, store.ErrNotFound) {
		t.Errorf("missing todo result = %+v, want ErrNotFound failure", results[1])
	}
}
