package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-orlov/taskboard/internal/common/clock"
	"github.com/m-orlov/taskboard/internal/common/logger"
	taskdomain "github.com/m-orlov/taskboard/internal/task/domain"
	taskrepo "github.com/m-orlov/taskboard/internal/task/repository"
	"github.com/m-orlov/taskboard/internal/task/service"
)

func setupTaskService(t *testing.T, repo taskrepo.Repository, ids ...string) (*service.TaskService, *clock.MockClock) {
	t.Helper()

	mockClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	log, _ := logger.New("", "test", "info")

	svc := service.NewTaskService(service.TaskServiceDeps{
		Repo:        repo,
		IDGenerator: &sequenceIDGenerator{ids: ids},
		Clock:       mockClock,
		Log:         log,
	})

	return svc, mockClock
}

func TestTaskService_Create_DefaultsToNotCompleted(t *testing.T) {
	repo := &mockTaskRepo{}
	svc, mockClock := setupTaskService(t, repo, "task-1")

	var inserted taskdomain.Task
	repo.insertFunc = func(_ context.Context, task taskdomain.Task) error {
		inserted = task
		return nil
	}

	task, err := svc.Create(context.Background(), service.CreateInput{Title: "Buy milk", Username: "alice"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if task.Completed {
		t.Error("expected new task to start not completed")
	}
	if task.ID != "task-1" {
		t.Errorf("expected generated id, got %s", task.ID)
	}
	if inserted.Title != "Buy milk" || inserted.Username != "alice" {
		t.Errorf("unexpected stored task: %+v", inserted)
	}
	if !inserted.CreatedAt.Equal(mockClock.Now()) {
		t.Errorf("expected created_at from clock, got %v", inserted.CreatedAt)
	}
}

func TestTaskService_CreateThenList(t *testing.T) {
	store := newFakeTaskStore()
	svc, _ := setupTaskService(t, store, "task-1")

	if _, err := svc.Create(context.Background(), service.CreateInput{Title: "Buy milk"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	tasks, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(tasks) != 1 {
		t.Fatalf("expected exactly one task, got %d", len(tasks))
	}
	if tasks[0].Title != "Buy milk" {
		t.Errorf("expected title Buy milk, got %s", tasks[0].Title)
	}
	if tasks[0].Completed {
		t.Error("expected completed false")
	}
}

func TestTaskService_ToggleTwiceIsANoOp(t *testing.T) {
	store := newFakeTaskStore()
	svc, _ := setupTaskService(t, store, "task-1")

	created, err := svc.Create(context.Background(), service.CreateInput{Title: "Water plants"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	on := true
	off := false

	first, err := svc.Update(context.Background(), created.ID, taskdomain.Patch{Completed: &on})
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Completed {
		t.Error("expected completed true after first toggle")
	}

	second, err := svc.Update(context.Background(), created.ID, taskdomain.Patch{Completed: &off})
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Completed {
		t.Error("expected completed false after second toggle")
	}
	if second.Title != "Water plants" {
		t.Errorf("toggling must not touch the title, got %s", second.Title)
	}
}

func TestTaskService_Update_PartialPatchKeepsOtherFields(t *testing.T) {
	store := newFakeTaskStore()
	svc, _ := setupTaskService(t, store, "task-1")

	created, err := svc.Create(context.Background(), service.CreateInput{Title: "Old title", Username: "alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newTitle := "New title"
	updated, err := svc.Update(context.Background(), created.ID, taskdomain.Patch{Title: &newTitle})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != "New title" {
		t.Errorf("expected retitled task, got %s", updated.Title)
	}
	if updated.Completed != created.Completed {
		t.Error("title-only patch must not change completed")
	}
	if updated.Username != "alice" {
		t.Errorf("patch must not change the owner, got %s", updated.Username)
	}
}

func TestTaskService_Update_NotFound(t *testing.T) {
	svc, _ := setupTaskService(t, &mockTaskRepo{})

	on := true
	_, err := svc.Update(context.Background(), "missing", taskdomain.Patch{Completed: &on})
	if !errors.Is(err, service.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_Remove_MissingIDIsNotAnError(t *testing.T) {
	store := newFakeTaskStore()
	svc, _ := setupTaskService(t, store)

	if err := svc.Remove(context.Background(), "never-existed"); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
}

func TestTaskService_ListByUser_ExactMatchOnly(t *testing.T) {
	store := newFakeTaskStore()
	svc, _ := setupTaskService(t, store)

	seed := []taskdomain.Task{
		{ID: "t1", Title: "mine", Username: "alice"},
		{ID: "t2", Title: "case differs", Username: "Alice"},
		{ID: "t3", Title: "unowned"},
		{ID: "t4", Title: "someone else", Username: "bob"},
	}
	for _, task := range seed {
		if err := store.Insert(context.Background(), task); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	tasks, err := svc.ListByUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(tasks) != 1 {
		t.Fatalf("expected one task for alice, got %d", len(tasks))
	}
	if tasks[0].ID != "t1" {
		t.Errorf("expected task t1, got %s", tasks[0].ID)
	}
}

func TestTaskService_ListByUser_UnknownUserIsEmpty(t *testing.T) {
	store := newFakeTaskStore()
	svc, _ := setupTaskService(t, store)

	tasks, err := svc.ListByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if tasks == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestTaskService_ListAll_EmptyStore(t *testing.T) {
	svc, _ := setupTaskService(t, &mockTaskRepo{})

	tasks, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if tasks == nil {
		t.Fatal("expected an empty slice, not nil")
	}
}
