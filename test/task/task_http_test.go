package task

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-orlov/taskboard/internal/common/clock"
	"github.com/m-orlov/taskboard/internal/common/logger"
	taskhttp "github.com/m-orlov/taskboard/internal/task/http"
	taskrepo "github.com/m-orlov/taskboard/internal/task/repository"
	"github.com/m-orlov/taskboard/internal/task/service"
)

type taskBody struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Username  string `json:"username"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newTaskHandler(t *testing.T, repo taskrepo.Repository, ids ...string) http.Handler {
	t.Helper()

	log, _ := logger.New("", "test", "info")
	svc := service.NewTaskService(service.TaskServiceDeps{
		Repo:        repo,
		IDGenerator: &sequenceIDGenerator{ids: ids},
		Clock:       clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		Log:         log,
	})
	return taskhttp.NewHandler(svc, 30*time.Second, log)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		reader = bytes.NewReader(bodyBytes)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestTaskHTTP_CreateThenList(t *testing.T) {
	h := newTaskHandler(t, newFakeTaskStore(), "task-1")

	created := doJSON(t, h, http.MethodPost, "/api/tasks", map[string]string{"title": "Buy milk"})
	if created.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", created.Code)
	}

	var createdTask taskBody
	if err := json.NewDecoder(created.Body).Decode(&createdTask); err != nil {
		t.Fatalf("decode created task: %v", err)
	}
	if createdTask.ID == "" {
		t.Error("expected an assigned id")
	}
	if createdTask.Completed {
		t.Error("expected completed false on create")
	}

	listed := doJSON(t, h, http.MethodGet, "/api/tasks", nil)
	if listed.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", listed.Code)
	}

	var tasks []taskBody
	if err := json.NewDecoder(listed.Body).Decode(&tasks); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(tasks))
	}
	if tasks[0].Title != "Buy milk" {
		t.Errorf("expected title Buy milk, got %s", tasks[0].Title)
	}
}

func TestTaskHTTP_Create_MissingTitle(t *testing.T) {
	h := newTaskHandler(t, newFakeTaskStore())

	rec := doJSON(t, h, http.MethodPost, "/api/tasks", map[string]string{"username": "alice"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var env errorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if env.Code != "VALIDATION_FAILED" {
		t.Errorf("expected code VALIDATION_FAILED, got %s", env.Code)
	}
}

func TestTaskHTTP_Toggle(t *testing.T) {
	h := newTaskHandler(t, newFakeTaskStore(), "task-1")

	doJSON(t, h, http.MethodPost, "/api/tasks", map[string]string{"title": "Water plants"})

	rec := doJSON(t, h, http.MethodPut, "/api/tasks/task-1", map[string]bool{"completed": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var updated taskBody
	if err := json.NewDecoder(rec.Body).Decode(&updated); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !updated.Completed {
		t.Error("expected completed true after toggle")
	}
	if updated.Title != "Water plants" {
		t.Errorf("toggle must not change the title, got %s", updated.Title)
	}
}

func TestTaskHTTP_Update_NotFound(t *testing.T) {
	h := newTaskHandler(t, newFakeTaskStore())

	rec := doJSON(t, h, http.MethodPut, "/api/tasks/missing-id", map[string]bool{"completed": true})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var env errorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if env.Code != "TASK_NOT_FOUND" {
		t.Errorf("expected code TASK_NOT_FOUND, got %s", env.Code)
	}
}

func TestTaskHTTP_Delete_MissingIDStillConfirms(t *testing.T) {
	h := newTaskHandler(t, newFakeTaskStore())

	rec := doJSON(t, h, http.MethodDelete, "/api/tasks/never-existed", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["message"] == "" {
		t.Error("expected a confirmation message")
	}
}

func TestTaskHTTP_ListByUsername(t *testing.T) {
	h := newTaskHandler(t, newFakeTaskStore(), "task-1", "task-2")

	doJSON(t, h, http.MethodPost, "/api/tasks", map[string]string{"title": "mine", "username": "alice"})
	doJSON(t, h, http.MethodPost, "/api/tasks", map[string]string{"title": "theirs", "username": "bob"})

	rec := doJSON(t, h, http.MethodGet, "/api/tasks/alice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var tasks []taskBody
	if err := json.NewDecoder(rec.Body).Decode(&tasks); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected one task for alice, got %d", len(tasks))
	}
	if tasks[0].Username != "alice" {
		t.Errorf("expected alice's task, got %s", tasks[0].Username)
	}
}

func TestTaskHTTP_InvalidNestedPath(t *testing.T) {
	h := newTaskHandler(t, newFakeTaskStore())

	rec := doJSON(t, h, http.MethodGet, "/api/tasks/alice/extra", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTaskHTTP_CollectionMethodNotAllowed(t *testing.T) {
	h := newTaskHandler(t, newFakeTaskStore())

	rec := doJSON(t, h, http.MethodDelete, "/api/tasks", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
