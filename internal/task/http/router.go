package http

import (
	"net/http"
	"strings"
	"time"

	commonhttp "github.com/m-orlov/taskboard/internal/common/http"
	"github.com/m-orlov/taskboard/internal/common/logger"
	"github.com/m-orlov/taskboard/internal/task/domain"
	"github.com/m-orlov/taskboard/internal/task/service"
)

type createTaskRequest struct {
	Title    string `json:"title" validate:"required"`
	Username string `json:"username"`
}

type updateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type taskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	tasks   *service.TaskService
	timeout time.Duration
	log     *logger.Logger
}

func NewHandler(tasks *service.TaskService, timeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{tasks: tasks, timeout: timeout, log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tasks", commonhttp.WithTimeout(timeout)(h.collection))
	mux.HandleFunc("/api/tasks/", commonhttp.WithTimeout(timeout)(h.item))
	return mux
}

func (h *Handler) collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listAll(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", "")
	}
}

// item routes /api/tasks/{param}. The param is a username for GET and a task
// id for PUT and DELETE; the two surfaces of the original API are collapsed
// onto one path and told apart by method.
func (h *Handler) item(w http.ResponseWriter, r *http.Request) {
	param := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
	if param == "" || strings.Contains(param, "/") {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidPath, "invalid path", "")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.listByUser(w, r, param)
	case http.MethodPut:
		h.update(w, r, domain.ID(param))
	case http.MethodDelete:
		h.remove(w, r, domain.ID(param))
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", "")
	}
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.ListAll(r.Context())
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toTaskResponses(tasks))
}

func (h *Handler) listByUser(w http.ResponseWriter, r *http.Request, username string) {
	tasks, err := h.tasks.ListByUser(r.Context(), username)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toTaskResponses(tasks))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("create task failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", "")
		return
	}

	if err := commonhttp.ValidateStruct(req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	task, err := h.tasks.Create(r.Context(), service.CreateInput{
		Title:    req.Title,
		Username: req.Username,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, toTaskResponse(task))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, id domain.ID) {
	var req updateTaskRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("update task failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", "")
		return
	}

	task, err := h.tasks.Update(r.Context(), id, domain.Patch{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toTaskResponse(task))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request, id domain.ID) {
	if err := h.tasks.Remove(r.Context(), id); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, messageResponse{Message: "task deleted"})
}

func toTaskResponse(t domain.Task) taskResponse {
	return taskResponse{
		ID:        string(t.ID),
		Title:     t.Title,
		Completed: t.Completed,
		Username:  t.Username,
		CreatedAt: t.CreatedAt,
	}
}

func toTaskResponses(tasks []domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}
