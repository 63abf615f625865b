package http

import (
	"net/http"
	"time"

	"github.com/m-orlov/taskboard/internal/auth/service"
	commonhttp "github.com/m-orlov/taskboard/internal/common/http"
	"github.com/m-orlov/taskboard/internal/common/logger"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Handler struct {
	auth    *service.AuthService
	timeout time.Duration
	log     *logger.Logger
}

func NewHandler(auth *service.AuthService, timeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{auth: auth, timeout: timeout, log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/register", commonhttp.RequireMethod(http.MethodPost)(commonhttp.WithTimeout(timeout)(h.register)))
	mux.HandleFunc("/api/login", commonhttp.RequireMethod(http.MethodPost)(commonhttp.WithTimeout(timeout)(h.login)))
	return mux
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("register failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", "")
		return
	}

	if err := commonhttp.ValidateStruct(req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	if err := h.auth.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, messageResponse{Message: "user registered successfully"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("login failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", "")
		return
	}

	if err := commonhttp.ValidateStruct(req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	if err := h.auth.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, loginResponse{Success: true, Message: "login successful"})
}
