package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folkers/internal/middleware"
	"folkers/internal/service"
)

// UserHandler обрабатывает аутентификацию и администрирование
// учётных записей.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

// LoginRequest — тело запроса POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse — ответ с выпущенным токеном.
type AuthResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// UserRequest — тело создания/обновления пользователя.
type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *UserHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("<h1>Backend API is working</h1>"))
}

func (h *UserHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Login проверяет учётные данные и выдаёт bearer-токен.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, h.Logger, "Login", err)
		return
	}

	h.Logger.Infow("user authenticated", "username", req.Username)

	writeJSON(w, http.StatusOK, AuthResponse{Token: token, TokenType: "Bearer"})
}

// Me возвращает данные аутентифицированного пользователя из токена.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role.String(),
	})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "ListUsers", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.GetUserFromContext(r.Context())

	user, err := h.UserService.CreateUser(r.Context(), service.UserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}, actor.Username)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateUser", err)
		return
	}

	h.Logger.Infow("user created", "username", user.Username, "role", user.Role, "created_by", actor.Username)

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeServiceError(w, h.Logger, "GetUser", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.UpdateUser(r.Context(), chi.URLParam(r, "username"), service.UserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateUser", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.DeleteUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeServiceError(w, h.Logger, "DeleteUser", err)
		return
	}

	h.Logger.Infow("user deleted", "username", user.Username)

	writeJSON(w, http.StatusOK, user)
}

// Keygen создаёт пару ключей подписи для вызывающего администратора.
// Приватный ключ отдаётся в ответе один раз и нигде не сохраняется.
func (h *UserHandler) Keygen(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	priv, err := h.UserService.GenerateKeypair(r.Context(), actor.ID)
	if err != nil {
		writeServiceError(w, h.Logger, "GenerateKeypair", err)
		return
	}

	h.Logger.Infow("signing keypair generated", "username", actor.Username)

	writeJSON(w, http.StatusOK, map[string]string{"private_key": priv})
}

// KeyReset сбрасывает сохранённый публичный ключ вызывающего,
// разрешая последующий keygen.
func (h *UserHandler) KeyReset(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.UserService.ResetKeypair(r.Context(), actor.ID); err != nil {
		writeServiceError(w, h.Logger, "ResetKeypair", err)
		return
	}

	h.Logger.Infow("signing keypair reset", "username", actor.Username)

	w.WriteHeader(http.StatusOK)
}
