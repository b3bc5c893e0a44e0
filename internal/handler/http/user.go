package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-io/ess-backend-go/internal/domain/user"
	"github.com/staffhub-io/ess-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{
		userService: userService,
	}
}

// CreateUser handles POST /users
func (h *userHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.userService.CreateUser(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", result)
}

// GetUser handles GET /users/{id}
func (h *userHandlerImpl) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")

	result, err := h.userService.GetUser(ctx, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListUsers handles GET /users
func (h *userHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := user.ListUsersFilter{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
	}
	if filter.Status == "" {
		filter.Status = "all"
	}

	result, err := h.userService.ListUsers(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateUser handles PUT /users/{id}
func (h *userHandlerImpl) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.userService.UpdateUser(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated", result)
}

// DeleteUser handles DELETE /users/{id}
func (h *userHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")

	if err := h.userService.DeleteUser(ctx, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted", nil)
}
