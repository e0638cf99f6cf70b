package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Venkat-46/devs-dairy-backend/internal/model"
	"github.com/Venkat-46/devs-dairy-backend/internal/repository"
	"github.com/Venkat-46/devs-dairy-backend/internal/service"
)

// UserHandler handles the public user lookup endpoints.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleListUsers handles GET /users.
func (h *UserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		serverError(w)
		return
	}
	if users == nil {
		users = []model.UserResponse{}
	}

	writeJSON(w, http.StatusOK, users)
}

// HandleGetUser handles GET /users/{userid}.
func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userid"), 10, 64)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeText(w, http.StatusNotFound, "user not found")
			return
		}
		serverError(w)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
