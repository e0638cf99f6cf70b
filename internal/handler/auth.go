package handler

import (
	"errors"
	"net/http"

	"github.com/Venkat-46/devs-dairy-backend/internal/model"
	"github.com/Venkat-46/devs-dairy-backend/internal/service"
)

// AuthHandler handles the signup and login endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleSignup handles POST /signup.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if !bindJSON(w, r, &req) {
		return
	}

	if _, err := h.service.Signup(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeText(w, http.StatusBadRequest, "Email already registered")
			return
		}
		serverError(w)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "user created successfully"})
}

// HandleLogin handles POST /login. The three failure reasons are reported
// distinctly, matching the stored account against username, role and
// password in that order. The submitted password is never echoed back.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !bindJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUser):
			writeText(w, http.StatusBadRequest, "Invalid user")
		case errors.Is(err, service.ErrInvalidRole):
			writeText(w, http.StatusBadRequest, "Invalid role")
		case errors.Is(err, service.ErrInvalidPassword):
			writeText(w, http.StatusBadRequest, "Invalid password")
		default:
			serverError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
