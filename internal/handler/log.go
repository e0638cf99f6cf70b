package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Venkat-46/devs-dairy-backend/internal/middleware"
	"github.com/Venkat-46/devs-dairy-backend/internal/model"
	"github.com/Venkat-46/devs-dairy-backend/internal/repository"
	"github.com/Venkat-46/devs-dairy-backend/internal/service"
)

// LogHandler handles the standup log endpoints. Every route here runs
// behind the JWT middleware; the handlers pass the authenticated username
// and the path's target user id to the service, which authorizes before
// touching the store.
type LogHandler struct {
	service *service.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(svc *service.LogService) *LogHandler {
	return &LogHandler{service: svc}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

// writeLogError maps service and repository failures to responses. Guard
// rejections and missing rows get specific statuses; anything unexpected
// collapses to a generic 500.
func writeLogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrStaleToken):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, repository.ErrUnknownUser):
		writeText(w, http.StatusNotFound, "user not found")
	case errors.Is(err, repository.ErrLogNotFound):
		writeText(w, http.StatusNotFound, "log not found")
	default:
		serverError(w)
	}
}

// HandleAddLog handles POST /userlogs/{userid}.
func (h *LogHandler) HandleAddLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userid")
	if !ok {
		writeText(w, http.StatusBadRequest, "invalid user id")
		return
	}

	actor, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req model.LogEntryRequest
	if !bindJSON(w, r, &req) {
		return
	}

	if _, err := h.service.AddLog(r.Context(), actor, userID, req); err != nil {
		writeLogError(w, err)
		return
	}

	writeText(w, http.StatusCreated, "log Successfully Added")
}

// HandleListLogs handles GET /userlogs/{userid}.
func (h *LogHandler) HandleListLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userid")
	if !ok {
		writeText(w, http.StatusBadRequest, "invalid user id")
		return
	}

	actor, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	entries, err := h.service.ListLogs(r.Context(), actor, userID)
	if err != nil {
		writeLogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// HandleGetLog handles GET /userlogs/{userid}/{logid}.
func (h *LogHandler) HandleGetLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userid")
	if !ok {
		writeText(w, http.StatusBadRequest, "invalid user id")
		return
	}
	logID, ok := pathID(r, "logid")
	if !ok {
		writeText(w, http.StatusBadRequest, "invalid log id")
		return
	}

	actor, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	entry, err := h.service.GetLog(r.Context(), actor, userID, logID)
	if err != nil {
		writeLogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// HandleUpdateLog handles POST /userlogs/update/{userid}/{logid}.
func (h *LogHandler) HandleUpdateLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userid")
	if !ok {
		writeText(w, http.StatusBadRequest, "invalid user id")
		return
	}
	logID, ok := pathID(r, "logid")
	if !ok {
		writeText(w, http.StatusBadRequest, "invalid log id")
		return
	}

	actor, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req model.LogEntryRequest
	if !bindJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdateLog(r.Context(), actor, userID, logID, req); err != nil {
		writeLogError(w, err)
		return
	}

	writeText(w, http.StatusOK, "log is updated successfully")
}

// HandleDeleteLog handles DELETE /userlogs/delete/{userid}/{logid}.
func (h *LogHandler) HandleDeleteLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userid")
	if !ok {
		writeText(w, http.StatusBadRequest, "invalid user id")
		return
	}
	logID, ok := pathID(r, "logid")
	if !ok {
		writeText(w, http.StatusBadRequest, "invalid log id")
		return
	}

	actor, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	if err := h.service.DeleteLog(r.Context(), actor, userID, logID); err != nil {
		writeLogError(w, err)
		return
	}

	writeText(w, http.StatusOK, "log is deleted successfully")
}
