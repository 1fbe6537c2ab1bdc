package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
)

// SessionService defines the session operations used by the handler
type SessionService interface {
	ListAvailable(ctx context.Context, startDate, endDate string) ([]*entities.Session, error)
	Create(ctx context.Context, session *entities.Session) error
}

// SessionHandler handles session availability and creation requests
type SessionHandler struct {
	service SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// ListSessions handles GET /api/sessions?start_date&end_date. Both query
// parameters are optional; without a full range every session is returned.
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	sessions, err := h.service.ListAvailable(r.Context(), startDate, endDate)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, sessions)
}

// CreateSession handles POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var session entities.Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Create(r.Context(), &session); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]int64{"id": session.ID})
}
