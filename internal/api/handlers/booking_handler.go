package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/evelinastr/trainingclub/internal/infrastructure/observability"
)

// BookingService defines the booking operation used by the handler
type BookingService interface {
	Book(ctx context.Context, userID *int64, sessionID int64) (int64, error)
}

// BookingHandler handles booking requests
type BookingHandler struct {
	service BookingService
	metrics *observability.Metrics
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service BookingService, metrics *observability.Metrics) *BookingHandler {
	return &BookingHandler{service: service, metrics: metrics}
}

type bookingRequest struct {
	UserID    *int64 `json:"user_id"`
	SessionID *int64 `json:"session_id"`
}

// CreateBooking handles POST /api/bookings. user_id is optional: the web
// client never sends one because login establishes no server-side identity.
// Which of the two is the defect is an open product decision; the handler
// records whatever it is given.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var payload bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.SessionID == nil {
		respondWithError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	id, err := h.service.Book(r.Context(), payload.UserID, *payload.SessionID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	if h.metrics != nil {
		observability.RecordBooking(r.Context(), h.metrics, *payload.SessionID)
	}

	respondWithJSON(w, http.StatusCreated, map[string]int64{"id": id})
}
