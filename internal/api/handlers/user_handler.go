package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

// UserService defines the account operations used by the handler
type UserService interface {
	Register(ctx context.Context, reg *entities.Registration) (int64, error)
	Login(ctx context.Context, creds *entities.Credentials) (*entities.User, error)
}

// UserHandler handles registration and login requests
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg entities.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	id, err := h.service.Register(r.Context(), &reg)
	if err != nil {
		if apperrors.TypeOf(err) == apperrors.ErrorTypeConflict {
			respondWithError(w, http.StatusConflict, "Användare med angiven e-postadress finns redan.")
			return
		}
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      id,
		"message": "Användare registrerad.",
	})
}

// Login handles POST /api/users/login. An unknown email is answered with
// 404 and a wrong password with 401; the two outcomes are deliberately
// distinguishable.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds entities.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if _, err := h.service.Login(r.Context(), &creds); err != nil {
		switch apperrors.TypeOf(err) {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, "Användaren finns inte.")
		case apperrors.ErrorTypeUnauthorized:
			respondWithError(w, http.StatusUnauthorized, "Felaktigt lösenord.")
		default:
			respondWithError(w, http.StatusInternalServerError, "Inloggningen misslyckades.")
		}
		return
	}

	// No token or cookie is issued; a successful response is the whole
	// extent of "being logged in".
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Du är inloggad!"})
}
