package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
	"github.com/evelinastr/trainingclub/internal/domain/repositories"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

// ExerciseHandler handles exercise catalog requests
type ExerciseHandler struct {
	repo repositories.ExerciseRepository
}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler(repo repositories.ExerciseRepository) *ExerciseHandler {
	return &ExerciseHandler{repo: repo}
}

// ListExercises handles GET /api/exercises
func (h *ExerciseHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.repo.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, exercises)
}

// GetExercise handles GET /api/exercises/{id}
func (h *ExerciseHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid exercise id")
		return
	}

	exercise, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, exercise)
}

// CreateExercise handles POST /api/exercises
func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	var exercise entities.Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.repo.Create(r.Context(), &exercise); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, exercise)
}

// pathID parses a numeric path value.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// respondWithJSON writes a JSON response with the given status code
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// respondWithError writes a JSON error response
func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{"message": message})
}

// respondWithServiceError maps an application error to an HTTP status.
// Unclassified store failures stay opaque to the caller.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		log.Error().Err(err).Msg("request failed")
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	switch appErr.Type {
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, appErr.Message)
	case apperrors.ErrorTypeValidation:
		respondWithError(w, http.StatusBadRequest, appErr.Message)
	case apperrors.ErrorTypeConflict:
		respondWithError(w, http.StatusConflict, appErr.Message)
	case apperrors.ErrorTypeUnauthorized:
		respondWithError(w, http.StatusUnauthorized, appErr.Message)
	default:
		log.Error().Err(err).Msg("request failed")
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
