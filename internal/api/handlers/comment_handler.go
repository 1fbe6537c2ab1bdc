package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
)

// CommentService defines the comment thread operations used by the handler
type CommentService interface {
	ListByExercise(ctx context.Context, exerciseID int64) ([]*entities.Comment, error)
	Append(ctx context.Context, exerciseID int64, text string) (*entities.Comment, error)
	Delete(ctx context.Context, exerciseID, commentID int64) error
}

// CommentHandler handles exercise comment requests
type CommentHandler struct {
	service CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type commentRequest struct {
	Text string `json:"text"`
}

// ListComments handles GET /api/exercises/{id}/comments
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid exercise id")
		return
	}

	comments, err := h.service.ListByExercise(r.Context(), exerciseID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, comments)
}

// AppendComment handles POST /api/exercises/{id}/comments. Empty text is
// accepted; the thread has no minimum content rule.
func (h *CommentHandler) AppendComment(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid exercise id")
		return
	}

	var payload commentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	comment, err := h.service.Append(r.Context(), exerciseID, payload.Text)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, comment)
}

// DeleteComment handles DELETE /api/exercises/{exerciseId}/comments/{commentId}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := pathID(r, "exerciseId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid exercise id")
		return
	}
	commentID, err := pathID(r, "commentId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.service.Delete(r.Context(), exerciseID, commentID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
