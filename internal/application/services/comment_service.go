package services

import (
	"context"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
	"github.com/evelinastr/trainingclub/internal/domain/repositories"
)

// CommentService handles the comment thread attached to an exercise
type CommentService struct {
	repo repositories.CommentRepository
}

// NewCommentService creates a new comment service
func NewCommentService(repo repositories.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

// ListByExercise returns all comments for an exercise. No pagination;
// unbounded growth is the caller's problem.
func (s *CommentService) ListByExercise(ctx context.Context, exerciseID int64) ([]*entities.Comment, error) {
	return s.repo.ListByExercise(ctx, exerciseID)
}

// Append stores a comment and returns the persisted row. Empty text is
// accepted; validation here is deliberately minimal.
func (s *CommentService) Append(ctx context.Context, exerciseID int64, text string) (*entities.Comment, error) {
	return s.repo.Create(ctx, &entities.Comment{
		ExerciseID: exerciseID,
		Text:       text,
	})
}

// Delete removes a comment when the (comment, exercise) pair matches
// exactly one row; otherwise the comment is reported not found and left
// untouched.
func (s *CommentService) Delete(ctx context.Context, exerciseID, commentID int64) error {
	return s.repo.Delete(ctx, exerciseID, commentID)
}
