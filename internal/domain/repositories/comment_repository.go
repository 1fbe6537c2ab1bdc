package repositories

import (
	"context"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// ListByExercise returns all comments for an exercise, empty slice if none
	ListByExercise(ctx context.Context, exerciseID int64) ([]*entities.Comment, error)

	// Create inserts a comment and returns the stored row
	Create(ctx context.Context, comment *entities.Comment) (*entities.Comment, error)

	// Delete removes the comment only when both ids match the same row.
	// A comment id that exists under a different exercise is not found.
	Delete(ctx context.Context, exerciseID, commentID int64) error
}
