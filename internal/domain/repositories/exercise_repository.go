package repositories

import (
	"context"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
)

// ExerciseRepository defines the interface for exercise data access
type ExerciseRepository interface {
	// List returns every exercise in storage order
	List(ctx context.Context) ([]*entities.Exercise, error)

	// GetByID retrieves a single exercise
	GetByID(ctx context.Context, id int64) (*entities.Exercise, error)

	// Create inserts a new exercise and fills in its assigned id
	Create(ctx context.Context, exercise *entities.Exercise) error
}
