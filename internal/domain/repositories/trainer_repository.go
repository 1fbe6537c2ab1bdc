package repositories

import (
	"context"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
)

// TrainerRepository defines the interface for trainer data access.
// Trainers are reference data created by the seeder, not through the API.
type TrainerRepository interface {
	// Create inserts a trainer and fills in its assigned id
	Create(ctx context.Context, trainer *entities.Trainer) error

	// List returns every trainer
	List(ctx context.Context) ([]*entities.Trainer, error)
}
