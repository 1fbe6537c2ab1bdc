package repositories

import (
	"context"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user. The email column carries a UNIQUE
	// constraint; a duplicate insert surfaces as a conflict error straight
	// from the store, so there is no racy check-then-insert step.
	Create(ctx context.Context, user *entities.User) error

	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}
