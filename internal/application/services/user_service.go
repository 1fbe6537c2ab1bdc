package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
	"github.com/evelinastr/trainingclub/internal/domain/repositories"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

// UserService handles registration and credential verification
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register hashes the password and stores the user in a single constrained
// write. Duplicate emails are reported by the store's UNIQUE constraint and
// surface as a conflict; there is no separate existence check to race
// against. Returns the new user's id.
func (s *UserService) Register(ctx context.Context, reg *entities.Registration) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to hash password", err)
	}

	user := &entities.User{
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		Phone:        reg.Phone,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return 0, err
	}

	return user.ID, nil
}

// Login verifies credentials. An unknown email and a wrong password produce
// distinct outcomes; the account-existence disclosure this implies is the
// documented observed behavior, not an accident.
func (s *UserService) Login(ctx context.Context, creds *entities.Credentials) (*entities.User, error) {
	user, err := s.repo.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.NewUnauthorizedError("wrong password")
		}
		return nil, apperrors.NewInternalError("failed to verify password", err)
	}

	return user, nil
}
