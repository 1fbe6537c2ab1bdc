package services

import (
	"context"
	"time"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
	"github.com/evelinastr/trainingclub/internal/domain/repositories"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

// SessionService handles the session availability view and session creation
type SessionService struct {
	repo repositories.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(repo repositories.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// ListAvailable returns the sessions whose date falls in the inclusive
// [startDate, endDate] range. When either bound is missing the full table
// is returned unfiltered; callers relying on that fallback get an unbounded
// result set by contract. Ordering is storage order: the client groups
// sessions into day buckets itself and must not trust any server ordering.
func (s *SessionService) ListAvailable(ctx context.Context, startDate, endDate string) ([]*entities.Session, error) {
	filter := repositories.SessionFilter{StartDate: startDate, EndDate: endDate}

	if filter.IsRange() {
		if err := validateDate(filter.StartDate); err != nil {
			return nil, err
		}
		if err := validateDate(filter.EndDate); err != nil {
			return nil, err
		}
	}

	return s.repo.List(ctx, filter)
}

// Create stores a new session slot. Sessions are immutable once created;
// no update or delete path exists.
func (s *SessionService) Create(ctx context.Context, session *entities.Session) error {
	if err := validateDate(session.Date); err != nil {
		return err
	}
	return s.repo.Create(ctx, session)
}

func validateDate(value string) error {
	if _, err := time.Parse(entities.DateLayout, value); err != nil {
		return apperrors.NewValidationError("date must be formatted YYYY-MM-DD")
	}
	return nil
}
