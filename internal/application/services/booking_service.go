package services

import (
	"context"
	"time"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
	"github.com/evelinastr/trainingclub/internal/domain/repositories"
)

// BookingService records a member's intent to attend a session
type BookingService struct {
	repo repositories.BookingRepository
}

// NewBookingService creates a new booking service
func NewBookingService(repo repositories.BookingRepository) *BookingService {
	return &BookingService{repo: repo}
}

// Book inserts one booking row and returns its id. By contract there is no
// session-existence check, no capacity limit and no dedup: booking the same
// session twice yields two rows with distinct ids. The user reference is
// optional because no authenticated identity exists anywhere in the system;
// a missing user is stored as NULL rather than dropped silently.
func (s *BookingService) Book(ctx context.Context, userID *int64, sessionID int64) (int64, error) {
	booking := &entities.Booking{
		UserID:      userID,
		SessionID:   sessionID,
		BookingDate: time.Now().Format(entities.DateLayout),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return 0, err
	}

	return booking.ID, nil
}
