package repositories

import (
	"context"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
)

// BookingRepository defines the interface for booking data access
type BookingRepository interface {
	// Create inserts a booking row and fills in its assigned id
	Create(ctx context.Context, booking *entities.Booking) error

	// ListBySession returns the bookings recorded for a session
	ListBySession(ctx context.Context, sessionID int64) ([]*entities.Booking, error)
}
