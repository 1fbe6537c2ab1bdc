package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
	"github.com/evelinastr/trainingclub/internal/domain/repositories"
	"github.com/evelinastr/trainingclub/internal/infrastructure/clients/sqlite"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

// BookingAdapter implements the BookingRepository interface
type BookingAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewBookingAdapter creates a new booking adapter
func NewBookingAdapter(client *sqlite.Client) repositories.BookingRepository {
	return &BookingAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// Create inserts a booking row. There is deliberately no session-existence,
// capacity or duplicate check; every call produces a fresh row and id.
func (a *BookingAdapter) Create(ctx context.Context, booking *entities.Booking) error {
	query, args, err := a.db.Insert("bookings").Rows(goqu.Record{
		"user_id":      booking.UserID,
		"session_id":   booking.SessionID,
		"booking_date": booking.BookingDate,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create booking", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read new booking id", err)
	}
	booking.ID = id

	return nil
}

// ListBySession returns the bookings recorded for a session
func (a *BookingAdapter) ListBySession(ctx context.Context, sessionID int64) ([]*entities.Booking, error) {
	query, args, err := a.db.Select(
		"id", "user_id", "session_id", "booking_date",
	).From("bookings").
		Where(goqu.Ex{"session_id": sessionID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list bookings", err)
	}
	defer rows.Close()

	bookings := []*entities.Booking{}
	for rows.Next() {
		booking := &entities.Booking{}
		var userID sql.NullInt64
		var bookingDate sql.NullString
		if err := rows.Scan(
			&booking.ID,
			&userID,
			&booking.SessionID,
			&bookingDate,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan booking", err)
		}
		if userID.Valid {
			booking.UserID = &userID.Int64
		}
		booking.BookingDate = bookingDate.String
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate bookings", err)
	}

	return bookings, nil
}
