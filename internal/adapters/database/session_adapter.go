package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
	"github.com/evelinastr/trainingclub/internal/domain/repositories"
	"github.com/evelinastr/trainingclub/internal/infrastructure/clients/sqlite"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

// SessionAdapter implements the SessionRepository interface
type SessionAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewSessionAdapter creates a new session adapter
func NewSessionAdapter(client *sqlite.Client) repositories.SessionRepository {
	return &SessionAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// List returns sessions matching the filter. With a full date range the
// filter is an inclusive BETWEEN on the date column; otherwise every
// session is returned, unordered. Dates are "YYYY-MM-DD" strings, which
// compare correctly as text.
func (a *SessionAdapter) List(ctx context.Context, filter repositories.SessionFilter) ([]*entities.Session, error) {
	ds := a.db.Select(
		"id", "trainer_id", "date", "time", "location",
	).From("sessions")

	if filter.IsRange() {
		ds = ds.Where(goqu.C("date").Between(goqu.Range(filter.StartDate, filter.EndDate)))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list sessions", err)
	}
	defer rows.Close()

	sessions := []*entities.Session{}
	for rows.Next() {
		session := &entities.Session{}
		if err := rows.Scan(
			&session.ID,
			&session.TrainerID,
			&session.Date,
			&session.Time,
			&session.Location,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan session", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate sessions", err)
	}

	return sessions, nil
}

// Create inserts a session and fills in its assigned id
func (a *SessionAdapter) Create(ctx context.Context, session *entities.Session) error {
	query, args, err := a.db.Insert("sessions").Rows(goqu.Record{
		"trainer_id": session.TrainerID,
		"date":       session.Date,
		"time":       session.Time,
		"location":   session.Location,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create session", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read new session id", err)
	}
	session.ID = id

	return nil
}
