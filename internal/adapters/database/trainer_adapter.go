package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
	"github.com/evelinastr/trainingclub/internal/domain/repositories"
	"github.com/evelinastr/trainingclub/internal/infrastructure/clients/sqlite"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

// TrainerAdapter implements the TrainerRepository interface
type TrainerAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewTrainerAdapter creates a new trainer adapter
func NewTrainerAdapter(client *sqlite.Client) repositories.TrainerRepository {
	return &TrainerAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// Create inserts a trainer and fills in its assigned id
func (a *TrainerAdapter) Create(ctx context.Context, trainer *entities.Trainer) error {
	query, args, err := a.db.Insert("trainers").Rows(goqu.Record{
		"name":           trainer.Name,
		"specialization": trainer.Specialization,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create trainer", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read new trainer id", err)
	}
	trainer.ID = id

	return nil
}

// List returns every trainer
func (a *TrainerAdapter) List(ctx context.Context) ([]*entities.Trainer, error) {
	query, args, err := a.db.Select(
		"id", "name", "specialization",
	).From("trainers").ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list trainers", err)
	}
	defer rows.Close()

	trainers := []*entities.Trainer{}
	for rows.Next() {
		trainer := &entities.Trainer{}
		if err := rows.Scan(
			&trainer.ID,
			&trainer.Name,
			&trainer.Specialization,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan trainer", err)
		}
		trainers = append(trainers, trainer)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate trainers", err)
	}

	return trainers, nil
}
