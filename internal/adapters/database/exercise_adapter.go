package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
	"github.com/evelinastr/trainingclub/internal/domain/repositories"
	"github.com/evelinastr/trainingclub/internal/infrastructure/clients/sqlite"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

// ExerciseAdapter implements the ExerciseRepository interface
type ExerciseAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewExerciseAdapter creates a new exercise adapter
func NewExerciseAdapter(client *sqlite.Client) repositories.ExerciseRepository {
	return &ExerciseAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// List returns every exercise in storage order
func (a *ExerciseAdapter) List(ctx context.Context) ([]*entities.Exercise, error) {
	query, args, err := a.db.Select(
		"id", "title", "description", "imageUrl",
	).From("exercises").ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list exercises", err)
	}
	defer rows.Close()

	exercises := []*entities.Exercise{}
	for rows.Next() {
		exercise := &entities.Exercise{}
		if err := rows.Scan(
			&exercise.ID,
			&exercise.Title,
			&exercise.Description,
			&exercise.ImageURL,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan exercise", err)
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate exercises", err)
	}

	return exercises, nil
}

// GetByID retrieves a single exercise
func (a *ExerciseAdapter) GetByID(ctx context.Context, id int64) (*entities.Exercise, error) {
	query, args, err := a.db.Select(
		"id", "title", "description", "imageUrl",
	).From("exercises").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	exercise := &entities.Exercise{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&exercise.ID,
		&exercise.Title,
		&exercise.Description,
		&exercise.ImageURL,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("exercise with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get exercise", err)
	}

	return exercise, nil
}

// Create inserts a new exercise and fills in its assigned id
func (a *ExerciseAdapter) Create(ctx context.Context, exercise *entities.Exercise) error {
	query, args, err := a.db.Insert("exercises").Rows(goqu.Record{
		"title":       exercise.Title,
		"description": exercise.Description,
		"imageUrl":    exercise.ImageURL,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create exercise", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read new exercise id", err)
	}
	exercise.ID = id

	return nil
}
