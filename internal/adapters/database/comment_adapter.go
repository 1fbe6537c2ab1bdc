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

// CommentAdapter implements the CommentRepository interface
type CommentAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewCommentAdapter creates a new comment adapter
func NewCommentAdapter(client *sqlite.Client) repositories.CommentRepository {
	return &CommentAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// ListByExercise returns all comments for an exercise, empty slice if none
func (a *CommentAdapter) ListByExercise(ctx context.Context, exerciseID int64) ([]*entities.Comment, error) {
	query, args, err := a.db.Select(
		"id", "exerciseId", "comment",
	).From("comments").
		Where(goqu.Ex{"exerciseId": exerciseID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list comments", err)
	}
	defer rows.Close()

	comments := []*entities.Comment{}
	for rows.Next() {
		comment := &entities.Comment{}
		if err := rows.Scan(
			&comment.ID,
			&comment.ExerciseID,
			&comment.Text,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan comment", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate comments", err)
	}

	return comments, nil
}

// Create inserts a comment and returns the stored row, re-read by its
// assigned id so the caller sees exactly what was persisted.
func (a *CommentAdapter) Create(ctx context.Context, comment *entities.Comment) (*entities.Comment, error) {
	query, args, err := a.db.Insert("comments").Rows(goqu.Record{
		"exerciseId": comment.ExerciseID,
		"comment":    comment.Text,
	}).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create comment", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read new comment id", err)
	}

	return a.getByID(ctx, id)
}

// Delete removes the comment only when (commentID, exerciseID) match the
// same row. A comment living under a different exercise is treated as not
// found and left intact.
func (a *CommentAdapter) Delete(ctx context.Context, exerciseID, commentID int64) error {
	query, args, err := a.db.Delete("comments").
		Where(goqu.Ex{"id": commentID, "exerciseId": exerciseID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete comment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("comment %d not found for exercise %d", commentID, exerciseID))
	}

	return nil
}

func (a *CommentAdapter) getByID(ctx context.Context, id int64) (*entities.Comment, error) {
	query, args, err := a.db.Select(
		"id", "exerciseId", "comment",
	).From("comments").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	comment := &entities.Comment{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&comment.ID,
		&comment.ExerciseID,
		&comment.Text,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("comment with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get comment", err)
	}

	return comment, nil
}
