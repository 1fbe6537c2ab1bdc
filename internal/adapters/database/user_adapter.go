package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/mattn/go-sqlite3"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
	"github.com/evelinastr/trainingclub/internal/domain/repositories"
	"github.com/evelinastr/trainingclub/internal/infrastructure/clients/sqlite"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

// UserAdapter implements the UserRepository interface
type UserAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *sqlite.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// Create inserts a new user. Uniqueness is enforced by the UNIQUE(email)
// column, so a duplicate registration fails atomically inside the insert
// instead of racing a prior existence check.
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	query, args, err := a.db.Insert("users").Rows(goqu.Record{
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
		"phone":     user.Phone,
		"password":  user.PasswordHash,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("user with email %s already exists", user.Email))
		}
		return apperrors.NewInternalError("failed to create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read new user id", err)
	}
	user.ID = id

	return nil
}

// GetByEmail retrieves a user by email address
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query, args, err := a.db.Select(
		"id", "firstName", "lastName", "email", "phone", "password",
	).From("users").
		Where(goqu.Ex{"email": email}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.scanUser(ctx, query, args, fmt.Sprintf("user with email %s not found", email))
}

// GetByID retrieves a user by id
func (a *UserAdapter) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query, args, err := a.db.Select(
		"id", "firstName", "lastName", "email", "phone", "password",
	).From("users").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.scanUser(ctx, query, args, fmt.Sprintf("user with id %d not found", id))
}

func (a *UserAdapter) scanUser(ctx context.Context, query string, args []interface{}, notFoundMsg string) (*entities.User, error) {
	user := &entities.User{}
	err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	return user, nil
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
