package database

import (
	"context"

	"github.com/evelinastr/trainingclub/internal/infrastructure/clients/sqlite"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

// schemaStatements create the tables idempotently at startup. There is no
// migration tooling; the column shapes are fixed.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		firstName TEXT,
		lastName TEXT,
		email TEXT UNIQUE,
		phone TEXT,
		password TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY,
		title TEXT,
		description TEXT,
		imageUrl TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id INTEGER PRIMARY KEY,
		exerciseId INTEGER,
		comment TEXT,
		FOREIGN KEY(exerciseId) REFERENCES exercises(id)
	)`,
	`CREATE TABLE IF NOT EXISTS trainers (
		id INTEGER PRIMARY KEY,
		name TEXT,
		specialization TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY,
		trainer_id INTEGER,
		date TEXT,
		time TEXT,
		location TEXT,
		FOREIGN KEY(trainer_id) REFERENCES trainers(id)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id INTEGER PRIMARY KEY,
		user_id INTEGER,
		session_id INTEGER,
		booking_date TEXT,
		FOREIGN KEY(user_id) REFERENCES users(id),
		FOREIGN KEY(session_id) REFERENCES sessions(id)
	)`,
}

// InitSchema ensures all tables exist
func InitSchema(ctx context.Context, client *sqlite.Client) error {
	for _, stmt := range schemaStatements {
		if _, err := client.DB().ExecContext(ctx, stmt); err != nil {
			return apperrors.NewInternalError("failed to create schema", err)
		}
	}
	return nil
}
