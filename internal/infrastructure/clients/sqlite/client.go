package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/evelinastr/trainingclub/pkg/config"
	"github.com/evelinastr/trainingclub/pkg/retry"
)

// Client represents the SQLite database client. One client is opened at
// process start and shared for the process lifetime.
type Client struct {
	db *sql.DB
}

// NewClient opens the database file and verifies the connection with
// exponential backoff retry.
func NewClient(cfg *config.DatabaseConfig) (*Client, error) {
	db, err := sql.Open("sqlite3", cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writers; more than one open connection just
	// trades SQLITE_BUSY errors for queueing in the driver.
	db.SetMaxOpenConns(1)

	retryConfig := retry.DefaultConfig()
	retryConfig.OnRetry = func(attempt int, err error, nextDelay time.Duration) {
		log.Warn().Err(err).Int("attempt", attempt).Dur("next_delay", nextDelay).
			Msg("SQLite connection attempt failed, retrying")
	}

	err = retry.Do(context.Background(), retryConfig, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite after retries: %w", err)
	}

	return &Client{db: db}, nil
}

// NewInMemoryClient opens a throwaway in-memory database, used by tests.
func NewInMemoryClient() (*Client, error) {
	db, err := sql.Open("sqlite3", "file::memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &Client{db: db}, nil
}

// DB returns the underlying database connection
func (c *Client) DB() *sql.DB {
	return c.db
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping verifies the connection to the database
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
