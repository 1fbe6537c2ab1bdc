package repositories

import (
	"context"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
)

// SessionFilter narrows a session listing to an inclusive calendar date
// range. Both bounds must be present for the filter to apply; a partial
// range is ignored and the listing falls back to all sessions.
type SessionFilter struct {
	StartDate string
	EndDate   string
}

// IsRange reports whether both bounds are set.
func (f SessionFilter) IsRange() bool {
	return f.StartDate != "" && f.EndDate != ""
}

// SessionRepository defines the interface for session data access
type SessionRepository interface {
	// List returns sessions matching the filter, in storage order
	List(ctx context.Context, filter SessionFilter) ([]*entities.Session, error)

	// Create inserts a session and fills in its assigned id
	Create(ctx context.Context, session *entities.Session) error
}
