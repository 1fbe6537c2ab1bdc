package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evelinastr/trainingclub/internal/adapters/database"
	"github.com/evelinastr/trainingclub/internal/infrastructure/clients/sqlite"
)

// newTestClient opens a throwaway in-memory database with the full schema.
func newTestClient(t *testing.T) *sqlite.Client {
	t.Helper()

	client, err := sqlite.NewInMemoryClient()
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, database.InitSchema(context.Background(), client))
	return client
}
