package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evelinastr/trainingclub/internal/adapters/database"
	"github.com/evelinastr/trainingclub/internal/application/services"
	"github.com/evelinastr/trainingclub/internal/domain/entities"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

func TestSessionService_ListAvailable(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	service := services.NewSessionService(database.NewSessionAdapter(client))

	require.NoError(t, service.Create(ctx, &entities.Session{TrainerID: 1, Date: "2026-06-01", Time: "09:00", Location: "Hall A"}))
	require.NoError(t, service.Create(ctx, &entities.Session{TrainerID: 1, Date: "2026-06-03", Time: "09:00", Location: "Hall A"}))
	require.NoError(t, service.Create(ctx, &entities.Session{TrainerID: 2, Date: "2026-06-09", Time: "17:00", Location: "Studio 2"}))

	t.Run("filters by inclusive date range", func(t *testing.T) {
		sessions, err := service.ListAvailable(ctx, "2026-06-01", "2026-06-07")
		require.NoError(t, err)
		assert.Len(t, sessions, 2)
	})

	t.Run("missing bounds fall back to the full table", func(t *testing.T) {
		sessions, err := service.ListAvailable(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, sessions, 3)
	})

	t.Run("one missing bound also falls back", func(t *testing.T) {
		sessions, err := service.ListAvailable(ctx, "2026-06-01", "")
		require.NoError(t, err)
		assert.Len(t, sessions, 3)
	})

	t.Run("malformed bound is a validation error", func(t *testing.T) {
		_, err := service.ListAvailable(ctx, "01/06/2026", "2026-06-07")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	})
}

func TestSessionService_Create(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	service := services.NewSessionService(database.NewSessionAdapter(client))

	t.Run("rejects a malformed date", func(t *testing.T) {
		err := service.Create(ctx, &entities.Session{TrainerID: 1, Date: "June 1st", Time: "09:00", Location: "Hall A"})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	})

	t.Run("stores a well formed session", func(t *testing.T) {
		session := &entities.Session{TrainerID: 1, Date: "2026-06-15", Time: "12:00", Location: "Hall B"}
		require.NoError(t, service.Create(ctx, session))
		assert.NotZero(t, session.ID)
	})
}
