package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evelinastr/trainingclub/internal/adapters/database"
	"github.com/evelinastr/trainingclub/internal/domain/entities"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

func TestCommentAdapter_CreateAndList(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	adapter := database.NewCommentAdapter(client)

	t.Run("append then list includes the new comment exactly once", func(t *testing.T) {
		created, err := adapter.Create(ctx, &entities.Comment{ExerciseID: 1, Text: "great for warming up"})
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		assert.Equal(t, int64(1), created.ExerciseID)
		assert.Equal(t, "great for warming up", created.Text)

		comments, err := adapter.ListByExercise(ctx, 1)
		require.NoError(t, err)

		matches := 0
		for _, c := range comments {
			if c.ID == created.ID {
				matches++
			}
		}
		assert.Equal(t, 1, matches)
	})

	t.Run("empty text is accepted", func(t *testing.T) {
		created, err := adapter.Create(ctx, &entities.Comment{ExerciseID: 1, Text: ""})
		require.NoError(t, err)
		assert.Empty(t, created.Text)
	})

	t.Run("listing a commentless exercise returns an empty slice", func(t *testing.T) {
		comments, err := adapter.ListByExercise(ctx, 99)
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})
}

func TestCommentAdapter_Delete(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	adapter := database.NewCommentAdapter(client)

	created, err := adapter.Create(ctx, &entities.Comment{ExerciseID: 2, Text: "keep your back straight"})
	require.NoError(t, err)

	t.Run("mismatched exercise id is not found and leaves the row intact", func(t *testing.T) {
		err := adapter.Delete(ctx, 3, created.ID)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))

		comments, err := adapter.ListByExercise(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("exact pair deletes the row", func(t *testing.T) {
		require.NoError(t, adapter.Delete(ctx, 2, created.ID))

		comments, err := adapter.ListByExercise(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("deleting again is not found", func(t *testing.T) {
		err := adapter.Delete(ctx, 2, created.ID)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
	})
}
