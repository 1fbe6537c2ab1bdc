package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/evelinastr/trainingclub/internal/api/handlers"
	"github.com/evelinastr/trainingclub/internal/domain/entities"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) ListByExercise(ctx context.Context, exerciseID int64) ([]*entities.Comment, error) {
	args := m.Called(ctx, exerciseID)
	if comments := args.Get(0); comments != nil {
		return comments.([]*entities.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentService) Append(ctx context.Context, exerciseID int64, text string) (*entities.Comment, error) {
	args := m.Called(ctx, exerciseID, text)
	if comment := args.Get(0); comment != nil {
		return comment.(*entities.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentService) Delete(ctx context.Context, exerciseID, commentID int64) error {
	args := m.Called(ctx, exerciseID, commentID)
	return args.Error(0)
}

func TestCommentHandler_ListComments(t *testing.T) {
	service := new(mockCommentService)
	service.On("ListByExercise", mock.Anything, int64(3)).Return([]*entities.Comment{
		{ID: 1, ExerciseID: 3, Text: "bra övning"},
	}, nil)
	handler := handlers.NewCommentHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/exercises/3/comments", nil)
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()
	handler.ListComments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"comment":"bra övning"`)
	service.AssertExpectations(t)
}

func TestCommentHandler_AppendComment(t *testing.T) {
	t.Run("created with the stored row echoed back", func(t *testing.T) {
		service := new(mockCommentService)
		service.On("Append", mock.Anything, int64(3), "bra övning").
			Return(&entities.Comment{ID: 9, ExerciseID: 3, Text: "bra övning"}, nil)
		handler := handlers.NewCommentHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/api/exercises/3/comments", strings.NewReader(`{"text":"bra övning"}`))
		req.SetPathValue("id", "3")
		rec := httptest.NewRecorder()
		handler.AppendComment(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":9`)
		service.AssertExpectations(t)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		handler := handlers.NewCommentHandler(new(mockCommentService))

		req := httptest.NewRequest(http.MethodPost, "/api/exercises/abc/comments", strings.NewReader(`{"text":"x"}`))
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()
		handler.AppendComment(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCommentHandler_DeleteComment(t *testing.T) {
	t.Run("no content on success", func(t *testing.T) {
		service := new(mockCommentService)
		service.On("Delete", mock.Anything, int64(3), int64(9)).Return(nil)
		handler := handlers.NewCommentHandler(service)

		req := httptest.NewRequest(http.MethodDelete, "/api/exercises/3/comments/9", nil)
		req.SetPathValue("exerciseId", "3")
		req.SetPathValue("commentId", "9")
		rec := httptest.NewRecorder()
		handler.DeleteComment(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		service.AssertExpectations(t)
	})

	t.Run("mismatched pair is not found", func(t *testing.T) {
		service := new(mockCommentService)
		service.On("Delete", mock.Anything, int64(4), int64(9)).Return(apperrors.NewNotFoundError("comment not found"))
		handler := handlers.NewCommentHandler(service)

		req := httptest.NewRequest(http.MethodDelete, "/api/exercises/4/comments/9", nil)
		req.SetPathValue("exerciseId", "4")
		req.SetPathValue("commentId", "9")
		rec := httptest.NewRecorder()
		handler.DeleteComment(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
