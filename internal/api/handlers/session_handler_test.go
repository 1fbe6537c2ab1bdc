package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/evelinastr/trainingclub/internal/api/handlers"
	"github.com/evelinastr/trainingclub/internal/domain/entities"
	apperrors "github.com/evelinastr/trainingclub/pkg/errors"
)

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) ListAvailable(ctx context.Context, startDate, endDate string) ([]*entities.Session, error) {
	args := m.Called(ctx, startDate, endDate)
	if sessions := args.Get(0); sessions != nil {
		return sessions.([]*entities.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionService) Create(ctx context.Context, session *entities.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func TestSessionHandler_ListSessions(t *testing.T) {
	t.Run("passes the query range through", func(t *testing.T) {
		service := new(mockSessionService)
		service.On("ListAvailable", mock.Anything, "2026-06-01", "2026-06-07").Return([]*entities.Session{
			{ID: 1, TrainerID: 2, Date: "2026-06-03", Time: "10:00", Location: "Hall A"},
		}, nil)
		handler := handlers.NewSessionHandler(service)

		req := httptest.NewRequest(http.MethodGet, "/api/sessions?start_date=2026-06-01&end_date=2026-06-07", nil)
		rec := httptest.NewRecorder()
		handler.ListSessions(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"date":"2026-06-03"`)
		service.AssertExpectations(t)
	})

	t.Run("missing range is passed as empty strings", func(t *testing.T) {
		service := new(mockSessionService)
		service.On("ListAvailable", mock.Anything, "", "").Return([]*entities.Session{}, nil)
		handler := handlers.NewSessionHandler(service)

		req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
		rec := httptest.NewRecorder()
		handler.ListSessions(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		service.AssertExpectations(t)
	})

	t.Run("validation error is a bad request", func(t *testing.T) {
		service := new(mockSessionService)
		service.On("ListAvailable", mock.Anything, "junk", "2026-06-07").
			Return(nil, apperrors.NewValidationError("date must be formatted YYYY-MM-DD"))
		handler := handlers.NewSessionHandler(service)

		req := httptest.NewRequest(http.MethodGet, "/api/sessions?start_date=junk&end_date=2026-06-07", nil)
		rec := httptest.NewRecorder()
		handler.ListSessions(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSessionHandler_CreateSession(t *testing.T) {
	service := new(mockSessionService)
	service.On("Create", mock.Anything, mock.AnythingOfType("*entities.Session")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entities.Session).ID = 12
		}).
		Return(nil)
	handler := handlers.NewSessionHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions",
		strings.NewReader(`{"trainer_id":2,"date":"2026-06-03","time":"10:00","location":"Hall A"}`))
	rec := httptest.NewRecorder()
	handler.CreateSession(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":12`)
	service.AssertExpectations(t)
}
