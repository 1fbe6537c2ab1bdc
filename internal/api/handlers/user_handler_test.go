package handlers_test

import (
	"context"
	"encoding/json"
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

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, reg *entities.Registration) (int64, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, creds *entities.Credentials) (*entities.User, error) {
	args := m.Called(ctx, creds)
	if user := args.Get(0); user != nil {
		return user.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		service := new(mockUserService)
		service.On("Register", mock.Anything, mock.AnythingOfType("*entities.Registration")).Return(int64(7), nil)
		handler := handlers.NewUserHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/api/users/register",
			strings.NewReader(`{"firstName":"Anna","lastName":"Ek","email":"anna@example.com","phone":"0701","password":"hemligt"}`))
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(7), body["id"])
		assert.Equal(t, "Användare registrerad.", body["message"])
		service.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service := new(mockUserService)
		service.On("Register", mock.Anything, mock.Anything).Return(int64(0), apperrors.NewConflictError("user exists"))
		handler := handlers.NewUserHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/api/users/register",
			strings.NewReader(`{"email":"anna@example.com","password":"hemligt"}`))
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Användare med angiven e-postadress finns redan.", decodeBody(t, rec)["message"])
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := handlers.NewUserHandler(new(mockUserService))

		req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader("not json"))
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	login := func(service handlers.UserService) *httptest.ResponseRecorder {
		handler := handlers.NewUserHandler(service)
		req := httptest.NewRequest(http.MethodPost, "/api/users/login",
			strings.NewReader(`{"email":"anna@example.com","password":"hemligt"}`))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)
		return rec
	}

	t.Run("success", func(t *testing.T) {
		service := new(mockUserService)
		service.On("Login", mock.Anything, mock.Anything).Return(&entities.User{ID: 7, Email: "anna@example.com"}, nil)

		rec := login(service)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Du är inloggad!", decodeBody(t, rec)["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		service := new(mockUserService)
		service.On("Login", mock.Anything, mock.Anything).Return(nil, apperrors.NewNotFoundError("user not found"))

		rec := login(service)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Användaren finns inte.", decodeBody(t, rec)["message"])
	})

	t.Run("wrong password", func(t *testing.T) {
		service := new(mockUserService)
		service.On("Login", mock.Anything, mock.Anything).Return(nil, apperrors.NewUnauthorizedError("wrong password"))

		rec := login(service)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Felaktigt lösenord.", decodeBody(t, rec)["message"])
	})

	t.Run("store failure", func(t *testing.T) {
		service := new(mockUserService)
		service.On("Login", mock.Anything, mock.Anything).Return(nil, apperrors.NewInternalError("db down", nil))

		rec := login(service)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Inloggningen misslyckades.", decodeBody(t, rec)["message"])
	})
}
