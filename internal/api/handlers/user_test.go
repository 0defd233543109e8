package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/revive-recycling/pickup-platform/internal/api/handlers"
	appErrors "github.com/revive-recycling/pickup-platform/internal/errors"
	"github.com/revive-recycling/pickup-platform/internal/models"
	"github.com/revive-recycling/pickup-platform/internal/services/mocks"
	"github.com/revive-recycling/pickup-platform/internal/testutils"
	"github.com/revive-recycling/pickup-platform/internal/utils/response"
)

func setupUserTest(t *testing.T) (*mocks.MockUserService, *handlers.UserHandler) {
	t.Helper()

	mockUserService := mocks.NewMockUserService(t)
	userHandler := handlers.NewUserHandler(mockUserService)

	return mockUserService, userHandler
}

func TestRegisterHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockUserService, userHandler := setupUserTest(t)
		body, _ := json.Marshal(models.RegisterRequest{
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: "s3cure-pass",
		})
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/users/register", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		created := &models.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com"}
		mockUserService.On("Register", mock.Anything, mock.AnythingOfType("*models.RegisterRequest")).Return(created, nil).Once()

		// Act
		userHandler.Register()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("Invalid Email Rejected", func(t *testing.T) {
		// Arrange
		mockUserService, userHandler := setupUserTest(t)
		body, _ := json.Marshal(models.RegisterRequest{
			Name:     "Asha",
			Email:    "not-an-email",
			Password: "s3cure-pass",
		})
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/users/register", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		userHandler.Register()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockUserService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		// Arrange
		mockUserService, userHandler := setupUserTest(t)
		body, _ := json.Marshal(models.RegisterRequest{
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: "s3cure-pass",
		})
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/users/register", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		mockUserService.On("Register", mock.Anything, mock.AnythingOfType("*models.RegisterRequest")).
			Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		// Act
		userHandler.Register()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, resp.Error.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	loginBody := func() []byte {
		body, _ := json.Marshal(models.LoginRequest{Email: "asha@example.com", Password: "s3cure-pass"})

		return body
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockUserService, userHandler := setupUserTest(t)
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/users/login", bytes.NewBuffer(loginBody()), nil)
		recorder := httptest.NewRecorder()

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Success: true, Token: "token", ExpiresIn: 86400}, nil).Once()

		// Act
		userHandler.Login()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp models.LoginResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("Wrong Credentials", func(t *testing.T) {
		// Arrange
		mockUserService, userHandler := setupUserTest(t)
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/users/login", bytes.NewBuffer(loginBody()), nil)
		recorder := httptest.NewRecorder()

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Success: false, Message: "Invalid email or password", RemainingTries: 3}, nil).Once()

		// Act
		userHandler.Login()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Rate Limited", func(t *testing.T) {
		// Arrange
		mockUserService, userHandler := setupUserTest(t)
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/users/login", bytes.NewBuffer(loginBody()), nil)
		recorder := httptest.NewRecorder()

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Success: false, RetryAfter: 120}, nil).Once()

		// Act
		userHandler.Login()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	})
}

func TestProfileHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockUserService, userHandler := setupUserTest(t)
		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/users/profile", nil, userID, nil)
		recorder := httptest.NewRecorder()

		user := &models.User{ID: userID, Name: "Asha", Email: "asha@example.com"}
		mockUserService.On("GetUserByID", mock.Anything, userID).Return(user, nil).Once()

		// Act
		userHandler.Profile()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Unauthorized Without Claims", func(t *testing.T) {
		// Arrange
		_, userHandler := setupUserTest(t)
		req := testutils.CreateTestRequestWithoutContext("GET", "/api/v1/users/profile", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		userHandler.Profile()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
