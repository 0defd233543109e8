package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/revive-recycling/pickup-platform/internal/api/handlers"
	appErrors "github.com/revive-recycling/pickup-platform/internal/errors"
	"github.com/revive-recycling/pickup-platform/internal/models"
	"github.com/revive-recycling/pickup-platform/internal/services/mocks"
	"github.com/revive-recycling/pickup-platform/internal/testutils"
	"github.com/revive-recycling/pickup-platform/internal/utils/response"
)

func setupPickupTest(t *testing.T) (*mocks.MockPickupService, *handlers.PickupHandler) {
	t.Helper()

	mockPickupService := mocks.NewMockPickupService(t)
	pickupHandler := handlers.NewPickupHandler(mockPickupService)

	return mockPickupService, pickupHandler
}

func scheduledPickup(userID uuid.UUID) *models.Pickup {
	return &models.Pickup{
		ID:         uuid.New(),
		UserID:     userID,
		Address:    "12 Green Lane",
		PickupDate: "2026-09-05",
		TimeSlot:   "9am - 12pm",
		GrandTotal: decimal.RequireFromString("1840"),
		Status:     models.PickupStatusScheduled,
	}
}

func TestSchedulePickupHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockPickupService, pickupHandler := setupPickupTest(t)
		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/pickups", nil, userID, nil)
		recorder := httptest.NewRecorder()

		mockPickupService.On("SchedulePickup", mock.Anything, userID).Return(scheduledPickup(userID), nil).Once()

		// Act
		pickupHandler.SchedulePickup()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("Incomplete Draft Reports Missing Fields", func(t *testing.T) {
		// Arrange
		mockPickupService, pickupHandler := setupPickupTest(t)
		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/pickups", nil, userID, nil)
		recorder := httptest.NewRecorder()

		mockPickupService.On("SchedulePickup", mock.Anything, userID).
			Return(nil, appErrors.ValidationError("Missing required fields").WithDetail("missing: timeSlot, items")).Once()

		// Act
		pickupHandler.SchedulePickup()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "missing: timeSlot, items")
	})

	t.Run("Unauthorized Without Claims", func(t *testing.T) {
		// Arrange
		_, pickupHandler := setupPickupTest(t)
		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/pickups", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		pickupHandler.SchedulePickup()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestGetPickupHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockPickupService, pickupHandler := setupPickupTest(t)
		pickup := scheduledPickup(userID)
		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/pickups/"+pickup.ID.String(), nil, userID, map[string]string{"id": pickup.ID.String()})
		recorder := httptest.NewRecorder()

		mockPickupService.On("GetPickupByID", mock.Anything, pickup.ID).Return(pickup, nil).Once()

		// Act
		pickupHandler.GetPickup()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Forbidden For Another User's Pickup", func(t *testing.T) {
		// Arrange
		mockPickupService, pickupHandler := setupPickupTest(t)
		pickup := scheduledPickup(uuid.New())
		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/pickups/"+pickup.ID.String(), nil, userID, map[string]string{"id": pickup.ID.String()})
		recorder := httptest.NewRecorder()

		mockPickupService.On("GetPickupByID", mock.Anything, pickup.ID).Return(pickup, nil).Once()

		// Act
		pickupHandler.GetPickup()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		// Arrange
		mockPickupService, pickupHandler := setupPickupTest(t)
		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/pickups/not-a-uuid", nil, userID, map[string]string{"id": "not-a-uuid"})
		recorder := httptest.NewRecorder()

		// Act
		pickupHandler.GetPickup()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockPickupService.AssertNotCalled(t, "GetPickupByID", mock.Anything, mock.Anything)
	})
}

func TestListPickupsHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Defaults Pagination", func(t *testing.T) {
		// Arrange
		mockPickupService, pickupHandler := setupPickupTest(t)
		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/pickups", nil, userID, nil)
		recorder := httptest.NewRecorder()

		mockPickupService.On("ListPickupsByUser", mock.Anything, userID, 1, 10).
			Return([]models.Pickup{*scheduledPickup(userID)}, 1, nil).Once()

		// Act
		pickupHandler.ListPickups()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Reads Pagination From Query", func(t *testing.T) {
		// Arrange
		mockPickupService, pickupHandler := setupPickupTest(t)
		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/pickups?page=3&pageSize=5", nil, userID, nil)
		recorder := httptest.NewRecorder()

		mockPickupService.On("ListPickupsByUser", mock.Anything, userID, 3, 5).
			Return([]models.Pickup{}, 11, nil).Once()

		// Act
		pickupHandler.ListPickups()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestCancelPickupHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockPickupService, pickupHandler := setupPickupTest(t)
		pickup := scheduledPickup(userID)
		pickup.Status = models.PickupStatusCancelled
		req := testutils.CreateTestRequestWithContext("PATCH", "/api/v1/pickups/"+pickup.ID.String()+"/cancel", nil, userID, map[string]string{"id": pickup.ID.String()})
		recorder := httptest.NewRecorder()

		mockPickupService.On("CancelPickup", mock.Anything, userID, pickup.ID).Return(pickup, nil).Once()

		// Act
		pickupHandler.CancelPickup()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Already Completed", func(t *testing.T) {
		// Arrange
		mockPickupService, pickupHandler := setupPickupTest(t)
		pickupID := uuid.New()
		req := testutils.CreateTestRequestWithContext("PATCH", "/api/v1/pickups/"+pickupID.String()+"/cancel", nil, userID, map[string]string{"id": pickupID.String()})
		recorder := httptest.NewRecorder()

		mockPickupService.On("CancelPickup", mock.Anything, userID, pickupID).
			Return(nil, appErrors.BadRequestError("Only scheduled pickups can be cancelled")).Once()

		// Act
		pickupHandler.CancelPickup()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
