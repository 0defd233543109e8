package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

func TestListCatalogHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCatalogService := mocks.NewMockCatalogService(t)
		catalogHandler := handlers.NewCatalogHandler(mockCatalogService)
		req := testutils.CreateTestRequestWithoutContext("GET", "/api/v1/catalog", nil, nil)
		recorder := httptest.NewRecorder()

		categories := []models.Category{
			{
				ID:   "metals",
				Name: "Metals",
				Items: []models.CatalogItem{
					{ID: "copper", CategoryID: "metals", Name: "Copper", Rate: decimal.RequireFromString("570"), Unit: models.UnitKg},
				},
			},
		}
		mockCatalogService.On("ListCategories", mock.Anything).Return(categories, nil).Once()

		// Act
		catalogHandler.ListCatalog()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("Catalog Unavailable", func(t *testing.T) {
		// Arrange
		mockCatalogService := mocks.NewMockCatalogService(t)
		catalogHandler := handlers.NewCatalogHandler(mockCatalogService)
		req := testutils.CreateTestRequestWithoutContext("GET", "/api/v1/catalog", nil, nil)
		recorder := httptest.NewRecorder()

		mockCatalogService.On("ListCategories", mock.Anything).
			Return(nil, appErrors.CatalogUnavailableError("Catalog is currently unavailable")).Once()

		// Act
		catalogHandler.ListCatalog()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeCatalogUnavailable, resp.Error.Code)
	})
}
