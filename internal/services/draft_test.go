package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cacheMocks "github.com/revive-recycling/pickup-platform/internal/cache/mocks"
	appErrors "github.com/revive-recycling/pickup-platform/internal/errors"
	"github.com/revive-recycling/pickup-platform/internal/models"
	service "github.com/revive-recycling/pickup-platform/internal/services"
	serviceMocks "github.com/revive-recycling/pickup-platform/internal/services/mocks"
)

const testDraftTTL = 72 * time.Hour

func copperItem() *models.CatalogItem {
	return &models.CatalogItem{
		ID:         "copper",
		CategoryID: "metals",
		Name:       "Copper",
		Rate:       decimal.RequireFromString("570"),
		Unit:       models.UnitKg,
	}
}

func laptopItem() *models.CatalogItem {
	return &models.CatalogItem{
		ID:         "laptop",
		CategoryID: "electronics",
		Name:       "Laptop",
		Rate:       decimal.RequireFromString("400"),
		Unit:       models.UnitPiece,
	}
}

func expectDraftLoad(mockStore *cacheMocks.MockCache, key string, stored *models.PickupDraft) {
	mockStore.On("Get", mock.Anything, key, mock.AnythingOfType("*models.PickupDraft")).
		Run(func(args mock.Arguments) {
			if stored != nil {
				*args.Get(2).(*models.PickupDraft) = *stored
			}
		}).
		Return(stored != nil, nil).Once()
}

func TestGetDraft(t *testing.T) {
	ctx := t.Context()
	userID := uuid.New()
	key := "pickup_draft:" + userID.String()

	t.Run("Empty Draft On Cache Miss", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		expectDraftLoad(mockStore, key, nil)

		// Act
		resp, err := draftService.GetDraft(ctx, userID)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, models.DraftStatusEmpty, resp.Status)
		assert.Empty(t, resp.Draft.Items)
		assert.True(t, resp.GrandTotal.IsZero())
	})

	t.Run("Existing Draft Returned With Status And Total", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		stored := &models.PickupDraft{
			Address:    "12 Green Lane",
			PickupDate: "2026-09-05",
			TimeSlot:   "9am - 12pm",
			Items: []models.Selection{
				{ItemID: "copper", Quantity: 2, Rate: decimal.RequireFromString("570"), EstimatedAmount: decimal.RequireFromString("1140")},
			},
		}
		expectDraftLoad(mockStore, key, stored)

		// Act
		resp, err := draftService.GetDraft(ctx, userID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, models.DraftStatusReady, resp.Status)
		assert.Equal(t, userID, resp.Draft.UserID)
		assert.True(t, resp.GrandTotal.Equal(decimal.RequireFromString("1140")))
	})

	t.Run("Store Failure", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		mockStore.On("Get", mock.Anything, key, mock.AnythingOfType("*models.PickupDraft")).
			Return(false, errors.New("connection refused")).Once()

		// Act
		resp, err := draftService.GetDraft(ctx, userID)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
	})
}

func TestAddItem(t *testing.T) {
	ctx := t.Context()
	userID := uuid.New()
	key := "pickup_draft:" + userID.String()

	metals := &models.Category{ID: "metals", Name: "Metals"}
	electronics := &models.Category{ID: "electronics", Name: "Electronics"}

	t.Run("Snapshots Rate And Appends", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		mockCatalog.On("GetItem", ctx, "metals", "copper").Return(metals, copperItem(), nil).Once()
		expectDraftLoad(mockStore, key, nil)
		mockStore.On("Set", mock.Anything, key, mock.AnythingOfType("*models.PickupDraft"), testDraftTTL).Return(nil).Once()

		// Act
		resp, err := draftService.AddItem(ctx, userID, &models.AddSelectionRequest{CategoryID: "metals", ItemID: "copper", Quantity: 2})

		// Assert
		assert.NoError(t, err)
		assert.Len(t, resp.Draft.Items, 1)
		line := resp.Draft.Items[0]
		assert.Equal(t, "Metals", line.CategoryName)
		assert.Equal(t, "Copper", line.ItemName)
		assert.Equal(t, 2, line.Quantity)
		assert.True(t, line.EstimatedAmount.Equal(decimal.RequireFromString("1140")))
		assert.True(t, resp.GrandTotal.Equal(decimal.RequireFromString("1140")))
		assert.Equal(t, models.DraftStatusEditing, resp.Status)
	})

	t.Run("Same Item Twice Stays As Two Lines", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		stored := &models.PickupDraft{
			Items: []models.Selection{
				{CategoryName: "Metals", ItemID: "copper", ItemName: "Copper", Unit: models.UnitKg, Rate: decimal.RequireFromString("570"), Quantity: 2, EstimatedAmount: decimal.RequireFromString("1140")},
			},
		}
		mockCatalog.On("GetItem", ctx, "metals", "copper").Return(metals, copperItem(), nil).Once()
		expectDraftLoad(mockStore, key, stored)
		mockStore.On("Set", mock.Anything, key, mock.AnythingOfType("*models.PickupDraft"), testDraftTTL).Return(nil).Once()

		// Act
		resp, err := draftService.AddItem(ctx, userID, &models.AddSelectionRequest{CategoryID: "metals", ItemID: "copper", Quantity: 3})

		// Assert
		assert.NoError(t, err)
		assert.Len(t, resp.Draft.Items, 2)
		assert.Equal(t, 2, resp.Draft.Items[0].Quantity)
		assert.Equal(t, 3, resp.Draft.Items[1].Quantity)
		assert.True(t, resp.GrandTotal.Equal(decimal.RequireFromString("2850")))
	})

	t.Run("Clamps Piece Quantity To Cap", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		mockCatalog.On("GetItem", ctx, "electronics", "laptop").Return(electronics, laptopItem(), nil).Once()
		expectDraftLoad(mockStore, key, nil)
		mockStore.On("Set", mock.Anything, key, mock.AnythingOfType("*models.PickupDraft"), testDraftTTL).Return(nil).Once()

		// Act
		resp, err := draftService.AddItem(ctx, userID, &models.AddSelectionRequest{CategoryID: "electronics", ItemID: "laptop", Quantity: 50})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 20, resp.Draft.Items[0].Quantity)
		assert.True(t, resp.Draft.Items[0].EstimatedAmount.Equal(decimal.RequireFromString("8000")))
	})

	t.Run("Unknown Item", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		mockCatalog.On("GetItem", ctx, "metals", "unobtainium").
			Return(nil, nil, appErrors.NotFoundError("Catalog item not found")).Once()

		// Act
		resp, err := draftService.AddItem(ctx, userID, &models.AddSelectionRequest{CategoryID: "metals", ItemID: "unobtainium", Quantity: 1})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := t.Context()
	userID := uuid.New()
	key := "pickup_draft:" + userID.String()

	twoLines := func() *models.PickupDraft {
		return &models.PickupDraft{
			Items: []models.Selection{
				{ItemID: "copper", Quantity: 2, Rate: decimal.RequireFromString("570"), EstimatedAmount: decimal.RequireFromString("1140")},
				{ItemID: "aluminium", Quantity: 5, Rate: decimal.RequireFromString("140"), EstimatedAmount: decimal.RequireFromString("700")},
			},
		}
	}

	t.Run("Removes Line At Index", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		expectDraftLoad(mockStore, key, twoLines())
		mockStore.On("Set", mock.Anything, key, mock.AnythingOfType("*models.PickupDraft"), testDraftTTL).Return(nil).Once()

		// Act
		resp, err := draftService.RemoveItem(ctx, userID, 0)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, resp.Draft.Items, 1)
		assert.Equal(t, "aluminium", resp.Draft.Items[0].ItemID)
		assert.True(t, resp.GrandTotal.Equal(decimal.RequireFromString("700")))
	})

	t.Run("Out Of Bounds Index Is A No-Op", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		expectDraftLoad(mockStore, key, twoLines())

		// Act
		resp, err := draftService.RemoveItem(ctx, userID, 7)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, resp.Draft.Items, 2)
		mockStore.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Negative Index Is A No-Op", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		expectDraftLoad(mockStore, key, twoLines())

		// Act
		resp, err := draftService.RemoveItem(ctx, userID, -1)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, resp.Draft.Items, 2)
	})
}

func TestUpdateDetails(t *testing.T) {
	ctx := t.Context()
	userID := uuid.New()
	key := "pickup_draft:" + userID.String()

	t.Run("Sets Provided Fields Only", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		stored := &models.PickupDraft{Address: "12 Green Lane", TimeSlot: "9am - 12pm"}
		expectDraftLoad(mockStore, key, stored)
		mockStore.On("Set", mock.Anything, key, mock.AnythingOfType("*models.PickupDraft"), testDraftTTL).Return(nil).Once()

		date := "2026-09-05"

		// Act
		resp, err := draftService.UpdateDetails(ctx, userID, &models.UpdateDraftRequest{PickupDate: &date})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "12 Green Lane", resp.Draft.Address)
		assert.Equal(t, "2026-09-05", resp.Draft.PickupDate)
		assert.Equal(t, "9am - 12pm", resp.Draft.TimeSlot)
	})

	t.Run("Sanitizes Free Text", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		expectDraftLoad(mockStore, key, nil)
		mockStore.On("Set", mock.Anything, key, mock.AnythingOfType("*models.PickupDraft"), testDraftTTL).Return(nil).Once()

		notes := "ring the bell<script>alert(1)</script>"

		// Act
		resp, err := draftService.UpdateDetails(ctx, userID, &models.UpdateDraftRequest{Notes: &notes})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "ring the bell", resp.Draft.Notes)
	})

	t.Run("Save Failure", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		expectDraftLoad(mockStore, key, nil)
		mockStore.On("Set", mock.Anything, key, mock.AnythingOfType("*models.PickupDraft"), testDraftTTL).
			Return(errors.New("connection refused")).Once()

		address := "12 Green Lane"

		// Act
		resp, err := draftService.UpdateDetails(ctx, userID, &models.UpdateDraftRequest{Address: &address})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
	})
}

func TestClearDraft(t *testing.T) {
	ctx := t.Context()
	userID := uuid.New()
	key := "pickup_draft:" + userID.String()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		mockStore.On("Delete", ctx, key).Return(nil).Once()

		// Act
		err := draftService.ClearDraft(ctx, userID)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Store Failure", func(t *testing.T) {
		// Arrange
		mockStore := cacheMocks.NewMockCache(t)
		mockCatalog := serviceMocks.NewMockCatalogService(t)
		draftService := service.NewDraftService(mockStore, mockCatalog, testDraftTTL)

		mockStore.On("Delete", ctx, key).Return(errors.New("connection refused")).Once()

		// Act
		err := draftService.ClearDraft(ctx, userID)

		// Assert
		assert.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
	})
}
