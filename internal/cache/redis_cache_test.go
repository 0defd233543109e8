package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revive-recycling/pickup-platform/internal/cache"
	"github.com/revive-recycling/pickup-platform/internal/config"
	"github.com/revive-recycling/pickup-platform/internal/models"
)

func setupCacheTest(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	t.Cleanup(func() {
		client.Close()
	})

	cfg := &config.CacheConfig{
		DefaultTTL: 5 * time.Minute,
		CatalogTTL: 10 * time.Minute,
		DraftTTL:   72 * time.Hour,
	}

	return cache.NewRedisCache(client, cfg), mock
}

func TestRedisCache(t *testing.T) {
	ctx := t.Context()

	userID := uuid.New()
	key := cache.Key(cache.DraftKeyPrefix, userID.String())

	draft := &models.PickupDraft{
		UserID:     userID,
		Address:    "12 Green Lane",
		PickupDate: "2026-09-05",
		TimeSlot:   "9am - 12pm",
		Items: []models.Selection{
			{CategoryName: "Metals", ItemID: "copper", ItemName: "Copper", Unit: models.UnitKg, Rate: decimal.RequireFromString("570"), Quantity: 2, EstimatedAmount: decimal.RequireFromString("1140")},
		},
	}

	t.Run("Get", func(t *testing.T) {
		t.Run("Hit Round-Trips The Draft", func(t *testing.T) {
			// Arrange
			cacheStore, mock := setupCacheTest(t)

			data, err := json.Marshal(draft)
			require.NoError(t, err)
			mock.ExpectGet(key).SetVal(string(data))

			// Act
			got := &models.PickupDraft{}
			found, err := cacheStore.Get(ctx, key, got)

			// Assert
			assert.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, draft.Address, got.Address)
			require.Len(t, got.Items, 1)
			assert.True(t, got.Items[0].Rate.Equal(decimal.RequireFromString("570")))
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Miss Is Not An Error", func(t *testing.T) {
			// Arrange
			cacheStore, mock := setupCacheTest(t)

			mock.ExpectGet(key).RedisNil()

			// Act
			got := &models.PickupDraft{}
			found, err := cacheStore.Get(ctx, key, got)

			// Assert
			assert.NoError(t, err)
			assert.False(t, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Connection Failure", func(t *testing.T) {
			// Arrange
			cacheStore, mock := setupCacheTest(t)

			mock.ExpectGet(key).SetErr(errors.New("connection refused"))

			// Act
			got := &models.PickupDraft{}
			found, err := cacheStore.Get(ctx, key, got)

			// Assert
			assert.Error(t, err)
			assert.False(t, found)
		})
	})

	t.Run("Set", func(t *testing.T) {
		t.Run("Uses Given TTL", func(t *testing.T) {
			// Arrange
			cacheStore, mock := setupCacheTest(t)

			data, err := json.Marshal(draft)
			require.NoError(t, err)
			mock.ExpectSet(key, data, 72*time.Hour).SetVal("OK")

			// Act
			err = cacheStore.Set(ctx, key, draft, 72*time.Hour)

			// Assert
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Zero TTL Falls Back To Default", func(t *testing.T) {
			// Arrange
			cacheStore, mock := setupCacheTest(t)

			data, err := json.Marshal(draft)
			require.NoError(t, err)
			mock.ExpectSet(key, data, 5*time.Minute).SetVal("OK")

			// Act
			err = cacheStore.Set(ctx, key, draft, 0)

			// Assert
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			cacheStore, mock := setupCacheTest(t)

			mock.ExpectDel(key).SetVal(1)

			// Act
			err := cacheStore.Delete(ctx, key)

			// Assert
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Connection Failure", func(t *testing.T) {
			// Arrange
			cacheStore, mock := setupCacheTest(t)

			mock.ExpectDel(key).SetErr(errors.New("connection refused"))

			// Act
			err := cacheStore.Delete(ctx, key)

			// Assert
			assert.Error(t, err)
		})
	})
}
