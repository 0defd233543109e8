package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/revive-recycling/pickup-platform/internal/cache"
	appErrors "github.com/revive-recycling/pickup-platform/internal/errors"
	"github.com/revive-recycling/pickup-platform/internal/models"
	repository "github.com/revive-recycling/pickup-platform/internal/repositories"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetItem(ctx context.Context, categoryID, itemID string) (*models.Category, *models.CatalogItem, error)
}

type catalogService struct {
	repo       repository.CatalogRepository
	cache      cache.Cache
	catalogTTL time.Duration
}

func NewCatalogService(repo repository.CatalogRepository, cacheStore cache.Cache, catalogTTL time.Duration) CatalogService {
	return &catalogService{repo: repo, cache: cacheStore, catalogTTL: catalogTTL}
}

// ListCategories serves the rate card, read-through cached. Staleness within
// the TTL is acceptable; selections snapshot their rate anyway.
func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {

	cacheKey := cache.Key(cache.CatalogKeyPrefix, "categories")

	var cached []models.Category

	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		slog.Warn("Catalog cache read failed", slog.Any("error", err))
	}

	if found {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.CatalogUnavailableError("Catalog is currently unavailable").WithError(err)
	}

	if err := s.cache.Set(ctx, cacheKey, categories, s.catalogTTL); err != nil {
		slog.Warn("Catalog cache write failed", slog.Any("error", err))
	}

	return categories, nil
}

func (s *catalogService) GetItem(ctx context.Context, categoryID, itemID string) (*models.Category, *models.CatalogItem, error) {

	category, item, err := s.repo.GetItem(ctx, categoryID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.NotFoundError("Catalog item not found").WithError(err)
		}
		return nil, nil, appErrors.CatalogUnavailableError("Catalog is currently unavailable").WithError(err)
	}

	return category, item, nil
}
