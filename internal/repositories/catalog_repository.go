package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/revive-recycling/pickup-platform/internal/models"
	"github.com/revive-recycling/pickup-platform/internal/utils"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetItem(ctx context.Context, categoryID, itemID string) (*models.Category, *models.CatalogItem, error)
}

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepo(db *sql.DB) CatalogRepository {
	return &catalogRepository{DB: db}
}

// ListCategories returns the full rate card in declared order: categories by
// their sort order, items by theirs within each category.
func (r *catalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.name, c.sort_order,
		       i.id, i.name, i.rate, i.unit, i.sort_order
		FROM categories c
		JOIN catalog_items i ON i.category_id = c.id
		ORDER BY c.sort_order, i.sort_order
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var categories []models.Category

	for rows.Next() {
		var (
			category models.Category
			item     models.CatalogItem
		)

		if err := rows.Scan(&category.ID, &category.Name, &category.SortOrder,
			&item.ID, &item.Name, &item.Rate, &item.Unit, &item.SortOrder); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}

		item.CategoryID = category.ID

		if len(categories) == 0 || categories[len(categories)-1].ID != category.ID {
			categories = append(categories, category)
		}

		last := &categories[len(categories)-1]
		last.Items = append(last.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog rows: %w", err)
	}

	return categories, nil
}

func (r *catalogRepository) GetItem(ctx context.Context, categoryID, itemID string) (*models.Category, *models.CatalogItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.name, c.sort_order,
		       i.id, i.name, i.rate, i.unit, i.sort_order
		FROM catalog_items i
		JOIN categories c ON c.id = i.category_id
		WHERE i.category_id = $1 AND i.id = $2
	`

	var (
		category models.Category
		item     models.CatalogItem
	)

	err := r.DB.QueryRowContext(dbCtx, query, categoryID, itemID).
		Scan(&category.ID, &category.Name, &category.SortOrder,
			&item.ID, &item.Name, &item.Rate, &item.Unit, &item.SortOrder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("querying catalog item: %w", err)
	}

	item.CategoryID = category.ID

	return &category, &item, nil
}
