package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/revive-recycling/pickup-platform/internal/models"
	"github.com/revive-recycling/pickup-platform/internal/utils"
)

type PickupRepository interface {
	CreatePickup(ctx context.Context, pickup *models.Pickup) error
	GetPickupByID(ctx context.Context, id uuid.UUID) (*models.Pickup, error)
	ListPickupsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]models.Pickup, int, error)
	UpdatePickupStatus(ctx context.Context, id uuid.UUID, status models.PickupStatus) (*models.Pickup, error)
}

type pickupRepository struct {
	DB *sql.DB
}

func NewPickupRepo(db *sql.DB) PickupRepository {
	return &pickupRepository{DB: db}
}

// CreatePickup writes the pickup and its items in one transaction. Item rows
// carry an explicit position so the draft's insertion order survives the
// round trip.
func (r *pickupRepository) CreatePickup(ctx context.Context, pickup *models.Pickup) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pickupQuery := `
		INSERT INTO pickups (id, user_id, address, pickup_date, time_slot, notes, grand_total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, pickupQuery,
		pickup.ID, pickup.UserID, pickup.Address, pickup.PickupDate, pickup.TimeSlot,
		pickup.Notes, pickup.GrandTotal, pickup.Status).
		Scan(&pickup.CreatedAt, &pickup.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert pickup: %w", err)
	}

	itemQuery := `
		INSERT INTO pickup_items (pickup_id, position, category_name, item_id, item_name, unit, rate, quantity, estimated_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for i, item := range pickup.Items {
		_, err := tx.ExecContext(dbCtx, itemQuery,
			pickup.ID, i, item.CategoryName, item.ItemID, item.ItemName,
			item.Unit, item.Rate, item.Quantity, item.EstimatedAmount)
		if err != nil {
			return fmt.Errorf("failed to insert pickup item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pickup: %w", err)
	}

	return nil
}

func (r *pickupRepository) GetPickupByID(ctx context.Context, id uuid.UUID) (*models.Pickup, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, address, pickup_date, time_slot, notes, grand_total, status, created_at, updated_at
		FROM pickups
		WHERE id = $1
	`

	pickup := &models.Pickup{}

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&pickup.ID, &pickup.UserID, &pickup.Address, &pickup.PickupDate, &pickup.TimeSlot,
			&pickup.Notes, &pickup.GrandTotal, &pickup.Status, &pickup.CreatedAt, &pickup.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying pickup by id: %w", err)
	}

	items, err := r.listItems(dbCtx, pickup.ID)
	if err != nil {
		return nil, err
	}
	pickup.Items = items

	return pickup, nil
}

// ListPickupsByUser returns the user's pickup history, newest first.
func (r *pickupRepository) ListPickupsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]models.Pickup, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM pickups WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting pickups: %w", err)
	}

	query := `
		SELECT id, user_id, address, pickup_date, time_slot, notes, grand_total, status, created_at, updated_at
		FROM pickups
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("querying pickups: %w", err)
	}
	defer rows.Close()

	var pickups []models.Pickup

	for rows.Next() {
		var pickup models.Pickup

		if err := rows.Scan(&pickup.ID, &pickup.UserID, &pickup.Address, &pickup.PickupDate, &pickup.TimeSlot,
			&pickup.Notes, &pickup.GrandTotal, &pickup.Status, &pickup.CreatedAt, &pickup.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning pickup row: %w", err)
		}

		pickups = append(pickups, pickup)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating pickup rows: %w", err)
	}

	for i := range pickups {
		items, err := r.listItems(dbCtx, pickups[i].ID)
		if err != nil {
			return nil, 0, err
		}
		pickups[i].Items = items
	}

	return pickups, total, nil
}

func (r *pickupRepository) UpdatePickupStatus(ctx context.Context, id uuid.UUID, status models.PickupStatus) (*models.Pickup, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE pickups
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.DB.ExecContext(dbCtx, query, status, time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update pickup status: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return nil, sql.ErrNoRows
	}

	return r.GetPickupByID(ctx, id)
}

func (r *pickupRepository) listItems(ctx context.Context, pickupID uuid.UUID) ([]models.Selection, error) {

	query := `
		SELECT category_name, item_id, item_name, unit, rate, quantity, estimated_amount
		FROM pickup_items
		WHERE pickup_id = $1
		ORDER BY position
	`

	rows, err := r.DB.QueryContext(ctx, query, pickupID)
	if err != nil {
		return nil, fmt.Errorf("querying pickup items: %w", err)
	}
	defer rows.Close()

	var items []models.Selection

	for rows.Next() {
		var item models.Selection

		if err := rows.Scan(&item.CategoryName, &item.ItemID, &item.ItemName, &item.Unit,
			&item.Rate, &item.Quantity, &item.EstimatedAmount); err != nil {
			return nil, fmt.Errorf("scanning pickup item row: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pickup item rows: %w", err)
	}

	return items, nil
}
