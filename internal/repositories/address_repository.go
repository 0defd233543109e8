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

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}

type addressRepository struct {
	DB *sql.DB
}

func NewAddressRepo(db *sql.DB) AddressRepository {
	return &addressRepository{DB: db}
}

func (r *addressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO addresses (id, user_id, label, line1, full_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, address.ID, address.UserID, address.Label, address.Line1, address.FullAddress).
		Scan(&address.CreatedAt, &address.UpdatedAt)
}

func (r *addressRepository) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, label, line1, full_address, created_at, updated_at
		FROM addresses
		WHERE id = $1
	`

	address := &models.Address{}

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&address.ID, &address.UserID, &address.Label, &address.Line1, &address.FullAddress, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying address by id: %w", err)
	}

	return address, nil
}

// ListAddressesByUser returns the user's saved addresses, newest first.
func (r *addressRepository) ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, label, line1, full_address, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying addresses: %w", err)
	}
	defer rows.Close()

	var addresses []models.Address

	for rows.Next() {
		var address models.Address

		if err := rows.Scan(&address.ID, &address.UserID, &address.Label, &address.Line1, &address.FullAddress, &address.CreatedAt, &address.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning address row: %w", err)
		}

		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating address rows: %w", err)
	}

	return addresses, nil
}

func (r *addressRepository) UpdateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE addresses
		SET label = $1, line1 = $2, full_address = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.DB.ExecContext(dbCtx, query, address.Label, address.Line1, address.FullAddress, time.Now(), address.ID)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
