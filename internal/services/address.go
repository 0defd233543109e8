package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	appErrors "github.com/revive-recycling/pickup-platform/internal/errors"
	"github.com/revive-recycling/pickup-platform/internal/models"
	repository "github.com/revive-recycling/pickup-platform/internal/repositories"
)

type AddressService interface {
	CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error)
	GetAddressByID(ctx context.Context, userID, id uuid.UUID) (*models.Address, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	UpdateAddress(ctx context.Context, userID, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, userID, id uuid.UUID) error
}

type addressService struct {
	repo      repository.AddressRepository
	sanitizer *bluemonday.Policy
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo, sanitizer: bluemonday.StrictPolicy()}
}

func (s *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error) {

	address := &models.Address{
		ID:          uuid.New(),
		UserID:      userID,
		Label:       req.Label,
		Line1:       s.sanitizer.Sanitize(req.Line1),
		FullAddress: s.sanitizer.Sanitize(req.FullAddress),
	}

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, appErrors.DatabaseError("Failed to create address").WithError(err)
	}

	return address, nil
}

func (s *addressService) GetAddressByID(ctx context.Context, userID, id uuid.UUID) (*models.Address, error) {

	address, err := s.repo.GetAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Address not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to retrieve address").WithError(err)
	}

	if address.UserID != userID {
		return nil, appErrors.ForbiddenError("You don't have permission to access this address")
	}

	return address, nil
}

func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {

	addresses, err := s.repo.ListAddressesByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch addresses").WithError(err)
	}

	return addresses, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, userID, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error) {

	address, err := s.GetAddressByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		address.Label = *req.Label
	}

	if req.Line1 != nil {
		address.Line1 = s.sanitizer.Sanitize(*req.Line1)
	}

	if req.FullAddress != nil {
		address.FullAddress = s.sanitizer.Sanitize(*req.FullAddress)
	}

	if err := s.repo.UpdateAddress(ctx, address); err != nil {
		return nil, appErrors.DatabaseError("Failed to update address").WithError(err)
	}

	return address, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, userID, id uuid.UUID) error {

	if _, err := s.GetAddressByID(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteAddress(ctx, id); err != nil {
		return appErrors.DatabaseError("Failed to delete address").WithError(err)
	}

	return nil
}
