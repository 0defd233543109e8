package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/revive-recycling/pickup-platform/internal/cache"
	appErrors "github.com/revive-recycling/pickup-platform/internal/errors"
	"github.com/revive-recycling/pickup-platform/internal/estimate"
	"github.com/revive-recycling/pickup-platform/internal/models"
)

// DraftService owns the session-scoped scheduling draft: the form fields and
// the ordered selection list. The draft lives in redis under one per-user key
// so it survives page reloads, and is dropped once the pickup is submitted.
type DraftService interface {
	GetDraft(ctx context.Context, userID uuid.UUID) (*models.DraftResponse, error)
	UpdateDetails(ctx context.Context, userID uuid.UUID, req *models.UpdateDraftRequest) (*models.DraftResponse, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *models.AddSelectionRequest) (*models.DraftResponse, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, index int) (*models.DraftResponse, error)
	ClearDraft(ctx context.Context, userID uuid.UUID) error
}

type draftService struct {
	store     cache.Cache
	catalog   CatalogService
	draftTTL  time.Duration
	sanitizer *bluemonday.Policy
}

func NewDraftService(store cache.Cache, catalog CatalogService, draftTTL time.Duration) DraftService {
	return &draftService{
		store:     store,
		catalog:   catalog,
		draftTTL:  draftTTL,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *draftService) GetDraft(ctx context.Context, userID uuid.UUID) (*models.DraftResponse, error) {

	draft, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return draftResponse(draft), nil
}

func (s *draftService) UpdateDetails(ctx context.Context, userID uuid.UUID, req *models.UpdateDraftRequest) (*models.DraftResponse, error) {

	draft, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Address != nil {
		draft.Address = s.sanitizer.Sanitize(*req.Address)
	}

	if req.PickupDate != nil {
		draft.PickupDate = *req.PickupDate
	}

	if req.TimeSlot != nil {
		draft.TimeSlot = *req.TimeSlot
	}

	if req.Notes != nil {
		draft.Notes = s.sanitizer.Sanitize(*req.Notes)
	}

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}

	return draftResponse(draft), nil
}

// AddItem snapshots the item's current catalog rate into a new selection and
// appends it. Adding the same item twice produces two line entries; nothing
// is merged.
func (s *draftService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddSelectionRequest) (*models.DraftResponse, error) {

	category, item, err := s.catalog.GetItem(ctx, req.CategoryID, req.ItemID)
	if err != nil {
		return nil, err
	}

	draft, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	selection := estimate.NewSelection(category.Name, *item, req.Quantity)
	draft.Items = append(draft.Items, selection)

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}

	return draftResponse(draft), nil
}

// RemoveItem deletes the selection at the given position. An out-of-bounds
// index is a no-op; deletion races from double-clicks are normal in an
// interactive flow and must not surface as errors.
func (s *draftService) RemoveItem(ctx context.Context, userID uuid.UUID, index int) (*models.DraftResponse, error) {

	draft, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(draft.Items) {
		return draftResponse(draft), nil
	}

	draft.Items = append(draft.Items[:index], draft.Items[index+1:]...)

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}

	return draftResponse(draft), nil
}

func (s *draftService) ClearDraft(ctx context.Context, userID uuid.UUID) error {

	if err := s.store.Delete(ctx, draftKey(userID)); err != nil {
		return appErrors.ThirdPartyError("Failed to clear draft").WithError(err)
	}

	return nil
}

func (s *draftService) load(ctx context.Context, userID uuid.UUID) (*models.PickupDraft, error) {

	draft := &models.PickupDraft{}

	found, err := s.store.Get(ctx, draftKey(userID), draft)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Draft store is unavailable").WithError(err)
	}

	if !found {
		return &models.PickupDraft{UserID: userID}, nil
	}

	draft.UserID = userID

	return draft, nil
}

func (s *draftService) save(ctx context.Context, draft *models.PickupDraft) error {

	draft.UpdatedAt = time.Now()

	if err := s.store.Set(ctx, draftKey(draft.UserID), draft, s.draftTTL); err != nil {
		return appErrors.ThirdPartyError("Failed to save draft").WithError(err)
	}

	return nil
}

func draftKey(userID uuid.UUID) string {
	return cache.Key(cache.DraftKeyPrefix, userID.String())
}

func draftResponse(draft *models.PickupDraft) *models.DraftResponse {
	return &models.DraftResponse{
		Draft:      draft,
		Status:     draft.Status(),
		GrandTotal: estimate.GrandTotal(draft.Items),
	}
}
