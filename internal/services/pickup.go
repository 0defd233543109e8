package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/revive-recycling/pickup-platform/internal/errors"
	"github.com/revive-recycling/pickup-platform/internal/estimate"
	"github.com/revive-recycling/pickup-platform/internal/metrics"
	"github.com/revive-recycling/pickup-platform/internal/models"
	repository "github.com/revive-recycling/pickup-platform/internal/repositories"
	"github.com/revive-recycling/pickup-platform/pkg/sendgrid"
)

type PickupService interface {
	SchedulePickup(ctx context.Context, userID uuid.UUID) (*models.Pickup, error)
	GetPickupByID(ctx context.Context, id uuid.UUID) (*models.Pickup, error)
	ListPickupsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]models.Pickup, int, error)
	CancelPickup(ctx context.Context, userID, id uuid.UUID) (*models.Pickup, error)
}

type pickupService struct {
	pickupRepo repository.PickupRepository
	userRepo   repository.UserRepository
	drafts     DraftService
	emails     sendgrid.EmailService
}

func NewPickupService(pickupRepo repository.PickupRepository, userRepo repository.UserRepository, drafts DraftService, emails sendgrid.EmailService) PickupService {
	return &pickupService{
		pickupRepo: pickupRepo,
		userRepo:   userRepo,
		drafts:     drafts,
		emails:     emails,
	}
}

// SchedulePickup assembles the user's draft into a pickup submission and
// persists it. The draft is validated as a whole, persisted atomically, and
// only cleared after the write succeeds, so a failed submission leaves
// everything in place for a retry.
func (s *pickupService) SchedulePickup(ctx context.Context, userID uuid.UUID) (*models.Pickup, error) {

	draftResp, err := s.drafts.GetDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft := draftResp.Draft

	if missing := missingFields(draft); len(missing) > 0 {
		return nil, appErrors.ValidationError("Missing required fields").
			WithDetail("missing: " + strings.Join(missing, ", "))
	}

	pickup := &models.Pickup{
		ID:         uuid.New(),
		UserID:     userID,
		Address:    draft.Address,
		PickupDate: draft.PickupDate,
		TimeSlot:   draft.TimeSlot,
		Notes:      draft.Notes,
		Items:      draft.Items,
		GrandTotal: estimate.GrandTotal(draft.Items),
		Status:     models.PickupStatusScheduled,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.pickupRepo.CreatePickup(ctx, pickup); err != nil {
		return nil, appErrors.DatabaseError("Failed to save pickup").WithError(err)
	}

	metrics.PickupScheduled()

	// The pickup is durable; a stale draft key only means the next session
	// starts pre-filled, so log and move on.
	if err := s.drafts.ClearDraft(ctx, userID); err != nil {
		slog.Warn("Failed to clear draft after submission",
			slog.String("userId", userID.String()), slog.Any("error", err))
	}

	s.sendConfirmation(ctx, pickup)

	return pickup, nil
}

func (s *pickupService) GetPickupByID(ctx context.Context, id uuid.UUID) (*models.Pickup, error) {

	pickup, err := s.pickupRepo.GetPickupByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Pickup not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to retrieve pickup").WithError(err)
	}

	return pickup, nil
}

func (s *pickupService) ListPickupsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]models.Pickup, int, error) {

	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	pickups, total, err := s.pickupRepo.ListPickupsByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch pickups").WithError(err)
	}

	return pickups, total, nil
}

func (s *pickupService) CancelPickup(ctx context.Context, userID, id uuid.UUID) (*models.Pickup, error) {

	pickup, err := s.GetPickupByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if pickup.UserID != userID {
		return nil, appErrors.ForbiddenError("You don't have permission to cancel this pickup")
	}

	if pickup.Status != models.PickupStatusScheduled {
		return nil, appErrors.BadRequestError("Only scheduled pickups can be cancelled")
	}

	updated, err := s.pickupRepo.UpdatePickupStatus(ctx, id, models.PickupStatusCancelled)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to cancel pickup").WithError(err)
	}

	return updated, nil
}

func missingFields(draft *models.PickupDraft) []string {

	var missing []string

	if draft.Address == "" {
		missing = append(missing, "address")
	}

	if draft.PickupDate == "" {
		missing = append(missing, "pickupDate")
	}

	if draft.TimeSlot == "" {
		missing = append(missing, "timeSlot")
	}

	if len(draft.Items) == 0 {
		missing = append(missing, "items")
	}

	return missing
}

// sendConfirmation emails the pickup summary. Delivery failure never fails
// the submission.
func (s *pickupService) sendConfirmation(ctx context.Context, pickup *models.Pickup) {

	user, err := s.userRepo.GetUserByID(ctx, pickup.UserID)
	if err != nil {
		slog.Warn("Failed to load user for confirmation email",
			slog.String("userId", pickup.UserID.String()), slog.Any("error", err))
		return
	}

	if err := s.emails.SendPickupConfirmation(ctx, user.Email, user.Name, pickup); err != nil {
		slog.Warn("Failed to send pickup confirmation email",
			slog.String("pickupId", pickup.ID.String()), slog.Any("error", err))
	}
}
