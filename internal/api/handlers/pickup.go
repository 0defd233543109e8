package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/revive-recycling/pickup-platform/internal/api/middleware"
	"github.com/revive-recycling/pickup-platform/internal/errors"
	"github.com/revive-recycling/pickup-platform/internal/models"
	service "github.com/revive-recycling/pickup-platform/internal/services"
	"github.com/revive-recycling/pickup-platform/internal/utils"
	"github.com/revive-recycling/pickup-platform/internal/utils/response"
)

type PickupHandler struct {
	pickupService service.PickupService
}

func NewPickupHandler(pickupService service.PickupService) *PickupHandler {
	return &PickupHandler{pickupService: pickupService}
}

// SchedulePickup submits the authenticated user's current draft as a pickup
// request.
func (h *PickupHandler) SchedulePickup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized pickup scheduling attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		pickup, err := h.pickupService.SchedulePickup(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to schedule pickup", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Pickup scheduled", slog.String("pickupId", pickup.ID.String()))
		response.Success(w, http.StatusCreated, pickup)
	}
}

func (h *PickupHandler) GetPickup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized pickup access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid pickup id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		pickup, err := h.pickupService.GetPickupByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get pickup", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if pickup.UserID != claims.UserID {
			logger.Warn("Attempted to access another user's pickup",
				slog.String("requesterId", claims.UserID.String()),
				slog.String("ownerId", pickup.UserID.String()))
			response.Error(w, errors.ForbiddenError("You don't have permission to access this pickup"))
			return
		}

		response.Success(w, http.StatusOK, pickup)
	}
}

// ListPickups serves the user's pickup history, newest first.
func (h *PickupHandler) ListPickups() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized pickup list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 10
		}

		pickups, total, err := h.pickupService.ListPickupsByUser(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list pickups", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     pickups,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

func (h *PickupHandler) CancelPickup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized pickup cancel attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid pickup id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		pickup, err := h.pickupService.CancelPickup(r.Context(), claims.UserID, id)
		if err != nil {
			logger.Error("Failed to cancel pickup", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Pickup cancelled", slog.String("pickupId", pickup.ID.String()))
		response.Success(w, http.StatusOK, pickup)
	}
}
