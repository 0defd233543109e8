package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/revive-recycling/pickup-platform/internal/api/middleware"
	"github.com/revive-recycling/pickup-platform/internal/errors"
	"github.com/revive-recycling/pickup-platform/internal/models"
	service "github.com/revive-recycling/pickup-platform/internal/services"
	"github.com/revive-recycling/pickup-platform/internal/utils"
	"github.com/revive-recycling/pickup-platform/internal/utils/response"
)

type DraftHandler struct {
	draftService service.DraftService
	validator    *validator.Validate
}

func NewDraftHandler(draftService service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService, validator: validator.New()}
}

func (h *DraftHandler) GetDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized draft access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		draft, err := h.draftService.GetDraft(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to get draft", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, draft)
	}
}

func (h *DraftHandler) UpdateDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized draft update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.UpdateDraftRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid draft details input")
			return
		}

		draft, err := h.draftService.UpdateDetails(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to update draft", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, draft)
	}
}

func (h *DraftHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized draft item add attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.AddSelectionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		draft, err := h.draftService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to add item to draft", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to draft",
			slog.String("categoryId", req.CategoryID), slog.String("itemId", req.ItemID))
		response.Success(w, http.StatusOK, draft)
	}
}

func (h *DraftHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized draft item removal attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		index, err := strconv.Atoi(r.PathValue("index"))
		if err != nil {
			logger.Warn("Invalid item index", slog.String("index", r.PathValue("index")))
			response.Error(w, errors.BadRequestError("Invalid item index"))
			return
		}

		draft, err := h.draftService.RemoveItem(r.Context(), claims.UserID, index)
		if err != nil {
			logger.Error("Failed to remove item from draft", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, draft)
	}
}

func (h *DraftHandler) ClearDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized draft clear attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if err := h.draftService.ClearDraft(r.Context(), claims.UserID); err != nil {
			logger.Error("Failed to clear draft", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Draft cleared")
		response.Success(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}
