package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/revive-recycling/pickup-platform/internal/api/middleware"
	"github.com/revive-recycling/pickup-platform/internal/errors"
	"github.com/revive-recycling/pickup-platform/internal/models"
	service "github.com/revive-recycling/pickup-platform/internal/services"
	"github.com/revive-recycling/pickup-platform/internal/utils"
	"github.com/revive-recycling/pickup-platform/internal/utils/response"
)

type AddressHandler struct {
	addressService service.AddressService
	validator      *validator.Validate
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService, validator: validator.New()}
}

func (h *AddressHandler) CreateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized address creation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create address input")
			return
		}

		address, err := h.addressService.CreateAddress(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address created", slog.String("addressId", address.ID.String()))
		response.Success(w, http.StatusCreated, address)
	}
}

func (h *AddressHandler) GetAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized address access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid address id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		address, err := h.addressService.GetAddressByID(r.Context(), claims.UserID, id)
		if err != nil {
			logger.Error("Failed to get address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

func (h *AddressHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized address list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		addresses, err := h.addressService.ListAddresses(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list addresses", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

func (h *AddressHandler) UpdateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized address update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid address id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		var req models.UpdateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update address input")
			return
		}

		address, err := h.addressService.UpdateAddress(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Error("Failed to update address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address updated", slog.String("addressId", address.ID.String()))
		response.Success(w, http.StatusOK, address)
	}
}

func (h *AddressHandler) DeleteAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized address delete attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid address id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if err := h.addressService.DeleteAddress(r.Context(), claims.UserID, id); err != nil {
			logger.Error("Failed to delete address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address deleted", slog.String("addressId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}
