package handlers

import (
	"log/slog"
	"net/http"

	"github.com/revive-recycling/pickup-platform/internal/api/middleware"
	"github.com/revive-recycling/pickup-platform/internal/models"
	service "github.com/revive-recycling/pickup-platform/internal/services"
	"github.com/revive-recycling/pickup-platform/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCatalog serves the public price list: categories and items in their
// declared rate-card order.
func (h *CatalogHandler) ListCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			logger.Error("Failed to fetch catalog", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.CatalogResponse{Categories: categories})
	}
}
