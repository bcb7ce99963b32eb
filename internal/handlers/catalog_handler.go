package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/repository"
)

// statsProvider is the interface for catalog statistics
type statsProvider interface {
	Stats() repository.Stats
}

// CatalogHandler serves catalog monitoring data
type CatalogHandler struct {
	catalog statsProvider
	logger  *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog statsProvider, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// GetStats handles GET /api/catalog/stats (for debugging/monitoring)
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.catalog.Stats(), h.logger)
}
