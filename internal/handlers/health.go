package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// catalogSizer reports how many products are loaded
type catalogSizer interface {
	Len() int
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	catalog catalogSizer
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(catalog catalogSizer, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Products  int       `json:"products"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// ServeHTTP handles health check requests. An empty catalog is reported
// as degraded since no product can be priced.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Products:  h.catalog.Len(),
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
	}
	if response.Products == 0 {
		response.Status = "degraded"
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
