package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/models"
	"github.com/Lixing-Zhang/dynamic-pricing/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PricingHandler exposes the recommendation engine over HTTP
type PricingHandler struct {
	service *service.PricingService
	log     *slog.Logger
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(service *service.PricingService, log *slog.Logger) *PricingHandler {
	return &PricingHandler{
		service: service,
		log:     log,
	}
}

// GetRecommendation handles GET /api/product/{productId}/recommendation
// The optional "steps" query parameter sets the optimizer grid resolution.
func (h *PricingHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	steps := 0
	if raw := r.URL.Query().Get("steps"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.log.Warn("invalid grid steps", "steps", raw)
			WriteError(w, http.StatusBadRequest, "steps must be a positive integer", h.log)
			return
		}
		steps = n
	}

	rec, err := h.service.Recommend(r.Context(), productID, steps)
	if err != nil {
		writeLookupError(w, err, productID, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, models.Quote[models.Recommendation]{
		QuoteID:   uuid.New().String(),
		ProductID: productID,
		Result:    rec,
	}, h.log)
}

// Simulate handles POST /api/product/{productId}/simulate
func (h *PricingHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var req models.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode simulation request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if req.Price == nil {
		WriteError(w, http.StatusBadRequest, "price is required", h.log)
		return
	}

	sim, err := h.service.Simulate(r.Context(), productID, *req.Price)
	if err != nil {
		writeLookupError(w, err, productID, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, models.Quote[models.Simulation]{
		QuoteID:   uuid.New().String(),
		ProductID: productID,
		Result:    sim,
	}, h.log)
	h.log.Info("price simulated", "productId", productID, "price", sim.Price, "expected_profit", sim.ExpectedProfit)
}

// ListRecommendations handles GET /api/recommendations
// Returns a map from product id to recommendation.
func (h *PricingHandler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.RecommendAll(r.Context())
	if err != nil {
		h.log.Error("failed to compute recommendations", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, recs, h.log)
}
