package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/repository"
	"github.com/Lixing-Zhang/dynamic-pricing/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.PricingService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.PricingService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/product
// Returns products with their recommended price. The optional "category"
// query parameter filters the list; "all" or empty disables the filter.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	products, err := h.service.ListProducts(ctx, category)
	if err != nil {
		h.logger.Error("failed to list products", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/product/{productId}
// - 200: product with recommendation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	if productID == "" {
		h.logger.Warn("product ID is required")
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	product, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		writeLookupError(w, err, productID, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// ListCategories handles GET /api/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, categories, h.logger)
}

// writeLookupError maps catalog lookup failures to 404 and anything else to 500
func writeLookupError(w http.ResponseWriter, err error, productID string, logger *slog.Logger) {
	if errors.Is(err, repository.ErrProductNotFound) {
		logger.Info("product not found", "productId", productID)
		WriteError(w, http.StatusNotFound, "Product not found", logger)
		return
	}

	logger.Error("failed to price product", "productId", productID, "error", err)
	WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
}
