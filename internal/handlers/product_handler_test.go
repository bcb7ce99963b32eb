package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/models"
	"github.com/Lixing-Zhang/dynamic-pricing/internal/pricing"
	"github.com/Lixing-Zhang/dynamic-pricing/internal/repository"
	"github.com/Lixing-Zhang/dynamic-pricing/internal/service"
	"github.com/Lixing-Zhang/dynamic-pricing/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func newTestCatalog(t *testing.T) *repository.Catalog {
	t.Helper()

	catalog, err := repository.NewCatalog([]models.Product{
		{ID: "p1", Name: "Wireless Earbuds", Category: "Electronics", Cost: 900, BasePrice: 1499, BaseDemand: 120, Elasticity: 1.8, Inventory: 150},
		{ID: "p2", Name: "Fitness Band", Category: "Electronics", Cost: 1200, BasePrice: 1999, BaseDemand: 80, Elasticity: 1.6, Inventory: 60},
		{ID: "p3", Name: "Cotton T-Shirt", Category: "Clothing", Cost: 180, BasePrice: 399, BaseDemand: 300, Elasticity: 2.2, Inventory: 500},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return catalog
}

func newTestService(t *testing.T) (*service.PricingService, *repository.Catalog) {
	t.Helper()

	catalog := newTestCatalog(t)
	return service.NewPricingService(catalog, pricing.NewEngine(catalog), 2), catalog
}

func TestListProducts(t *testing.T) {
	// Setup
	svc, _ := newTestService(t)
	handler := NewProductHandler(svc, logger.New("error"))

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"all products", "", 3},
		{"all keyword", "?category=all", 3},
		{"electronics", "?category=Electronics", 2},
		{"case insensitive", "?category=clothing", 1},
		{"unknown category", "?category=Garden", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/product"+tc.query, nil)
			w := httptest.NewRecorder()

			handler.ListProducts(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var products []models.PricedProduct
			if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(products) != tc.want {
				t.Errorf("expected %d products, got %d", tc.want, len(products))
			}
			for _, p := range products {
				if p.RecommendedPrice <= p.Cost {
					t.Errorf("%s: recommended price %v should exceed cost %v", p.ID, p.RecommendedPrice, p.Cost)
				}
			}
		})
	}
}

func TestGetProduct_Success(t *testing.T) {
	// Setup
	svc, _ := newTestService(t)
	handler := NewProductHandler(svc, logger.New("error"))

	// Create router to handle URL params
	r := chi.NewRouter()
	r.Get("/api/product/{productId}", handler.GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/product/p1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body["id"] != "p1" {
		t.Errorf("expected product ID p1, got %v", body["id"])
	}
	if body["name"] != "Wireless Earbuds" {
		t.Errorf("expected product name 'Wireless Earbuds', got %v", body["name"])
	}
	for _, field := range []string{"recommended_price", "expected_profit", "expected_sales", "expected_revenue", "margin", "competitor_price"} {
		if _, ok := body[field]; !ok {
			t.Errorf("expected field %q in response", field)
		}
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	// Setup
	svc, _ := newTestService(t)
	handler := NewProductHandler(svc, logger.New("error"))

	r := chi.NewRouter()
	r.Get("/api/product/{productId}", handler.GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/product/999", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if response["error"] != "Product not found" {
		t.Errorf("expected error message 'Product not found', got %s", response["error"])
	}
}

func TestGetProduct_MissingID(t *testing.T) {
	svc, _ := newTestService(t)
	handler := NewProductHandler(svc, logger.New("error"))

	// no chi route context, so the URL param is empty
	req := httptest.NewRequest(http.MethodGet, "/api/product/", nil)
	w := httptest.NewRecorder()

	handler.GetProduct(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestListCategories(t *testing.T) {
	svc, _ := newTestService(t)
	handler := NewProductHandler(svc, logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()

	handler.ListCategories(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var categories []string
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(categories) != 2 || categories[0] != "Clothing" || categories[1] != "Electronics" {
		t.Errorf("unexpected categories %v", categories)
	}
}
