package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/repository"
	"github.com/Lixing-Zhang/dynamic-pricing/pkg/logger"
)

func TestCatalogHandler_GetStats(t *testing.T) {
	catalog := newTestCatalog(t)
	handler := NewCatalogHandler(catalog, logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/stats", nil)
	w := httptest.NewRecorder()

	handler.GetStats(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var stats repository.Stats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if stats.Products != 3 {
		t.Errorf("expected 3 products, got %d", stats.Products)
	}
	if stats.Categories != 2 {
		t.Errorf("expected 2 categories, got %d", stats.Categories)
	}
	if stats.TotalInventory != 710 {
		t.Errorf("expected total inventory 710, got %d", stats.TotalInventory)
	}
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		catalog    *repository.Catalog
		wantStatus string
	}{
		{"loaded catalog", newTestCatalog(t), "healthy"},
		{"empty catalog", emptyCatalog(t), "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.catalog, logger.New("error"))

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %s", ct)
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
			if resp.Products != tt.catalog.Len() {
				t.Errorf("expected %d products, got %d", tt.catalog.Len(), resp.Products)
			}
		})
	}
}

func emptyCatalog(t *testing.T) *repository.Catalog {
	t.Helper()

	c, err := repository.NewCatalog(nil)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}
