package service

import (
	"context"
	"strings"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/models"
	"github.com/Lixing-Zhang/dynamic-pricing/internal/repository"
	"golang.org/x/sync/errgroup"
)

// allCategories disables the category filter
const allCategories = "all"

// PricingEngine is the recommendation engine used by the service
type PricingEngine interface {
	RecommendPrice(ctx context.Context, productID string, steps int) (models.Recommendation, error)
	SimulateChange(ctx context.Context, productID string, price float64) (models.Simulation, error)
}

// PricingService pairs catalog records with engine output
type PricingService struct {
	repo    repository.ProductRepository
	engine  PricingEngine
	workers int
}

// NewPricingService creates a new pricing service. workers bounds the number
// of products priced concurrently by bulk operations.
func NewPricingService(repo repository.ProductRepository, engine PricingEngine, workers int) *PricingService {
	if workers < 1 {
		workers = 1
	}
	return &PricingService{
		repo:    repo,
		engine:  engine,
		workers: workers,
	}
}

// ListProducts returns products with their recommendations, ordered by id.
// An empty category or "all" returns every product; otherwise the category
// is matched case-insensitively.
func (s *PricingService) ListProducts(ctx context.Context, category string) ([]models.PricedProduct, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesCategory(p, category) {
			filtered = append(filtered, p)
		}
	}

	priced := make([]models.PricedProduct, len(filtered))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, p := range filtered {
		g.Go(func() error {
			rec, err := s.engine.RecommendPrice(gctx, p.ID, 0)
			if err != nil {
				return err
			}
			priced[i] = models.PricedProduct{Product: p, Recommendation: rec}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return priced, nil
}

// GetProduct returns one product with its recommendation
func (s *PricingService) GetProduct(ctx context.Context, id string) (*models.PricedProduct, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rec, err := s.engine.RecommendPrice(ctx, id, 0)
	if err != nil {
		return nil, err
	}

	return &models.PricedProduct{Product: p, Recommendation: rec}, nil
}

// Recommend returns the recommendation for one product
func (s *PricingService) Recommend(ctx context.Context, id string, steps int) (models.Recommendation, error) {
	return s.engine.RecommendPrice(ctx, id, steps)
}

// Simulate evaluates a candidate price for one product
func (s *PricingService) Simulate(ctx context.Context, id string, price float64) (models.Simulation, error) {
	return s.engine.SimulateChange(ctx, id, price)
}

// RecommendAll prices every product in the catalog, keyed by product id
func (s *PricingService) RecommendAll(ctx context.Context) (map[string]models.Recommendation, error) {
	priced, err := s.ListProducts(ctx, "")
	if err != nil {
		return nil, err
	}

	out := make(map[string]models.Recommendation, len(priced))
	for _, p := range priced {
		out[p.ID] = p.Recommendation
	}
	return out, nil
}

// Categories returns the catalog's category names
func (s *PricingService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func matchesCategory(p models.Product, category string) bool {
	if category == "" || strings.EqualFold(category, allCategories) {
		return true
	}
	return strings.EqualFold(repository.CategoryOf(p), category)
}
