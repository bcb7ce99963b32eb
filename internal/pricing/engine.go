package pricing

import (
	"context"
	"fmt"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/models"
)

// ProductLookup resolves a product id to its catalog record
type ProductLookup interface {
	Get(ctx context.Context, id string) (models.Product, error)
}

// Engine prices products held by an immutable catalog.
// It keeps no mutable state and is safe for concurrent use.
type Engine struct {
	products  ProductLookup
	gridSteps int
}

// Option configures an Engine
type Option func(*Engine)

// WithGridSteps sets the resolution used when a caller passes steps < 1
func WithGridSteps(steps int) Option {
	return func(e *Engine) {
		if steps > 0 {
			e.gridSteps = steps
		}
	}
}

// NewEngine creates an engine over the given catalog
func NewEngine(products ProductLookup, opts ...Option) *Engine {
	e := &Engine{
		products:  products,
		gridSteps: DefaultGridSteps,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GridSteps returns the default optimizer resolution of this engine
func (e *Engine) GridSteps() int {
	return e.gridSteps
}

// RecommendPrice returns the profit-maximizing price for a product.
// steps < 1 uses the engine default. The lookup error is wrapped, so
// callers can match the catalog's not-found sentinel with errors.Is.
func (e *Engine) RecommendPrice(ctx context.Context, productID string, steps int) (models.Recommendation, error) {
	p, err := e.products.Get(ctx, productID)
	if err != nil {
		return models.Recommendation{}, fmt.Errorf("recommend price for %q: %w", productID, err)
	}
	if steps < 1 {
		steps = e.gridSteps
	}
	return Optimize(p, steps), nil
}

// SimulateChange reports expected sales, profit and revenue at price
func (e *Engine) SimulateChange(ctx context.Context, productID string, price float64) (models.Simulation, error) {
	p, err := e.products.Get(ctx, productID)
	if err != nil {
		return models.Simulation{}, fmt.Errorf("simulate price for %q: %w", productID, err)
	}
	return Simulate(p, price), nil
}
