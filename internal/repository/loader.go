package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/models"
)

var ErrNoSources = errors.New("no catalog sources provided")

// Loader builds a Catalog from one or more sources
type Loader struct {
	log *slog.Logger
}

// sourceLoadResult holds the result of loading a single source
type sourceLoadResult struct {
	index    int
	products []models.ProductInput
	err      error
}

// NewLoader creates a catalog loader. A nil logger uses slog.Default.
func NewLoader(log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{log: log}
}

// Load reads all sources concurrently and merges them in the order given.
// Any source failure, invalid record or duplicate id aborts the load.
// Records with degenerate numbers are kept and logged.
func (l *Loader) Load(ctx context.Context, sources ...Source) (*Catalog, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	resultChan := make(chan sourceLoadResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(index int, src Source) {
			defer wg.Done()

			products, err := src.Load(ctx)
			resultChan <- sourceLoadResult{
				index:    index,
				products: products,
				err:      err,
			}
		}(i, src)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make([]sourceLoadResult, len(sources))
	for result := range resultChan {
		results[result.index] = result
	}

	var products []models.Product
	for i, result := range results {
		name := sources[i].Name()
		if result.err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, result.err)
		}

		for j, in := range result.products {
			p, err := in.ToProduct()
			if err != nil {
				return nil, fmt.Errorf("%s record %d: %w", name, j, err)
			}
			if p.Degenerate() {
				l.log.Warn("degenerate product loaded",
					"source", name,
					"product_id", p.ID,
					"cost", p.Cost,
					"base_price", p.BasePrice,
					"elasticity", p.Elasticity,
				)
			}
			products = append(products, p)
		}

		l.log.Info("catalog source loaded", "source", name, "products", len(result.products))
	}

	catalog, err := NewCatalog(products)
	if err != nil {
		return nil, err
	}
	return catalog, nil
}
