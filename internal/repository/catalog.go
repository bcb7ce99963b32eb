package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/models"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("duplicate product id")
)

// uncategorized is reported for products without a category
const uncategorized = "Other"

// ProductRepository defines read access to the product catalog
type ProductRepository interface {
	All(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// Catalog is an immutable in-memory product table.
// It is built once and only read afterwards, so it needs no locking.
type Catalog struct {
	products map[string]models.Product
	ids      []string
}

// Stats describes the loaded catalog
type Stats struct {
	Products       int `json:"products"`
	Categories     int `json:"categories"`
	TotalInventory int `json:"total_inventory"`
	Degenerate     int `json:"degenerate"`
}

// NewCatalog builds a catalog from product records.
// Records are copied; duplicate ids are rejected.
func NewCatalog(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make(map[string]models.Product, len(products)),
		ids:      make([]string, 0, len(products)),
	}

	for _, p := range products {
		if p.ID == "" {
			return nil, models.ErrMissingID
		}
		if _, exists := c.products[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
		}
		c.products[p.ID] = p
		c.ids = append(c.ids, p.ID)
	}
	sort.Strings(c.ids)

	return c, nil
}

// Get returns a copy of the product record
func (c *Catalog) Get(ctx context.Context, id string) (models.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// All returns every product ordered by id
func (c *Catalog) All(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(c.ids))
	for _, id := range c.ids {
		products = append(products, c.products[id])
	}
	return products, nil
}

// Categories returns the sorted, de-duplicated category names.
// Products without a category are reported under "Other".
func (c *Catalog) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range c.products {
		name := CategoryOf(p)
		if !seen[name] {
			seen[name] = true
			categories = append(categories, name)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// Stats returns summary figures for monitoring
func (c *Catalog) Stats() Stats {
	stats := Stats{Products: len(c.products)}

	categories := make(map[string]bool)
	for _, p := range c.products {
		categories[CategoryOf(p)] = true
		stats.TotalInventory += p.Inventory
		if p.Degenerate() {
			stats.Degenerate++
		}
	}
	stats.Categories = len(categories)

	return stats
}

// CategoryOf returns the display category of a product
func CategoryOf(p models.Product) string {
	if strings.TrimSpace(p.Category) == "" {
		return uncategorized
	}
	return p.Category
}
