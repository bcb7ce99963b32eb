package models

import "errors"

var (
	ErrMissingID   = errors.New("product id is required")
	ErrMissingCost = errors.New("product cost is required")
)

// Defaults applied to optional ingestion fields
const (
	DefaultBaseDemand     = 100.0
	DefaultElasticity     = 1.5
	DefaultInventory      = 100
	DefaultBasePriceRatio = 1.5
)

// Product is an immutable catalog record used by the pricing engine.
// Name, Category, Description and Image are display only.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Cost        float64 `json:"cost"`
	BasePrice   float64 `json:"base_price"`
	BaseDemand  float64 `json:"base_demand"`
	Elasticity  float64 `json:"elasticity"`
	Inventory   int     `json:"inventory"`
}

// ProductInput is a product as it arrives from a catalog source.
// Only ID and Cost are mandatory; nil fields receive defaults in ToProduct.
type ProductInput struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Cost        *float64 `json:"cost"`
	BasePrice   *float64 `json:"base_price,omitempty"`
	BaseDemand  *float64 `json:"base_demand,omitempty"`
	Elasticity  *float64 `json:"elasticity,omitempty"`
	Inventory   *float64 `json:"inventory,omitempty"`
}

// ToProduct validates the required fields and fills in defaults:
// base_price = cost * 1.5, base_demand = 100, elasticity = 1.5, inventory = 100.
// Inventory may arrive as any JSON number and is truncated toward zero.
func (in ProductInput) ToProduct() (Product, error) {
	if in.ID == "" {
		return Product{}, ErrMissingID
	}
	if in.Cost == nil {
		return Product{}, ErrMissingCost
	}

	p := Product{
		ID:          in.ID,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Image:       in.Image,
		Cost:        *in.Cost,
		BasePrice:   *in.Cost * DefaultBasePriceRatio,
		BaseDemand:  DefaultBaseDemand,
		Elasticity:  DefaultElasticity,
		Inventory:   DefaultInventory,
	}
	if in.BasePrice != nil {
		p.BasePrice = *in.BasePrice
	}
	if in.BaseDemand != nil {
		p.BaseDemand = *in.BaseDemand
	}
	if in.Elasticity != nil {
		p.Elasticity = *in.Elasticity
	}
	if in.Inventory != nil {
		p.Inventory = int(*in.Inventory)
	}
	return p, nil
}

// Degenerate reports whether the record has inputs the demand model
// cannot handle meaningfully. Such records are still priced.
func (p Product) Degenerate() bool {
	return p.Cost <= 0 || p.BasePrice <= 0 || p.Elasticity <= 0 || p.BaseDemand < 0 || p.Inventory < 0
}
