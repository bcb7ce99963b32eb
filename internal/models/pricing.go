package models

// Recommendation is the optimizer output for one product.
// It is computed per call and never stored.
type Recommendation struct {
	RecommendedPrice float64 `json:"recommended_price"`
	ExpectedProfit   float64 `json:"expected_profit"`
	ExpectedSales    float64 `json:"expected_sales"`
	ExpectedRevenue  float64 `json:"expected_revenue"`
	Margin           float64 `json:"margin"`
	CompetitorPrice  float64 `json:"competitor_price"`
}

// Simulation is the outcome of choosing an arbitrary price
type Simulation struct {
	Price           float64 `json:"price"`
	ExpectedSales   float64 `json:"expected_sales"`
	ExpectedProfit  float64 `json:"expected_profit"`
	ExpectedRevenue float64 `json:"expected_revenue"`
}

// PricedProduct is a catalog record together with its current recommendation
type PricedProduct struct {
	Product
	Recommendation
}

// SimulationRequest is the body of a simulation request
type SimulationRequest struct {
	Price *float64 `json:"price"`
}

// Quote wraps engine output with an identifier for client-side correlation
type Quote[T any] struct {
	QuoteID   string `json:"quoteId"`
	ProductID string `json:"productId"`
	Result    T      `json:"result"`
}
