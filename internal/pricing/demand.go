// Package pricing estimates demand for a product at a candidate price and
// searches for the price that maximizes expected profit under the inventory cap.
//
// All functions are pure: the same product record and price always produce
// the same result, so callers may share records across goroutines freely.
package pricing

import (
	"math"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/models"
	"github.com/cespare/xxhash/v2"
)

const (
	// competitorSensitivity scales how strongly the competitor gap moves demand
	competitorSensitivity = 0.25

	// competitorFloorRatio keeps the synthetic competitor above its own cost
	competitorFloorRatio = 1.01

	// maxCompetitorOffset bounds the synthetic competitor around base price
	maxCompetitorOffset = 0.05

	epsilon = 1e-6
)

// CompetitorPrice returns a deterministic synthetic competitor price near the
// product's base price. The offset is one of -5%, -2.5%, 0, +2.5%, +5%,
// selected by a 64-bit xxhash of the product id, so it is stable across
// processes and restarts. The result is never below cost * 1.01.
func CompetitorPrice(p models.Product) float64 {
	bucket := int(xxhash.Sum64String(p.ID)%5) - 2
	offset := maxCompetitorOffset * float64(bucket) / 2
	return math.Max(p.Cost*competitorFloorRatio, p.BasePrice*(1+offset))
}

// EstimateDemand is EstimateDemandAgainst with the synthetic competitor price.
func EstimateDemand(p models.Product, price float64) float64 {
	return EstimateDemandAgainst(p, price, CompetitorPrice(p))
}

// EstimateDemandAgainst estimates unit demand at price given a competitor price.
//
// Demand follows base_demand * (base_price / price) ^ elasticity and is then
// scaled by max(0, 1 + 0.25 * gap), where gap is the competitor's price
// advantage relative to the larger of the two prices. A non-positive price
// has zero demand; the result is never negative.
func EstimateDemandAgainst(p models.Product, price, competitor float64) float64 {
	if price <= 0 {
		return 0
	}

	demand := p.BaseDemand * math.Pow(p.BasePrice/price, p.Elasticity)

	gap := (competitor - price) / math.Max(math.Max(competitor, price), epsilon)
	demand *= math.Max(0, 1+competitorSensitivity*gap)

	// negative base price with a fractional elasticity
	if math.IsNaN(demand) {
		return 0
	}
	return math.Max(0, demand)
}

// ExpectedProfit is ExpectedProfitAgainst with the synthetic competitor price.
func ExpectedProfit(p models.Product, price float64) (profit, sales float64) {
	return ExpectedProfitAgainst(p, price, CompetitorPrice(p))
}

// ExpectedProfitAgainst returns (price - cost) * sales where sales is demand
// capped at the product's inventory. Profit is negative below cost.
func ExpectedProfitAgainst(p models.Product, price, competitor float64) (profit, sales float64) {
	sales = math.Min(EstimateDemandAgainst(p, price, competitor), float64(p.Inventory))
	profit = (price - p.Cost) * sales
	return profit, sales
}
