package pricing

import (
	"math"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/models"
)

// DefaultGridSteps is the optimizer resolution used when none is given
const DefaultGridSteps = 200

const marginEpsilon = 1e-9

// SearchBounds returns the price interval scanned by Optimize.
// low is always above cost; high covers base price, competitor and 3x cost.
func SearchBounds(p models.Product, competitor float64) (low, high float64) {
	low = math.Max(p.Cost*competitorFloorRatio, p.BasePrice*0.5)
	high = math.Max(math.Max(p.BasePrice*1.6, competitor*1.4), p.Cost*3)
	return low, high
}

// Optimize scans steps+1 evenly spaced prices from low to high inclusive and
// returns the one with the highest expected profit. The competitor price is
// synthesized once for the whole scan. On ties the lowest price wins.
// Sales, profit and revenue are reported at the rounded price, so that
// Simulate at RecommendedPrice returns the same figures.
// steps < 1 falls back to DefaultGridSteps.
func Optimize(p models.Product, steps int) models.Recommendation {
	if steps < 1 {
		steps = DefaultGridSteps
	}

	competitor := CompetitorPrice(p)
	low, high := SearchBounds(p, competitor)

	bestPrice := low
	bestProfit := math.Inf(-1)

	for i := 0; i <= steps; i++ {
		price := low + (high-low)*float64(i)/float64(steps)
		profit, _ := ExpectedProfitAgainst(p, price, competitor)
		// strict comparison keeps the first maximum of the unrounded grid
		if profit > bestProfit {
			bestProfit = profit
			bestPrice = round(price, 2)
		}
	}

	profit, sales := ExpectedProfitAgainst(p, bestPrice, competitor)
	revenue := bestPrice * sales
	margin := (bestPrice - p.Cost) / (bestPrice + marginEpsilon)

	return models.Recommendation{
		RecommendedPrice: bestPrice,
		ExpectedProfit:   round(profit, 2),
		ExpectedSales:    round(sales, 2),
		ExpectedRevenue:  round(revenue, 2),
		Margin:           round(margin, 3),
		CompetitorPrice:  round(competitor, 2),
	}
}

// Simulate evaluates a single candidate price against the synthetic
// competitor price, the same one Optimize uses for this product.
func Simulate(p models.Product, price float64) models.Simulation {
	profit, sales := ExpectedProfitAgainst(p, price, CompetitorPrice(p))
	return models.Simulation{
		Price:           round(price, 2),
		ExpectedSales:   round(sales, 2),
		ExpectedProfit:  round(profit, 2),
		ExpectedRevenue: round(price*sales, 2),
	}
}

// round rounds half away from zero to the given number of decimals
func round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
