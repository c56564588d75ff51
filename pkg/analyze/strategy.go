package analyze

import (
	"math"

	"github.com/retailops/salesreport/pkg/money"
	"github.com/retailops/salesreport/pkg/report"
	"github.com/retailops/salesreport/pkg/sales"
)

// RevenueCalculator computes the revenue of a single line item. product is
// the matching catalog entry, or nil when the item's SKU is unknown.
type RevenueCalculator interface {
	Revenue(item sales.LineItem, product *sales.Product) float64
}

// RevenueFunc adapts an ordinary function to a RevenueCalculator.
type RevenueFunc func(item sales.LineItem, product *sales.Product) float64

// Revenue implements RevenueCalculator.
func (f RevenueFunc) Revenue(item sales.LineItem, product *sales.Product) float64 {
	return f(item, product)
}

// BonusCalculator computes a seller's bonus from its zero-based rank in the
// sorted report and the total seller count.
type BonusCalculator interface {
	Bonus(rank, total int, seller report.SellerReport) float64
}

// BonusFunc adapts an ordinary function to a BonusCalculator.
type BonusFunc func(rank, total int, seller report.SellerReport) float64

// Bonus implements BonusCalculator.
func (f BonusFunc) Bonus(rank, total int, seller report.SellerReport) float64 {
	return f(rank, total, seller)
}

// SimpleRevenue is the default revenue strategy: sale price times quantity
// with the percentage discount applied, clamped at zero and rounded to 2
// decimals. The catalog entry is unused here; it is part of the contract so
// custom strategies can price off purchase cost or other product fields.
type SimpleRevenue struct{}

// Revenue implements RevenueCalculator.
func (SimpleRevenue) Revenue(item sales.LineItem, _ *sales.Product) float64 {
	gross := item.SalePrice.Float() * item.Quantity.Float()
	discounted := gross * (1 - item.Discount.Float()/100)
	return money.Round2(math.Max(0, discounted))
}

// Bonus rates by rank tier.
const (
	topRate    = 0.15
	runnerRate = 0.10
	middleRate = 0.05
)

// BonusByProfit is the default bonus strategy: a rank-tiered share of the
// seller's non-negative profit. Rank 0 earns 15%, ranks 1-2 earn 10%, the
// last rank earns nothing, everyone else 5%. The rank-1/rank-2 rule is
// checked before the last-rank rule, so the last of two or three sellers
// still earns 10%, and a sole seller takes the top rate.
type BonusByProfit struct{}

// Bonus implements BonusCalculator.
func (BonusByProfit) Bonus(rank, total int, seller report.SellerReport) float64 {
	profit := math.Max(0, seller.Profit)

	var rate float64
	switch {
	case rank == 0:
		rate = topRate
	case rank == 1 || rank == 2:
		rate = runnerRate
	case rank == total-1:
		rate = 0
	default:
		rate = middleRate
	}

	return money.Round2(profit * rate)
}
