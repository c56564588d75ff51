// Package analyze computes per-seller sales performance reports from raw
// seller, product, and purchase-record collections.
//
// The computation is a single synchronous pass: validate the inputs, index
// sellers and products, accumulate revenue/profit/quantities over purchase
// records, rank sellers, and assign rank-based bonuses. It is pure given its
// inputs and keeps no state across calls.
package analyze

import (
	"fmt"
	"math"
	"sort"

	"github.com/retailops/salesreport/pkg/logging"
	"github.com/retailops/salesreport/pkg/money"
	"github.com/retailops/salesreport/pkg/report"
	"github.com/retailops/salesreport/pkg/sales"
)

// sellerStat accumulates one seller's running totals during a run.
type sellerStat struct {
	sellerID   string
	name       string
	revenue    float64
	profit     float64
	salesCount int
	quantities map[string]float64
}

func newSellerStat(id, name string) *sellerStat {
	return &sellerStat{
		sellerID:   id,
		name:       name,
		quantities: make(map[string]float64),
	}
}

// Analyze computes the ranked per-seller report for the dataset.
//
// Structural problems (nil dataset, empty collections, missing strategies)
// fail fast with ErrInvalidInput or ErrInvalidOptions before any aggregation.
// Dirty individual records (empty seller id, empty SKU, non-numeric fields)
// are skipped or coerced to zero instead.
//
// The result is ordered by profit descending, then revenue descending, then
// sales count descending, then seller id ascending. One report is produced
// for every distinct seller id observed across the seller list and the
// purchase records; sellers seen only in purchase records get their raw id
// as display name.
func Analyze(data *sales.Dataset, opts Options) ([]report.SellerReport, error) {
	if err := validate(data, &opts); err != nil {
		return nil, err
	}

	stats := indexSellers(data.Sellers)
	bySKU := indexProducts(data.Products)

	accumulate(data.PurchaseRecords, opts.Revenue, stats, bySKU)

	reports := rank(stats, opts.TopNumber)
	assignBonuses(reports, opts.Bonus)

	return reports, nil
}

// validate applies the strict input policy: the whole dataset must be
// structurally sound before any aggregation work starts.
func validate(data *sales.Dataset, opts *Options) error {
	if data == nil {
		return fmt.Errorf("%w: dataset must not be nil", ErrInvalidInput)
	}
	if len(data.Sellers) == 0 {
		return fmt.Errorf("%w: sellers must be a non-empty collection", ErrInvalidInput)
	}
	if len(data.Products) == 0 {
		return fmt.Errorf("%w: products must be a non-empty collection", ErrInvalidInput)
	}
	if len(data.PurchaseRecords) == 0 {
		return fmt.Errorf("%w: purchase_records must be a non-empty collection", ErrInvalidInput)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	log := logging.WithPhase("validate")
	log.Debug().
		Int("sellers", len(data.Sellers)).
		Int("products", len(data.Products)).
		Int("purchase_records", len(data.PurchaseRecords)).
		Int("top_number", opts.TopNumber).
		Msg("input validated")
	return nil
}

// indexSellers seeds the per-seller stats from the seller list. Entries
// without an id are skipped.
func indexSellers(sellers []sales.Seller) map[string]*sellerStat {
	stats := make(map[string]*sellerStat, len(sellers))
	for _, s := range sellers {
		if s.ID == "" {
			continue
		}
		stats[s.ID] = newSellerStat(s.ID, s.DisplayName())
	}

	log := logging.WithPhase("index")
	log.Debug().Int("sellers", len(stats)).Msg("sellers indexed")
	return stats
}

// indexProducts builds the SKU lookup. Entries without a SKU are skipped;
// duplicate SKUs are last-write-wins.
func indexProducts(products []sales.Product) map[string]*sales.Product {
	bySKU := make(map[string]*sales.Product, len(products))
	for i := range products {
		p := &products[i]
		if p.SKU == "" {
			continue
		}
		bySKU[p.SKU] = p
	}

	log := logging.WithPhase("index")
	log.Debug().Int("products", len(bySKU)).Msg("products indexed")
	return bySKU
}

// accumulate walks the purchase records and folds each line item into its
// seller's stat. Revenue comes from the pluggable strategy; profit is always
// computed from the raw discounted revenue minus purchase cost, so profit
// stays comparable when a custom revenue formula is supplied.
func accumulate(records []sales.PurchaseRecord, revenue RevenueCalculator, stats map[string]*sellerStat, bySKU map[string]*sales.Product) {
	counted := 0
	for _, rec := range records {
		if rec.SellerID == "" {
			continue
		}

		stat, ok := stats[rec.SellerID]
		if !ok {
			// Seller seen only in purchase records: track it anyway, with
			// the raw id as its display name.
			stat = newSellerStat(rec.SellerID, rec.SellerID)
			stats[rec.SellerID] = stat
		}
		stat.salesCount++
		counted++

		for _, item := range rec.Items {
			if item.SKU == "" {
				continue
			}

			product := bySKU[item.SKU]

			r := revenue.Revenue(item, product)
			if math.IsNaN(r) || math.IsInf(r, 0) {
				r = 0
			}

			qty := item.Quantity.Float()
			raw := math.Max(0, item.SalePrice.Float()*qty*(1-item.Discount.Float()/100))
			var cost float64
			if product != nil {
				cost = product.PurchasePrice.Float() * qty
			}

			stat.revenue += r
			stat.profit += raw - cost
			stat.quantities[item.SKU] += qty
		}
	}

	log := logging.WithPhase("accumulate")
	log.Debug().
		Int("records", counted).
		Int("sellers", len(stats)).
		Msg("purchase records accumulated")
}

// rank converts the accumulated stats into output reports, computes each
// seller's top products, and sorts the result into the final total order.
func rank(stats map[string]*sellerStat, topNumber int) []report.SellerReport {
	reports := make([]report.SellerReport, 0, len(stats))
	for _, stat := range stats {
		reports = append(reports, report.SellerReport{
			SellerID:    stat.sellerID,
			Name:        stat.name,
			Revenue:     money.Round2(stat.revenue),
			Profit:      money.Round2(stat.profit),
			SalesCount:  stat.salesCount,
			TopProducts: topProducts(stat.quantities, topNumber),
		})
	}

	SortReports(reports)

	log := logging.WithPhase("rank")
	log.Debug().Int("sellers", len(reports)).Msg("sellers ranked")
	return reports
}

// topProducts sorts a seller's SKU quantities descending and truncates to
// topNumber. Equal quantities order by SKU ascending so the list is
// deterministic.
func topProducts(quantities map[string]float64, topNumber int) []report.TopProduct {
	tops := make([]report.TopProduct, 0, len(quantities))
	for sku, qty := range quantities {
		tops = append(tops, report.TopProduct{SKU: sku, Quantity: qty})
	}

	sort.Slice(tops, func(i, j int) bool {
		if tops[i].Quantity != tops[j].Quantity {
			return tops[i].Quantity > tops[j].Quantity
		}
		return tops[i].SKU < tops[j].SKU
	})

	if len(tops) > topNumber {
		tops = tops[:topNumber]
	}
	return tops
}

// SortReports orders reports by profit descending, then revenue descending,
// then sales count descending, then seller id ascending. Seller ids are
// unique, so the order is total. Exported so callers can re-check ordering.
func SortReports(reports []report.SellerReport) {
	sort.Slice(reports, func(i, j int) bool {
		a, b := reports[i], reports[j]
		if a.Profit != b.Profit {
			return a.Profit > b.Profit
		}
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		if a.SalesCount != b.SalesCount {
			return a.SalesCount > b.SalesCount
		}
		return a.SellerID < b.SellerID
	})
}

// assignBonuses walks the sorted reports once and applies the bonus strategy
// per rank. Non-finite strategy results clamp to 0.
func assignBonuses(reports []report.SellerReport, bonus BonusCalculator) {
	total := len(reports)
	for i := range reports {
		b := bonus.Bonus(i, total, reports[i])
		if math.IsNaN(b) || math.IsInf(b, 0) {
			b = 0
		}
		reports[i].Bonus = money.Round2(b)
	}

	log := logging.WithPhase("bonus")
	log.Debug().Int("sellers", total).Msg("bonuses assigned")
}
