// Package money provides rounding for monetary amounts.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds v to 2 decimal places, half away from zero. This is applied
// at every monetary output boundary (revenue, profit, bonus) so tie cases
// round identically everywhere. Non-finite values round to 0.
//
// decimal.Round is half-away-from-zero; banker's rounding is the separate
// RoundBank and must not be used here.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
