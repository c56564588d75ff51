package analyze

import "fmt"

// DefaultTopNumber is the top-product list length used when Options.TopNumber
// is not set.
const DefaultTopNumber = 10

// Options configures one analysis run.
type Options struct {
	// Revenue computes per-line-item revenue. Required.
	Revenue RevenueCalculator

	// Bonus computes the per-seller bonus from rank position. Required.
	Bonus BonusCalculator

	// TopNumber is the maximum length of each seller's top-product list.
	// Optional; non-positive values fall back to DefaultTopNumber.
	TopNumber int
}

// DefaultOptions returns options with the default strategies.
func DefaultOptions() Options {
	return Options{
		Revenue:   SimpleRevenue{},
		Bonus:     BonusByProfit{},
		TopNumber: DefaultTopNumber,
	}
}

// Validate checks that both strategies are set and fills in the default
// top-product count. Missing strategies are a caller error, not something
// to silently default: validation is strict so a misconfigured run fails
// before any aggregation.
func (o *Options) Validate() error {
	if o.Revenue == nil {
		return fmt.Errorf("%w: revenue calculator must be set", ErrInvalidOptions)
	}
	if o.Bonus == nil {
		return fmt.Errorf("%w: bonus calculator must be set", ErrInvalidOptions)
	}
	if o.TopNumber <= 0 {
		o.TopNumber = DefaultTopNumber
	}
	return nil
}

// WithRevenue sets the revenue strategy.
func (o Options) WithRevenue(r RevenueCalculator) Options {
	o.Revenue = r
	return o
}

// WithBonus sets the bonus strategy.
func (o Options) WithBonus(b BonusCalculator) Options {
	o.Bonus = b
	return o
}

// WithTopNumber sets the top-product list length.
func (o Options) WithTopNumber(n int) Options {
	o.TopNumber = n
	return o
}
