package fees

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider supplies the source→destination exchange rate in effect at call time.
type RateProvider interface {
	CurrentRate(ctx context.Context) (decimal.Decimal, error)
}

// StaticRate is a RateProvider that always returns the configured rate.
type StaticRate struct {
	Rate decimal.Decimal
}

// Make sure we conform to the interface
var _ RateProvider = StaticRate{}

// CurrentRate returns the configured rate.
func (s StaticRate) CurrentRate(ctx context.Context) (decimal.Decimal, error) {
	if err := ValidateRate(s.Rate); err != nil {
		return decimal.Zero, err
	}
	return s.Rate, nil
}
