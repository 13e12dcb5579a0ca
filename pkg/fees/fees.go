// Package fees converts a source-currency amount into the destination currency and prices the
// transfer with a tiered service fee. Everything here is pure; the exchange rate comes in from
// the caller (see RateProvider).
package fees

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier charges Fee for converted amounts up to and including UpTo.
// A nil UpTo marks the catch-all tier.
type Tier struct {
	UpTo *decimal.Decimal
	Fee  decimal.Decimal
}

// Schedule is an ordered, exhaustive list of fee tiers over the converted amount.
type Schedule struct {
	tiers []Tier
}

var (
	ErrEmptySchedule     = errors.New("fee schedule has no tiers")
	ErrMissingCatchAll   = errors.New("fee schedule must end with a catch-all tier")
	ErrTiersOutOfOrder   = errors.New("fee tier bounds must be strictly ascending")
	ErrCatchAllNotLast   = errors.New("only the last fee tier may be unbounded")
	ErrNegativeFeeOrUpTo = errors.New("fee tiers must not be negative")
)

// NewSchedule validates tiers and builds a Schedule. Tiers partition [0, ∞): each tier starts
// right after the previous tier's UpTo, and the final tier is unbounded.
func NewSchedule(tiers ...Tier) (*Schedule, error) {
	if len(tiers) == 0 {
		return nil, ErrEmptySchedule
	}
	prev := decimal.Zero
	for i, t := range tiers {
		if t.Fee.IsNegative() {
			return nil, ErrNegativeFeeOrUpTo
		}
		last := i == len(tiers)-1
		if t.UpTo == nil {
			if !last {
				return nil, ErrCatchAllNotLast
			}
			continue
		}
		if last {
			return nil, ErrMissingCatchAll
		}
		if t.UpTo.IsNegative() {
			return nil, ErrNegativeFeeOrUpTo
		}
		if i > 0 && !t.UpTo.GreaterThan(prev) {
			return nil, ErrTiersOutOfOrder
		}
		prev = *t.UpTo
	}
	return &Schedule{tiers: append([]Tier(nil), tiers...)}, nil
}

// DefaultSchedule is the NPR tier table: up to 100,000 → 500, up to 200,000 → 1,000, above → 3,000.
func DefaultSchedule() *Schedule {
	s, err := NewSchedule(
		Tier{UpTo: bound(100000), Fee: decimal.NewFromInt(500)},
		Tier{UpTo: bound(200000), Fee: decimal.NewFromInt(1000)},
		Tier{Fee: decimal.NewFromInt(3000)},
	)
	if err != nil {
		panic(err)
	}
	return s
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// FeeFor returns the fee of the single tier that covers amount.
func (s *Schedule) FeeFor(amount decimal.Decimal) decimal.Decimal {
	for _, t := range s.tiers {
		if t.UpTo == nil || amount.LessThanOrEqual(*t.UpTo) {
			return t.Fee
		}
	}
	// Unreachable: NewSchedule guarantees a catch-all tier.
	return s.tiers[len(s.tiers)-1].Fee
}

// Tiers returns a copy of the schedule's tiers.
func (s *Schedule) Tiers() []Tier {
	return append([]Tier(nil), s.tiers...)
}

// Summary is the priced breakdown of a single transfer.
type Summary struct {
	AmountSource    decimal.Decimal
	AmountConverted decimal.Decimal
	Fee             decimal.Decimal
	FeeSource       decimal.Decimal
	TotalSource     decimal.Decimal
	ExchangeRate    decimal.Decimal
}

// Calculator prices transfers against a fee schedule.
type Calculator struct {
	schedule *Schedule
}

// NewCalculator creates a Calculator. A nil schedule selects DefaultSchedule.
func NewCalculator(schedule *Schedule) *Calculator {
	if schedule == nil {
		schedule = DefaultSchedule()
	}
	return &Calculator{schedule: schedule}
}

// Summarize prices amountSource at rate. The caller guarantees amountSource > 0 and rate > 0.
func (c *Calculator) Summarize(amountSource, rate decimal.Decimal) Summary {
	converted := round2(amountSource.Mul(rate))
	fee := c.schedule.FeeFor(converted)
	feeSource := round2(fee.Div(rate))
	return Summary{
		AmountSource:    amountSource,
		AmountConverted: converted,
		Fee:             fee,
		FeeSource:       feeSource,
		TotalSource:     amountSource.Add(feeSource),
		ExchangeRate:    rate,
	}
}

// round2 rounds half away from zero to two decimal places.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ValidateRate rejects rates that cannot price a transfer.
func ValidateRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return fmt.Errorf("exchange rate must be positive, got %s", rate)
	}
	return nil
}
