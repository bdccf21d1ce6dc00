package mathutil

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
)

var (
	// ErrAmountBelowGlobalMin is returned when a candidate amount is below the
	// global minimum and cannot be adjusted at all.
	ErrAmountBelowGlobalMin = errors.New("amount is below the global minimum")
	// ErrInvalidRoundingFactor ...
	ErrInvalidRoundingFactor = errors.New("rounding factor must be positive")
	// ErrInvalidPrice ...
	ErrInvalidPrice = errors.New("price must be positive")
)

// amountGranularity truncates adjusted amounts to 4 decimal places of the
// native currency.
var amountGranularity = int64(1e8)

// RoundedVolume snaps a fiat volume (smallest units, precision 4) to the
// nearest multiple of factor whole fiat units, never below one factor unit.
// E.g. factor 1 rounds to whole euros, factor 10 to tens of euros for
// cash-deposit style payment methods.
func RoundedVolume(volume int64, factor int64) int64 {
	blocks := decimal.New(volume, 0).
		Div(decimal.New(FiatUnitScale*factor, 0))
	rounded := roundToInt64(blocks) * factor
	if rounded < factor {
		rounded = factor
	}
	return rounded * FiatUnitScale
}

// Rounder clamps and rounds candidate trade amounts. GlobalMinUnits is the
// hard floor below which input amounts are rejected outright; MinTradeUnits
// is the smallest tradeable amount the result is clamped up to.
type Rounder struct {
	GlobalMinUnits int64
	MinTradeUnits  int64
}

// AdjustedAmount rounds the candidate amount so it corresponds to a clean
// fiat volume figure at the given price, and clamps it between the minimum
// tradeable amount and the account's trade limit.
//
// The step order is load-bearing: clamping up to the implied minimum happens
// before the volume round-trip, and the trade-limit walk-down happens after
// the 4-decimal truncation. Reordering changes how rounding error compounds.
func (r Rounder) AdjustedAmount(
	amount monetary.Amount, price Price, maxTradeLimit int64, factor int64,
) (monetary.Amount, error) {
	if amount.Units() < r.GlobalMinUnits {
		return monetary.Amount{}, ErrAmountBelowGlobalMin
	}
	if factor <= 0 {
		return monetary.Amount{}, ErrInvalidRoundingFactor
	}
	if !price.IsValid() {
		return monetary.Amount{}, ErrInvalidPrice
	}

	// the amount must buy at least one factor unit of fiat volume, and never
	// less than the minimum trade amount
	smallestUnitForAmount := price.AmountByVolume(factor * FiatUnitScale)
	if smallestUnitForAmount < r.MinTradeUnits {
		smallestUnitForAmount = r.MinTradeUnits
	}

	units := amount.Units()
	if units < smallestUnitForAmount {
		units = smallestUnitForAmount
	}

	// round-trip through the volume so the final amount corresponds to a
	// clean volume figure
	volume := price.VolumeByAmount(units)
	roundedVolume := RoundedVolume(volume, factor)
	adjusted := price.AmountByVolume(roundedVolume)

	adjusted = adjusted / amountGranularity * amountGranularity

	// walk down below the trade limit in smallest-amount steps rather than
	// dividing, so the result keeps corresponding to whole volume units
	for adjusted > maxTradeLimit {
		adjusted -= smallestUnitForAmount
	}

	if adjusted < r.MinTradeUnits {
		adjusted = r.MinTradeUnits
	}
	if adjusted > maxTradeLimit {
		adjusted = maxTradeLimit
	}

	return monetary.NewAmount(adjusted, amount.Exponent()), nil
}
