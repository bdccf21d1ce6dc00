// Package mathutil holds the rounding and clamping policy applied to trade
// amounts and fiat volumes during offer construction.
package mathutil

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// FiatExponent is the number of decimals fiat volumes are carried at.
const FiatExponent = 4

var (
	// FiatUnitScale is one whole fiat unit in smallest units.
	FiatUnitScale = int64(math.Pow10(FiatExponent))
	// OneCoinUnits is one whole native coin in smallest units.
	OneCoinUnits = int64(1e12)
)

// Price expresses fiat smallest units (precision 4) per one whole native coin.
type Price struct {
	units int64
}

// NewPrice returns a price of the given fiat smallest units per coin.
func NewPrice(units int64) Price {
	return Price{units: units}
}

// Units returns the price in fiat smallest units per whole coin.
func (p Price) Units() int64 { return p.units }

// IsValid reports whether the price is usable for volume math.
func (p Price) IsValid() bool { return p.units > 0 }

// VolumeByAmount returns the fiat volume (smallest units, precision 4) bought
// by the given count of native smallest units, truncated.
func (p Price) VolumeByAmount(amountUnits int64) int64 {
	z := new(big.Int).Mul(big.NewInt(amountUnits), big.NewInt(p.units))
	z.Quo(z, big.NewInt(OneCoinUnits))
	return z.Int64()
}

// AmountByVolume returns the native smallest units corresponding to the given
// fiat volume (smallest units, precision 4), truncated.
func (p Price) AmountByVolume(volumeUnits int64) int64 {
	z := new(big.Int).Mul(big.NewInt(volumeUnits), big.NewInt(OneCoinUnits))
	z.Quo(z, big.NewInt(p.units))
	return z.Int64()
}

// roundToInt64 rounds half away from zero.
func roundToInt64(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
