// Package conversion moves monetary amounts between the native 12-exponent
// ledger and the two foreign 8-exponent ledgers (plain coin and colored fee
// token), parameterized by a caller-supplied exchange rate.
//
// The rescale factor between the families lives in a single audited function,
// rescale. Call sites never multiply by raw powers of ten.
package conversion

import (
	"github.com/shopspring/decimal"

	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
)

// DivisionPrecision is the number of significant decimal digits carried by
// rate divisions. It must stay at least as large as the native exponent so a
// to-and-fro conversion drifts by at most one smallest unit.
const DivisionPrecision = 16

func init() {
	if decimal.DivisionPrecision < DivisionPrecision {
		decimal.DivisionPrecision = DivisionPrecision
	}
}

// exponentGap is the factor between the native exponent (12) and the foreign
// exponent (8).
var exponentGap = decimal.New(1, 4)

// Rounding selects the rounding mode applied at the single point where a
// decimal result is reduced to integer smallest units.
type Rounding int

const (
	// RoundHalfEven is the default banker's rounding.
	RoundHalfEven Rounding = iota
	// RoundHalfAwayFromZero matches the historical reference behavior.
	RoundHalfAwayFromZero
	// RoundFloor rounds toward negative infinity.
	RoundFloor
)

// Option tweaks a single conversion.
type Option func(*options)

type options struct {
	rounding Rounding
}

// WithRounding overrides the rounding mode for one conversion.
func WithRounding(r Rounding) Option {
	return func(o *options) { o.rounding = r }
}

func applyOpts(opts []Option) options {
	o := options{rounding: RoundHalfEven}
	for _, f := range opts {
		f(&o)
	}
	return o
}

// rescale maps a decimal count of native smallest units to the target
// family's smallest units (invert=false), or back (invert=true). Plain
// 8-exponent coins differ from the native ledger by 10^4; the colored token
// additionally divides by its scaling factor because one token occupies only
// 10^2 of its ledger's 10^8 units.
func rescale(d decimal.Decimal, family monetary.Family, invert bool) decimal.Decimal {
	if invert {
		d = d.Mul(exponentGap)
		if family.IsColored() {
			d = d.Mul(monetary.ColoredTokenScale)
		}
		return d
	}
	d = d.Div(exponentGap)
	if family.IsColored() {
		d = d.Div(monetary.ColoredTokenScale)
	}
	return d
}

// ToForeign converts a native 12-exponent amount to the requested foreign
// family at the given rate (foreign units per one native coin). The zero
// amount converts to the target family's zero, never to an error.
func ToForeign(
	a monetary.Amount, family monetary.Family, rate decimal.Decimal,
	opts ...Option,
) (monetary.Amount, error) {
	o := applyOpts(opts)
	if err := checkRate(rate); err != nil {
		return monetary.Amount{}, err
	}
	if a.IsZero() {
		return monetary.Zero(family), nil
	}

	units := decimal.New(a.Units(), 0).Mul(rate)
	units = rescale(units, family, false)
	return toUnits(units, family.Exponent(), o.rounding)
}

// ToNative is the algebraic inverse of ToForeign: it converts a foreign
// 8-exponent amount back to the native ledger by dividing by the rate with
// full decimal precision, then rescaling in the opposite direction.
func ToNative(
	a monetary.Amount, family monetary.Family, rate decimal.Decimal,
	opts ...Option,
) (monetary.Amount, error) {
	o := applyOpts(opts)
	if err := checkRate(rate); err != nil {
		return monetary.Amount{}, err
	}
	if a.IsZero() {
		return monetary.Zero(monetary.FamilyXMR), nil
	}

	units := decimal.New(a.Units(), 0).Div(rate)
	units = rescale(units, family, true)
	return toUnits(units, monetary.MoneroExponent, o.rounding)
}

func toUnits(d decimal.Decimal, exponent int, r Rounding) (monetary.Amount, error) {
	var rounded decimal.Decimal
	switch r {
	case RoundHalfAwayFromZero:
		rounded = d.Round(0)
	case RoundFloor:
		rounded = d.RoundFloor(0)
	default:
		rounded = d.RoundBank(0)
	}
	bi := rounded.BigInt()
	if !bi.IsInt64() {
		return monetary.Amount{}, monetary.ErrOverflow
	}
	return monetary.NewAmount(bi.Int64(), exponent), nil
}
