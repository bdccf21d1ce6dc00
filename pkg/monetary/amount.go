package monetary

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// OneCoin is the number of smallest units of one whole native coin.
var OneCoin = int64(1e12)

// MinNonDustOutput is the smallest economically spendable native amount,
// 0.01 XMR. Anything below is treated as dust.
var MinNonDustOutput = NewAmount(1e10, MoneroExponent)

// Amount is an immutable 64-bit signed fixed-point monetary value: a count of
// smallest units at a fixed per-currency exponent (12 for XMR, 8 for BTC and
// the colored token). All arithmetic is exact integer arithmetic; overflow is
// an error, never a silent wrap-around.
type Amount struct {
	units    int64
	exponent int
}

// NewAmount returns an amount of units smallest units at the given exponent.
func NewAmount(units int64, exponent int) Amount {
	return Amount{units: units, exponent: exponent}
}

// Zero returns the zero amount of the given family.
func Zero(family Family) Amount {
	return Amount{exponent: family.Exponent()}
}

// XMR returns a native amount of the given piconero units.
func XMR(units int64) Amount {
	return NewAmount(units, MoneroExponent)
}

// BTC returns a plain 8-exponent amount of the given satoshi units.
func BTC(units int64) Amount {
	return NewAmount(units, BitcoinExponent)
}

// Parse converts a base-10 decimal string, optionally in exponent notation
// (e.g. "1.23E3"), to an amount at the given smallest-unit exponent. A string
// whose fractional part needs more digits than the exponent allows is rejected
// with ErrFractionalUnit, never truncated.
func Parse(s string, exponent int) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrMalformedAmount
	}
	shifted := d.Shift(int32(exponent))
	if !shifted.IsInteger() {
		return Amount{}, ErrFractionalUnit
	}
	bi := shifted.BigInt()
	if !bi.IsInt64() {
		return Amount{}, ErrOverflow
	}
	return NewAmount(bi.Int64(), exponent), nil
}

// MustParse is a Parse that panics on error, for constants in tests and setup.
func MustParse(s string, exponent int) Amount {
	a, err := Parse(s, exponent)
	if err != nil {
		panic(err)
	}
	return a
}

// Units returns the signed count of smallest units.
func (a Amount) Units() int64 { return a.units }

// Exponent returns the smallest-unit exponent the amount is denominated in.
func (a Amount) Exponent() int { return a.exponent }

// Decimal returns the amount as an exact decimal in whole-coin terms.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.units, -int32(a.exponent))
}

// String renders the amount as a plain decimal string with no trailing zeroes.
func (a Amount) String() string {
	return a.Decimal().String()
}

// Add returns a+b. Both amounts must share the same exponent.
func (a Amount) Add(b Amount) (Amount, error) {
	if a.exponent != b.exponent {
		return Amount{}, ErrExponentMismatch
	}
	z, err := checkedAdd(a.units, b.units)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(z, a.exponent), nil
}

// Sub returns a-b. Both amounts must share the same exponent.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.exponent != b.exponent {
		return Amount{}, ErrExponentMismatch
	}
	z, err := checkedSub(a.units, b.units)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(z, a.exponent), nil
}

// Mul returns the amount multiplied by an integer factor.
func (a Amount) Mul(factor int64) (Amount, error) {
	z, err := checkedMul(a.units, factor)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(z, a.exponent), nil
}

// Div returns the amount divided by an integer divisor, truncated toward zero
// like Go's integer division.
func (a Amount) Div(divisor int64) (Amount, error) {
	if divisor == 0 {
		return Amount{}, ErrDivisionByZero
	}
	return NewAmount(a.units/divisor, a.exponent), nil
}

// Neg returns the negated amount.
func (a Amount) Neg() Amount {
	return NewAmount(-a.units, a.exponent)
}

// Cmp implements the total ordering by smallest units: -1 if a < b, 0 if
// equal, +1 if a > b. Ordering is exact integer comparison; amounts of
// different exponents are not comparable and must be converted first.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.units < b.units:
		return -1
	case a.units > b.units:
		return 1
	default:
		return 0
	}
}

func (a Amount) IsZero() bool     { return a.units == 0 }
func (a Amount) IsPositive() bool { return a.units > 0 }
func (a Amount) IsNegative() bool { return a.units < 0 }

// Signum returns -1, 0 or 1 depending on the sign of the amount.
func (a Amount) Signum() int {
	if a.units == 0 {
		return 0
	}
	if a.units < 0 {
		return -1
	}
	return 1
}

// IsDust reports whether a native amount is below the minimum economically
// spendable output size.
func (a Amount) IsDust() bool {
	return a.Cmp(MinNonDustOutput) < 0
}

// Min returns the smaller of two same-exponent amounts.
func Min(a, b Amount) Amount {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of two same-exponent amounts.
func Max(a, b Amount) Amount {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func checkedAdd(x, y int64) (int64, error) {
	z := new(big.Int).Add(big.NewInt(x), big.NewInt(y))
	if !z.IsInt64() {
		return 0, ErrOverflow
	}
	return z.Int64(), nil
}

func checkedSub(x, y int64) (int64, error) {
	z := new(big.Int).Sub(big.NewInt(x), big.NewInt(y))
	if !z.IsInt64() {
		return 0, ErrOverflow
	}
	return z.Int64(), nil
}

func checkedMul(x, y int64) (int64, error) {
	z := new(big.Int).Mul(big.NewInt(x), big.NewInt(y))
	if !z.IsInt64() {
		return 0, ErrOverflow
	}
	return z.Int64(), nil
}
