package monetary

import "errors"

var (
	// ErrMalformedAmount is returned when a decimal string cannot be parsed at all.
	ErrMalformedAmount = errors.New("malformed amount string")
	// ErrFractionalUnit is returned when a decimal string carries more fractional
	// digits than the currency's smallest unit allows.
	ErrFractionalUnit = errors.New("amount has fractional smallest units")
	// ErrOverflow is returned when the result of an operation does not fit in a
	// signed 64-bit count of smallest units.
	ErrOverflow = errors.New("amount overflows 64-bit smallest units")
	// ErrExponentMismatch is returned when combining two amounts with different
	// smallest-unit exponents. Mixing families requires an explicit conversion.
	ErrExponentMismatch = errors.New("amounts have different smallest-unit exponents")
	// ErrDivisionByZero ...
	ErrDivisionByZero = errors.New("division by zero")
)
