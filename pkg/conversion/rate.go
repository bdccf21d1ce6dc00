package conversion

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidRate is returned for a non-parseable, non-finite or non-positive
// exchange rate. The historical behavior of silently falling back to a rate
// of 1 mispriced trades; an invalid rate is a hard error here.
var ErrInvalidRate = errors.New("exchange rate must be a finite positive number")

// ParseRate parses a decimal exchange-rate string.
func ParseRate(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidRate
	}
	if err := checkRate(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// RateFromFloat converts a float64 price-feed value into a rate, rejecting
// NaN, infinities and non-positive values.
func RateFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return decimal.Decimal{}, ErrInvalidRate
	}
	return decimal.NewFromFloat(f), nil
}

func checkRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return ErrInvalidRate
	}
	return nil
}
