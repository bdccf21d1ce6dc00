package mathutil

import (
	"github.com/shopspring/decimal"

	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
)

// FeePerUnitOf scales a fee-per-whole-coin amount to the given trade amount:
// feePerCoin * (amount / one coin), rounded half away from zero.
func FeePerUnitOf(feePerCoin, amount monetary.Amount) monetary.Amount {
	fee := decimal.New(feePerCoin.Units(), 0).
		Mul(decimal.New(amount.Units(), 0)).
		Div(decimal.New(OneCoinUnits, 0))
	return monetary.NewAmount(roundToInt64(fee), feePerCoin.Exponent())
}

// PercentOfAmount returns percent (e.g. 0.01 for 1%) of the amount, rounded
// half away from zero.
func PercentOfAmount(percent float64, amount monetary.Amount) monetary.Amount {
	v := decimal.NewFromFloat(percent).Mul(decimal.New(amount.Units(), 0))
	return monetary.NewAmount(roundToInt64(v), amount.Exponent())
}

// AsPercent returns part/total rounded to 4 decimals, e.g. 0.1 of 0.4 is 0.25.
func AsPercent(part, total monetary.Amount) float64 {
	if total.IsZero() {
		return 0
	}
	ratio, _ := decimal.New(part.Units(), 0).
		Div(decimal.New(total.Units(), 0)).
		Round(4).Float64()
	return ratio
}

// FeePerByte returns the mining fee divided by the transaction size, rounded
// to 2 decimals.
func FeePerByte(miningFee monetary.Amount, txSize int64) float64 {
	if txSize <= 0 {
		return 0
	}
	v, _ := decimal.New(miningFee.Units(), 0).
		Div(decimal.New(txSize, 0)).
		Round(2).Float64()
	return v
}
