package conversion_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/conversion"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
)

func TestParseRate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"unit_rate", "1.0", false},
		{"fractional_rate", "0.00785", false},
		{"large_rate", "250", false},
		{"zero", "0", true},
		{"negative", "-1.5", true},
		{"garbage", "n/a", true},
		{"empty", "", true},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			_, err := conversion.ParseRate(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, conversion.ErrInvalidRate)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRateFromFloat(t *testing.T) {
	_, err := conversion.RateFromFloat(math.NaN())
	require.ErrorIs(t, err, conversion.ErrInvalidRate)

	_, err = conversion.RateFromFloat(math.Inf(1))
	require.ErrorIs(t, err, conversion.ErrInvalidRate)

	_, err = conversion.RateFromFloat(0)
	require.ErrorIs(t, err, conversion.ErrInvalidRate)

	_, err = conversion.RateFromFloat(0.0123)
	require.NoError(t, err)
}

func TestToForeignPlainCoin(t *testing.T) {
	oneCoin := monetary.XMR(1e12)

	rate := decimal.NewFromInt(1)
	got, err := conversion.ToForeign(oneCoin, monetary.FamilyBTC, rate)
	require.NoError(t, err)
	require.Equal(t, int64(1e8), got.Units())
	require.Equal(t, monetary.BitcoinExponent, got.Exponent())

	rate = decimal.NewFromInt(2)
	got, err = conversion.ToForeign(oneCoin, monetary.FamilyBTC, rate)
	require.NoError(t, err)
	require.Equal(t, int64(2e8), got.Units())
}

func TestToForeignColoredToken(t *testing.T) {
	oneCoin := monetary.XMR(1e12)

	// at rate 1 one native coin is one token, which occupies 10^2 ledger units
	got, err := conversion.ToForeign(oneCoin, monetary.FamilyBSQ, decimal.NewFromInt(1))
	require.NoError(t, err)
	require.Equal(t, int64(100), got.Units())

	rate, err := conversion.ParseRate("150.5")
	require.NoError(t, err)
	got, err = conversion.ToForeign(oneCoin, monetary.FamilyBSQ, rate)
	require.NoError(t, err)
	require.Equal(t, int64(15050), got.Units())
}

func TestToNative(t *testing.T) {
	rate := decimal.NewFromInt(2)

	got, err := conversion.ToNative(monetary.BTC(2e8), monetary.FamilyBTC, rate)
	require.NoError(t, err)
	require.Equal(t, int64(1e12), got.Units())
	require.Equal(t, monetary.MoneroExponent, got.Exponent())
}

func TestZeroAmountConvertsToZero(t *testing.T) {
	rate := decimal.NewFromInt(3)

	got, err := conversion.ToForeign(monetary.Zero(monetary.FamilyXMR), monetary.FamilyBTC, rate)
	require.NoError(t, err)
	require.True(t, got.IsZero())
	require.Equal(t, monetary.BitcoinExponent, got.Exponent())

	got, err = conversion.ToNative(monetary.Zero(monetary.FamilyBTC), monetary.FamilyBTC, rate)
	require.NoError(t, err)
	require.True(t, got.IsZero())
	require.Equal(t, monetary.MoneroExponent, got.Exponent())
}

func TestInvalidRateIsRejected(t *testing.T) {
	_, err := conversion.ToForeign(monetary.XMR(1e12), monetary.FamilyBTC, decimal.Zero)
	require.ErrorIs(t, err, conversion.ErrInvalidRate)

	_, err = conversion.ToNative(monetary.BTC(1e8), monetary.FamilyBTC, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, conversion.ErrInvalidRate)
}

func TestRoundTripWithinOneUnit(t *testing.T) {
	rates := []string{"0.00785", "1", "2", "3.333333", "157.21"}
	amounts := []int64{1e12, 5e11, 123_456_789_012, 999_999_999_999, 1}

	for _, rs := range rates {
		rate, err := conversion.ParseRate(rs)
		require.NoError(t, err)

		for _, units := range amounts {
			a := monetary.XMR(units)
			foreign, err := conversion.ToForeign(a, monetary.FamilyBTC, rate)
			require.NoError(t, err)
			back, err := conversion.ToNative(foreign, monetary.FamilyBTC, rate)
			require.NoError(t, err)

			drift := back.Units() - a.Units()
			if drift < 0 {
				drift = -drift
			}
			// bounded by the granularity the foreign exponent can carry at
			// this rate, never unbounded
			maxDrift := decimal.New(1, 4).Div(rate).Ceil().IntPart() + 1
			require.LessOrEqual(t, drift, maxDrift,
				"rate %s amount %d drifted by %d", rs, units, drift)
		}
	}
}

func TestRoundingModes(t *testing.T) {
	// 145000 units at rate 1 land exactly on 14.5 foreign units
	a := monetary.XMR(145_000)
	rate := decimal.NewFromInt(1)

	halfEven, err := conversion.ToForeign(a, monetary.FamilyBTC, rate)
	require.NoError(t, err)
	require.Equal(t, int64(14), halfEven.Units())

	away, err := conversion.ToForeign(
		a, monetary.FamilyBTC, rate,
		conversion.WithRounding(conversion.RoundHalfAwayFromZero),
	)
	require.NoError(t, err)
	require.Equal(t, int64(15), away.Units())

	floor, err := conversion.ToForeign(
		a, monetary.FamilyBTC, rate,
		conversion.WithRounding(conversion.RoundFloor),
	)
	require.NoError(t, err)
	require.Equal(t, int64(14), floor.Units())
}
