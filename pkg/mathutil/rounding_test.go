package mathutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/mathutil"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
)

func TestRoundedVolume(t *testing.T) {
	tests := []struct {
		name   string
		volume int64
		factor int64
		want   int64
	}{
		{"round_down_to_whole_unit", 14_4999, 1, 14_0000},
		{"round_up_to_whole_unit", 14_5000, 1, 15_0000},
		{"round_to_ten_units", 26_0000, 10, 30_0000},
		{"near_zero_clamps_to_factor", 1, 1, 1_0000},
		{"near_zero_clamps_to_ten", 499, 10, 10_0000},
		{"exact_multiple_unchanged", 120_0000, 10, 120_0000},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, mathutil.RoundedVolume(tt.volume, tt.factor))
		})
	}
}

func TestRoundedVolumeFloor(t *testing.T) {
	// rounded volume never falls below one factor unit, for any positive input
	for _, factor := range []int64{1, 10} {
		for _, volume := range []int64{1, 3, 9_999, 5_0001, 123_4567} {
			got := mathutil.RoundedVolume(volume, factor)
			require.GreaterOrEqual(t, got, factor)
			require.Zero(t, got%(factor*mathutil.FiatUnitScale))
		}
	}
}

func TestPriceVolumeRoundTrip(t *testing.T) {
	// 150.0000 fiat per coin
	price := mathutil.NewPrice(150_0000)

	volume := price.VolumeByAmount(1e12)
	require.Equal(t, int64(150_0000), volume)

	amount := price.AmountByVolume(150_0000)
	require.Equal(t, int64(1e12), amount)
}

func TestAdjustedAmountPreconditions(t *testing.T) {
	r := mathutil.Rounder{GlobalMinUnits: 1_000, MinTradeUnits: 10_000}
	price := mathutil.NewPrice(150_0000)

	_, err := r.AdjustedAmount(monetary.XMR(999), price, 1e12, 1)
	require.ErrorIs(t, err, mathutil.ErrAmountBelowGlobalMin)

	_, err = r.AdjustedAmount(monetary.XMR(1e10), price, 1e12, 0)
	require.ErrorIs(t, err, mathutil.ErrInvalidRoundingFactor)

	_, err = r.AdjustedAmount(monetary.XMR(1e10), price, 1e12, -3)
	require.ErrorIs(t, err, mathutil.ErrInvalidRoundingFactor)

	_, err = r.AdjustedAmount(monetary.XMR(1e10), mathutil.NewPrice(0), 1e12, 1)
	require.ErrorIs(t, err, mathutil.ErrInvalidPrice)
}

func TestAdjustedAmountClampsUpToMinimum(t *testing.T) {
	r := mathutil.Rounder{GlobalMinUnits: 1_000, MinTradeUnits: 10_000}
	price := mathutil.NewPrice(150_0000)

	// amount below the minimum tradeable amount is clamped up, never returned
	// below the minimum
	got, err := r.AdjustedAmount(monetary.XMR(5_000), price, 1e15, 1)
	require.NoError(t, err)
	require.GreaterOrEqual(t, got.Units(), int64(10_000))
}

func TestAdjustedAmountCleanVolume(t *testing.T) {
	r := mathutil.Rounder{GlobalMinUnits: 1_000, MinTradeUnits: 10_000}
	// 100.0000 fiat per coin keeps the numbers readable
	price := mathutil.NewPrice(100_0000)

	// 1.2345678 coins -> 123.45678 fiat -> rounds to 123 -> 1.23 coins
	got, err := r.AdjustedAmount(monetary.XMR(1_234_567_800_000), price, 1e14, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1_230_000_000_000), got.Units())

	// the result corresponds to a whole fiat unit figure
	require.Zero(t, price.VolumeByAmount(got.Units())%mathutil.FiatUnitScale)
}

func TestAdjustedAmountRespectsTradeLimit(t *testing.T) {
	r := mathutil.Rounder{GlobalMinUnits: 1_000, MinTradeUnits: 10_000}
	price := mathutil.NewPrice(100_0000)
	maxLimit := int64(5e11) // half a coin

	got, err := r.AdjustedAmount(monetary.XMR(2e12), price, maxLimit, 1)
	require.NoError(t, err)
	require.LessOrEqual(t, got.Units(), maxLimit)
	require.GreaterOrEqual(t, got.Units(), int64(10_000))
}

func TestAdjustedAmountClampProperty(t *testing.T) {
	r := mathutil.Rounder{GlobalMinUnits: 1_000, MinTradeUnits: 10_000}
	price := mathutil.NewPrice(73_4500)

	for _, units := range []int64{5_000, 1e10, 3e11, 7e12, 9e13} {
		for _, factor := range []int64{1, 10} {
			maxLimit := int64(1e13)
			got, err := r.AdjustedAmount(monetary.XMR(units), price, maxLimit, factor)
			require.NoError(t, err)
			require.GreaterOrEqual(t, got.Units(), int64(10_000))
			require.LessOrEqual(t, got.Units(), maxLimit)
		}
	}
}

func TestFeeHelpers(t *testing.T) {
	feePerCoin := monetary.XMR(2e9) // 0.002 per coin

	fee := mathutil.FeePerUnitOf(feePerCoin, monetary.XMR(5e11))
	require.Equal(t, int64(1e9), fee.Units())

	pct := mathutil.PercentOfAmount(0.01, monetary.XMR(1e12))
	require.Equal(t, int64(1e10), pct.Units())

	require.Equal(t, 0.25, mathutil.AsPercent(monetary.XMR(1e11), monetary.XMR(4e11)))
	require.Equal(t, 0.0, mathutil.AsPercent(monetary.XMR(1e11), monetary.XMR(0)))

	require.Equal(t, 2.5, mathutil.FeePerByte(monetary.XMR(250), 100))
	require.Equal(t, 0.0, mathutil.FeePerByte(monetary.XMR(250), 0))
}
