package monetary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		exponent int
		want     int64
		wantErr  error
	}{
		{"one_coin", "1", monetary.MoneroExponent, 1e12, nil},
		{"fraction", "0.10", monetary.MoneroExponent, 1e11, nil},
		{"exponent_notation", "1.23E3", monetary.MoneroExponent, 1_230_000_000_000_000, nil},
		{"smallest_unit", "0.000000000001", monetary.MoneroExponent, 1, nil},
		{"btc_exponent", "0.0015", monetary.BitcoinExponent, 150_000, nil},
		{"negative", "-2.5", monetary.MoneroExponent, -25e11, nil},
		{"garbage", "not-a-number", monetary.MoneroExponent, 0, monetary.ErrMalformedAmount},
		{"fractional_unit", "0.0000000000001", monetary.MoneroExponent, 0, monetary.ErrFractionalUnit},
		{"fractional_satoshi", "0.000000001", monetary.BitcoinExponent, 0, monetary.ErrFractionalUnit},
		{"out_of_range", "10000000000", monetary.MoneroExponent, 0, monetary.ErrOverflow},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			got, err := monetary.Parse(tt.input, tt.exponent)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Units())
			require.Equal(t, tt.exponent, got.Exponent())
		})
	}
}

func TestArithmetic(t *testing.T) {
	one := monetary.XMR(1e12)
	half := monetary.XMR(5e11)

	sum, err := one.Add(half)
	require.NoError(t, err)
	require.Equal(t, int64(15e11), sum.Units())

	diff, err := one.Sub(half)
	require.NoError(t, err)
	require.Equal(t, int64(5e11), diff.Units())

	prod, err := half.Mul(3)
	require.NoError(t, err)
	require.Equal(t, int64(15e11), prod.Units())

	quot, err := one.Div(3)
	require.NoError(t, err)
	require.Equal(t, int64(333_333_333_333), quot.Units())

	// division truncates toward zero for negative values too
	negQuot, err := one.Neg().Div(3)
	require.NoError(t, err)
	require.Equal(t, int64(-333_333_333_333), negQuot.Units())
}

func TestArithmeticOverflow(t *testing.T) {
	max := monetary.XMR(math.MaxInt64)
	one := monetary.XMR(1)

	_, err := max.Add(one)
	require.ErrorIs(t, err, monetary.ErrOverflow)

	_, err = max.Neg().Sub(monetary.XMR(2))
	require.ErrorIs(t, err, monetary.ErrOverflow)

	_, err = max.Mul(2)
	require.ErrorIs(t, err, monetary.ErrOverflow)
}

func TestExponentMismatch(t *testing.T) {
	_, err := monetary.XMR(1).Add(monetary.BTC(1))
	require.ErrorIs(t, err, monetary.ErrExponentMismatch)

	_, err = monetary.XMR(1).Sub(monetary.BTC(1))
	require.ErrorIs(t, err, monetary.ErrExponentMismatch)
}

func TestOrderingAndPredicates(t *testing.T) {
	a := monetary.XMR(100)
	b := monetary.XMR(200)

	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(monetary.XMR(100)))

	require.True(t, a.IsPositive())
	require.True(t, a.Neg().IsNegative())
	require.True(t, monetary.Zero(monetary.FamilyXMR).IsZero())
	require.Equal(t, 0, monetary.Zero(monetary.FamilyXMR).Signum())

	require.Equal(t, a, monetary.Min(a, b))
	require.Equal(t, b, monetary.Max(a, b))
}

func TestDust(t *testing.T) {
	require.True(t, monetary.XMR(9_999_999_999).IsDust())
	require.False(t, monetary.XMR(1e10).IsDust())
}

func TestString(t *testing.T) {
	require.Equal(t, "0.0015", monetary.BTC(150_000).String())
	require.Equal(t, "1", monetary.XMR(1e12).String())
}
