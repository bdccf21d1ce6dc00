package application

import (
	"github.com/shopspring/decimal"

	"github.com/xmrswap-network/xmrswap-daemon/pkg/conversion"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/mathutil"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
)

// Default trade-fee parameters, expressed in native atomic units. The
// per-coin values scale with the trade amount, the minimums floor the result.
const (
	DefaultMakerFeePerCoin = 1_000_000_000 // 0.001 XMR per whole XMR traded
	DefaultTakerFeePerCoin = 3_000_000_000 // 0.003 XMR per whole XMR traded
	DefaultMinMakerFee     = 50_000_000    // 0.00005 XMR
	DefaultMinTakerFee     = 50_000_000    // 0.00005 XMR
)

// FeeConfig carries the fee parameters in native atomic units. Colored-token
// fees are derived from these at the caller-supplied rate.
type FeeConfig struct {
	MakerFeePerCoin int64
	TakerFeePerCoin int64
	MinMakerFee     int64
	MinTakerFee     int64
}

// DefaultFeeConfig returns the default fee parameters.
func DefaultFeeConfig() FeeConfig {
	return FeeConfig{
		MakerFeePerCoin: DefaultMakerFeePerCoin,
		TakerFeePerCoin: DefaultTakerFeePerCoin,
		MinMakerFee:     DefaultMinMakerFee,
		MinTakerFee:     DefaultMinTakerFee,
	}
}

// FeeService computes maker and taker trade fees, priced either in the
// native coin or in the colored fee token at the caller-supplied rate.
type FeeService interface {
	FeePerUnit(maker, payInColoredToken bool, rate decimal.Decimal) (monetary.Amount, error)
	MinFee(maker, payInColoredToken bool, rate decimal.Decimal) (monetary.Amount, error)
	TradeFee(amount *monetary.Amount, maker, payInColoredToken bool, rate decimal.Decimal) (*monetary.Amount, error)
	IsBalanceSufficientForFee(available monetary.Amount, amount *monetary.Amount, maker, payInColoredToken bool, rate decimal.Decimal) (bool, error)
	PreferredFeeCurrency(prefersColoredToken, sufficientNativeBalance bool) monetary.Family
}

type feeService struct {
	cfg FeeConfig
}

// NewFeeService returns a FeeService with the given parameters.
func NewFeeService(cfg FeeConfig) FeeService {
	return &feeService{cfg: cfg}
}

// FeePerUnit returns the fee charged per whole coin traded, in the selected
// fee currency.
func (s *feeService) FeePerUnit(
	maker, payInColoredToken bool, rate decimal.Decimal,
) (monetary.Amount, error) {
	perCoin := s.cfg.TakerFeePerCoin
	if maker {
		perCoin = s.cfg.MakerFeePerCoin
	}
	return s.inFeeCurrency(monetary.XMR(perCoin), payInColoredToken, rate)
}

// MinFee returns the fee floor in the selected fee currency.
func (s *feeService) MinFee(
	maker, payInColoredToken bool, rate decimal.Decimal,
) (monetary.Amount, error) {
	min := s.cfg.MinTakerFee
	if maker {
		min = s.cfg.MinMakerFee
	}
	return s.inFeeCurrency(monetary.XMR(min), payInColoredToken, rate)
}

// TradeFee returns max(amount-proportional fee, minimum fee) in the selected
// fee currency. A nil amount means the amount is not known yet and yields a
// nil fee, not an error.
func (s *feeService) TradeFee(
	amount *monetary.Amount, maker, payInColoredToken bool, rate decimal.Decimal,
) (*monetary.Amount, error) {
	if amount == nil {
		return nil, nil
	}

	perUnit, err := s.FeePerUnit(maker, payInColoredToken, rate)
	if err != nil {
		return nil, err
	}
	min, err := s.MinFee(maker, payInColoredToken, rate)
	if err != nil {
		return nil, err
	}

	fee := monetary.Max(mathutil.FeePerUnitOf(perUnit, *amount), min)
	return &fee, nil
}

// IsBalanceSufficientForFee returns whether the available balance covers the
// trade fee for the candidate amount. A nil amount returns true: the fee is
// not determinable yet and must not block the caller.
func (s *feeService) IsBalanceSufficientForFee(
	available monetary.Amount, amount *monetary.Amount,
	maker, payInColoredToken bool, rate decimal.Decimal,
) (bool, error) {
	fee, err := s.TradeFee(amount, maker, payInColoredToken, rate)
	if err != nil {
		return false, err
	}
	if fee == nil {
		return true, nil
	}

	left, err := available.Sub(*fee)
	if err != nil {
		return false, err
	}
	return !left.IsNegative(), nil
}

// PreferredFeeCurrency selects the fee currency: the colored token when the
// user prefers it or when the native balance cannot cover the fee, otherwise
// the native coin.
func (s *feeService) PreferredFeeCurrency(
	prefersColoredToken, sufficientNativeBalance bool,
) monetary.Family {
	if prefersColoredToken || !sufficientNativeBalance {
		return monetary.FamilyBSQ
	}
	return monetary.FamilyXMR
}

func (s *feeService) inFeeCurrency(
	native monetary.Amount, payInColoredToken bool, rate decimal.Decimal,
) (monetary.Amount, error) {
	if !payInColoredToken {
		return native, nil
	}
	return conversion.ToForeign(native, monetary.FamilyBSQ, rate)
}
