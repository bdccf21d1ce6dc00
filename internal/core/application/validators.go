package application

import (
	"fmt"

	"github.com/xmrswap-network/xmrswap-daemon/internal/core/domain"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
)

// PreconditionError reports which offer precondition failed. Preconditions
// are checked eagerly before an offer or escrow is constructed and are never
// silently defaulted.
type PreconditionError struct {
	Check  string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition %s failed: %s", e.Check, e.Reason)
}

func precondition(check, reason string) error {
	return &PreconditionError{Check: check, Reason: reason}
}

// OfferPreconditions is the set of eager checks run before constructing an
// offer. Ban lists are injected by the caller; nil means nothing is banned.
type OfferPreconditions struct {
	BannedCurrencies     []string
	BannedPaymentMethods []domain.PaymentKind
}

// ValidateTradeFee rejects a missing or non-positive trade fee.
func (p *OfferPreconditions) ValidateTradeFee(fee *monetary.Amount) error {
	if fee == nil {
		return precondition("trade-fee", "fee is not set")
	}
	if !fee.IsPositive() {
		return precondition("trade-fee", "fee must be positive")
	}
	return nil
}

// ValidateAddress rejects an empty escrow or payout address.
func (p *OfferPreconditions) ValidateAddress(address string) error {
	if address == "" {
		return precondition("address", "address is not set")
	}
	return nil
}

// ValidateSecurityDeposit checks the buyer's security deposit percentage
// against the bounds of the payment kind.
func (p *OfferPreconditions) ValidateSecurityDeposit(
	percent float64, kind domain.PaymentKind,
) error {
	min := domain.MinSecurityDepositPercent(kind)
	max := domain.MaxSecurityDepositPercent(kind)
	if percent < min || percent > max {
		return precondition("security-deposit", fmt.Sprintf(
			"%.4f is outside the [%.4f, %.4f] bounds for %s payments",
			percent, min, max, kind,
		))
	}
	return nil
}

// ValidateCurrency rejects currency codes on the ban list.
func (p *OfferPreconditions) ValidateCurrency(code string) error {
	if code == "" {
		return precondition("currency", "currency code is not set")
	}
	for _, banned := range p.BannedCurrencies {
		if banned == code {
			return precondition("currency", code+" is banned")
		}
	}
	return nil
}

// ValidatePaymentMethod rejects payment kinds on the ban list.
func (p *OfferPreconditions) ValidatePaymentMethod(kind domain.PaymentKind) error {
	for _, banned := range p.BannedPaymentMethods {
		if banned == kind {
			return precondition("payment-method", kind.String()+" is banned")
		}
	}
	return nil
}

// ValidateOffer runs every precondition for the given offer parameters.
func (p *OfferPreconditions) ValidateOffer(
	fee *monetary.Amount,
	payoutAddress string,
	securityDepositPercent float64,
	currencyCode string,
	kind domain.PaymentKind,
) error {
	if err := p.ValidateTradeFee(fee); err != nil {
		return err
	}
	if err := p.ValidateAddress(payoutAddress); err != nil {
		return err
	}
	if err := p.ValidateSecurityDeposit(securityDepositPercent, kind); err != nil {
		return err
	}
	if err := p.ValidateCurrency(currencyCode); err != nil {
		return err
	}
	return p.ValidatePaymentMethod(kind)
}
