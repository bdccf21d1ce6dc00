package domain

// Phase codes of the multisig escrow handshake. Phases only ever advance;
// no phase is revisited. Aborted is terminal and reachable from any
// non-terminal phase.
const (
	TradePhaseIdle = iota
	TradePhaseWalletCreated
	TradePhaseMultisigPrepared
	TradePhaseInfoSent
	TradePhaseAwaitingPeerInfo
	TradePhaseFinalizing
	TradePhaseEscrowReady
)

// Role identifies which counterparty this side of the trade plays.
type Role string

const (
	RoleMaker Role = "maker"
	RoleTaker Role = "taker"
)

// PaymentKind is the tagged variant over payment-method kinds. Kind-specific
// behavior is selected by switching on the kind, never by inspecting account
// subtypes.
type PaymentKind int

const (
	PaymentKindFiatTransfer PaymentKind = iota
	PaymentKindCashDeposit
	PaymentKindFaceToFace
	PaymentKindCrypto
)

// RoundingFactor returns the fiat-volume rounding factor of the payment kind:
// cash deposits settle in multiples of 10 fiat units, everything else in
// whole units.
func (k PaymentKind) RoundingFactor() int64 {
	if k == PaymentKindCashDeposit {
		return 10
	}
	return 1
}

// IsCrypto returns whether the payment kind settles on a crypto ledger.
func (k PaymentKind) IsCrypto() bool {
	return k == PaymentKindCrypto
}

func (k PaymentKind) String() string {
	switch k {
	case PaymentKindFiatTransfer:
		return "fiat-transfer"
	case PaymentKindCashDeposit:
		return "cash-deposit"
	case PaymentKindFaceToFace:
		return "face-to-face"
	case PaymentKindCrypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// Security-deposit bounds as a percentage of the trade amount, by payment
// kind.
const (
	MinSecurityDepositCrypto     = 0.005
	MaxSecurityDepositCrypto     = 0.2
	DefaultSecurityDepositCrypto = 0.02
	MinSecurityDepositFiat       = 0.05
	MaxSecurityDepositFiat       = 0.5
	DefaultSecurityDepositFiat   = 0.1
	SellerSecurityDeposit        = 0.05
)

// MinSecurityDepositPercent returns the lower bound for the buyer's security
// deposit for the given payment kind.
func MinSecurityDepositPercent(kind PaymentKind) float64 {
	if kind.IsCrypto() {
		return MinSecurityDepositCrypto
	}
	return MinSecurityDepositFiat
}

// MaxSecurityDepositPercent returns the upper bound for the buyer's security
// deposit for the given payment kind.
func MaxSecurityDepositPercent(kind PaymentKind) float64 {
	if kind.IsCrypto() {
		return MaxSecurityDepositCrypto
	}
	return MaxSecurityDepositFiat
}
