package monetary

import "github.com/shopspring/decimal"

// Smallest-unit exponents of the three ledgers handled by the daemon.
const (
	// MoneroExponent is the number of decimals of one monero (piconero units).
	MoneroExponent = 12
	// BitcoinExponent is the number of decimals of one bitcoin (satoshi units).
	BitcoinExponent = 8
	// ColoredTokenExponent is the exponent of the colored fee token's ledger.
	// The token itself is scaled against a full 8-exponent coin, see
	// ColoredTokenScale.
	ColoredTokenExponent = 8
)

// ColoredTokenScale relates the colored token's display unit to the plain
// 8-exponent coin: one token is carried by 10^2 ledger units, leaving a 10^6
// scaling factor against a whole coin. All rescale math must go through
// conversion.Rescale, never duplicate this constant at call sites.
var ColoredTokenScale = decimal.New(1, 6)

// Family identifies one of the three ledgers an Amount can live on.
type Family int

const (
	// FamilyXMR is the native monero ledger, exponent 12.
	FamilyXMR Family = iota
	// FamilyBTC is the plain bitcoin ledger, exponent 8.
	FamilyBTC
	// FamilyBSQ is the colored fee-token ledger, exponent 8 with the
	// colored-coin scaling factor.
	FamilyBSQ
)

// Exponent returns the smallest-unit exponent of the family.
func (f Family) Exponent() int {
	switch f {
	case FamilyXMR:
		return MoneroExponent
	default:
		return BitcoinExponent
	}
}

// IsColored returns whether the family is the colored fee token.
func (f Family) IsColored() bool {
	return f == FamilyBSQ
}

func (f Family) String() string {
	switch f {
	case FamilyXMR:
		return "XMR"
	case FamilyBTC:
		return "BTC"
	case FamilyBSQ:
		return "BSQ"
	default:
		return "unknown"
	}
}
