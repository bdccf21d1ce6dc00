package domain

import "context"

// TradeRepository persists the multisig trade state. Implementations must
// keep UpdateTrade atomic per trade id: read, apply, write as one unit.
type TradeRepository interface {
	GetOrCreateTrade(ctx context.Context, tradeID string, role Role) (*Trade, error)
	GetTrade(ctx context.Context, tradeID string) (*Trade, error)
	GetAllTrades(ctx context.Context) ([]*Trade, error)
	UpdateTrade(
		ctx context.Context,
		tradeID string,
		updateFn func(t *Trade) (*Trade, error),
	) error
	DeleteTrade(ctx context.Context, tradeID string) error
}
