package inmemory

import (
	"context"

	"github.com/xmrswap-network/xmrswap-daemon/internal/core/domain"
)

type tradeRepositoryImpl struct {
	store *tradeInmemoryStore
}

// NewTradeRepositoryImpl returns a new inmemory TradeRepository implementation.
func NewTradeRepositoryImpl(db *DbManager) domain.TradeRepository {
	return &tradeRepositoryImpl{db.tradeStore}
}

func (r tradeRepositoryImpl) GetOrCreateTrade(
	_ context.Context, tradeID string, role domain.Role,
) (*domain.Trade, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	return r.getOrCreateTrade(tradeID, role)
}

func (r tradeRepositoryImpl) GetTrade(
	_ context.Context, tradeID string,
) (*domain.Trade, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	trade, ok := r.store.trades[tradeID]
	if !ok {
		return nil, ErrTradeNotFound
	}
	copied := *trade
	return &copied, nil
}

func (r tradeRepositoryImpl) GetAllTrades(_ context.Context) ([]*domain.Trade, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	trades := make([]*domain.Trade, 0, len(r.store.trades))
	for _, trade := range r.store.trades {
		copied := *trade
		trades = append(trades, &copied)
	}
	return trades, nil
}

func (r tradeRepositoryImpl) UpdateTrade(
	_ context.Context,
	tradeID string,
	updateFn func(t *domain.Trade) (*domain.Trade, error),
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	currentTrade, ok := r.store.trades[tradeID]
	if !ok {
		return ErrTradeNotFound
	}

	updatedTrade, err := updateFn(currentTrade)
	if err != nil {
		return err
	}

	r.store.trades[tradeID] = updatedTrade
	return nil
}

func (r tradeRepositoryImpl) DeleteTrade(_ context.Context, tradeID string) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.trades[tradeID]; !ok {
		return ErrTradeNotFound
	}
	delete(r.store.trades, tradeID)
	return nil
}

func (r tradeRepositoryImpl) getOrCreateTrade(
	tradeID string, role domain.Role,
) (*domain.Trade, error) {
	if trade, ok := r.store.trades[tradeID]; ok {
		copied := *trade
		return &copied, nil
	}

	trade, err := domain.NewTrade(tradeID, role)
	if err != nil {
		return nil, err
	}
	r.store.trades[tradeID] = trade
	copied := *trade
	return &copied, nil
}
