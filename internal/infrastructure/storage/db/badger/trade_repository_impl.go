package dbbadger

import (
	"context"
	"errors"

	"github.com/timshannon/badgerhold/v4"

	"github.com/xmrswap-network/xmrswap-daemon/internal/core/domain"
)

// ErrTradeNotFound is thrown when the requested trade id is unknown.
var ErrTradeNotFound = errors.New("trade not found")

type tradeRepositoryImpl struct {
	db *DbManager
}

// NewTradeRepositoryImpl returns a badger-backed TradeRepository.
func NewTradeRepositoryImpl(db *DbManager) domain.TradeRepository {
	return tradeRepositoryImpl{
		db: db,
	}
}

func (t tradeRepositoryImpl) GetOrCreateTrade(
	ctx context.Context,
	tradeID string,
	role domain.Role,
) (*domain.Trade, error) {
	trade, err := t.getTrade(ctx, tradeID)
	if err != nil && !errors.Is(err, ErrTradeNotFound) {
		return nil, err
	}
	if trade != nil {
		return trade, nil
	}

	trade, err = domain.NewTrade(tradeID, role)
	if err != nil {
		return nil, err
	}
	if err := t.insertTrade(ctx, *trade); err != nil {
		return nil, err
	}
	return trade, nil
}

func (t tradeRepositoryImpl) GetTrade(
	ctx context.Context,
	tradeID string,
) (*domain.Trade, error) {
	return t.getTrade(ctx, tradeID)
}

func (t tradeRepositoryImpl) GetAllTrades(
	ctx context.Context,
) ([]*domain.Trade, error) {
	query := &badgerhold.Query{}
	tr, err := t.findTrades(ctx, query)
	if err != nil {
		return nil, err
	}
	trades := make([]*domain.Trade, 0, len(tr))
	for i := range tr {
		trades = append(trades, &tr[i])
	}

	return trades, nil
}

func (t tradeRepositoryImpl) UpdateTrade(
	ctx context.Context,
	tradeID string,
	updateFn func(t *domain.Trade) (*domain.Trade, error),
) error {
	currentTrade, err := t.getTrade(ctx, tradeID)
	if err != nil {
		return err
	}

	updatedTrade, err := updateFn(currentTrade)
	if err != nil {
		return err
	}

	return t.updateTrade(ctx, updatedTrade.Id, *updatedTrade)
}

func (t tradeRepositoryImpl) DeleteTrade(
	ctx context.Context,
	tradeID string,
) error {
	if err := t.db.Store.Delete(tradeID, domain.Trade{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return ErrTradeNotFound
		}
		return err
	}
	return nil
}

func (t tradeRepositoryImpl) findTrades(
	ctx context.Context,
	query *badgerhold.Query,
) ([]domain.Trade, error) {
	var trades []domain.Trade
	err := t.db.Store.Find(&trades, query)

	return trades, err
}

func (t tradeRepositoryImpl) getTrade(
	ctx context.Context,
	tradeID string,
) (*domain.Trade, error) {
	var trade domain.Trade
	if err := t.db.Store.Get(tradeID, &trade); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, ErrTradeNotFound
		}
		return nil, err
	}

	return &trade, nil
}

func (t tradeRepositoryImpl) updateTrade(
	ctx context.Context,
	tradeID string,
	trade domain.Trade,
) error {
	return t.db.Store.Update(tradeID, trade)
}

func (t tradeRepositoryImpl) insertTrade(
	ctx context.Context,
	trade domain.Trade,
) error {
	if err := t.db.Store.Insert(trade.Id, &trade); err != nil {
		if err != badgerhold.ErrKeyExists {
			return err
		}
	}
	return nil
}
