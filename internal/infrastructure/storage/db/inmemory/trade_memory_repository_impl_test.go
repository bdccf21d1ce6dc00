package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xmrswap-network/xmrswap-daemon/internal/core/domain"
)

func TestGetOrCreateTrade(t *testing.T) {
	repo := NewTradeRepositoryImpl(NewDbManager())
	ctx := context.Background()

	trade, err := repo.GetOrCreateTrade(ctx, "trade-1", domain.RoleMaker)
	require.NoError(t, err)
	require.True(t, trade.IsIdle())
	require.Equal(t, domain.RoleMaker, trade.Role)

	// a second call returns the same trade, not a fresh one
	again, err := repo.GetOrCreateTrade(ctx, "trade-1", domain.RoleTaker)
	require.NoError(t, err)
	require.Equal(t, trade.Id, again.Id)
	require.Equal(t, domain.RoleMaker, again.Role)
}

func TestUpdateTrade(t *testing.T) {
	repo := NewTradeRepositoryImpl(NewDbManager())
	ctx := context.Background()

	_, err := repo.GetOrCreateTrade(ctx, "trade-1", domain.RoleMaker)
	require.NoError(t, err)

	err = repo.UpdateTrade(ctx, "trade-1", func(tr *domain.Trade) (*domain.Trade, error) {
		if err := tr.WalletCreated("pw"); err != nil {
			return nil, err
		}
		return tr, nil
	})
	require.NoError(t, err)

	trade, err := repo.GetTrade(ctx, "trade-1")
	require.NoError(t, err)
	require.Equal(t, domain.TradePhaseWalletCreated, trade.Phase.Code)

	// a failing update leaves the stored trade untouched
	err = repo.UpdateTrade(ctx, "trade-1", func(tr *domain.Trade) (*domain.Trade, error) {
		return nil, tr.WalletCreated("pw2")
	})
	require.ErrorIs(t, err, domain.ErrTradeMustBeIdle)

	err = repo.UpdateTrade(ctx, "missing", func(tr *domain.Trade) (*domain.Trade, error) {
		return tr, nil
	})
	require.ErrorIs(t, err, ErrTradeNotFound)
}

func TestGetAllAndDeleteTrades(t *testing.T) {
	repo := NewTradeRepositoryImpl(NewDbManager())
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.GetOrCreateTrade(ctx, id, domain.RoleMaker)
		require.NoError(t, err)
	}

	trades, err := repo.GetAllTrades(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 3)

	require.NoError(t, repo.DeleteTrade(ctx, "b"))
	require.ErrorIs(t, repo.DeleteTrade(ctx, "b"), ErrTradeNotFound)

	_, err = repo.GetTrade(ctx, "b")
	require.ErrorIs(t, err, ErrTradeNotFound)
}
