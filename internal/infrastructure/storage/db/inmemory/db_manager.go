package inmemory

import (
	"sync"

	"github.com/xmrswap-network/xmrswap-daemon/internal/core/domain"
)

type tradeInmemoryStore struct {
	trades map[string]*domain.Trade
	locker *sync.Mutex
}

// DbManager holds the in-memory stores. It backs tests and ephemeral runs
// where nothing must survive a restart.
type DbManager struct {
	tradeStore *tradeInmemoryStore
}

// NewDbManager returns an empty in-memory DbManager.
func NewDbManager() *DbManager {
	return &DbManager{
		tradeStore: &tradeInmemoryStore{
			trades: map[string]*domain.Trade{},
			locker: &sync.Mutex{},
		},
	}
}
