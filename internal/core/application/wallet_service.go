package application

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/xmrswap-network/xmrswap-daemon/internal/core/ports"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/monetary"
	"github.com/xmrswap-network/xmrswap-daemon/pkg/xmrrpc"
)

const (
	// recentTransferWindow is how far back RecentTransfers looks.
	recentTransferWindow = 90 * 24 * time.Hour
	// recentTransferCap is the maximum number of transfers returned.
	recentTransferCap = 100
)

// Balances is the wallet's total and spendable balance.
type Balances struct {
	Total    monetary.Amount
	Unlocked monetary.Amount
}

// WalletService exposes the primary wallet's everyday operations: balances,
// transfer history and the two-step create-then-relay send flow.
type WalletService interface {
	PrimaryAddress() (string, error)
	Balances() (*Balances, error)
	// RecentTransfers returns the wallet's transfers of the last 90 days,
	// newest first, capped at 100 entries.
	RecentTransfers() ([]xmrrpc.Transfer, error)
	// CreateTransfer builds and signs a transfer without relaying it. The
	// returned metadata is what RelayTransfer broadcasts.
	CreateTransfer(destination string, amount monetary.Amount, priority xmrrpc.SendPriority) (*xmrrpc.SendResult, error)
	// RelayTransfer broadcasts a previously created transfer and returns
	// its transaction id.
	RelayTransfer(txMetadata string) (string, error)
	// SpendProof produces a proof that this wallet authored the given tx.
	SpendProof(txID, message string) (string, error)
	// VerifySpendProof checks a counterparty's spend proof.
	VerifySpendProof(txID, message, signature string) (bool, error)
}

type walletService struct {
	walletSvc ports.WalletService
	now       func() time.Time
}

// NewWalletService returns a WalletService on top of the wallet daemon.
func NewWalletService(walletSvc ports.WalletService) WalletService {
	return &walletService{walletSvc: walletSvc, now: time.Now}
}

func (s *walletService) PrimaryAddress() (string, error) {
	return s.walletSvc.GetPrimaryAddress()
}

func (s *walletService) Balances() (*Balances, error) {
	total, err := s.walletSvc.GetBalance()
	if err != nil {
		return nil, err
	}
	unlocked, err := s.walletSvc.GetUnlockedBalance()
	if err != nil {
		return nil, err
	}
	return &Balances{
		Total:    monetary.XMR(int64(total)),
		Unlocked: monetary.XMR(int64(unlocked)),
	}, nil
}

func (s *walletService) RecentTransfers() ([]xmrrpc.Transfer, error) {
	transfers, err := s.walletSvc.GetTransfers(xmrrpc.AllTransfers())
	if err != nil {
		return nil, err
	}

	cutoff := s.now().Add(-recentTransferWindow).Unix()
	recent := make([]xmrrpc.Transfer, 0, len(transfers))
	for _, t := range transfers {
		if t.Timestamp >= cutoff {
			recent = append(recent, t)
		}
	}
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Timestamp > recent[j].Timestamp
	})
	if len(recent) > recentTransferCap {
		recent = recent[:recentTransferCap]
	}
	return recent, nil
}

func (s *walletService) CreateTransfer(
	destination string, amount monetary.Amount, priority xmrrpc.SendPriority,
) (*xmrrpc.SendResult, error) {
	res, err := s.walletSvc.Send(xmrrpc.SendRequest{
		Destinations: []xmrrpc.Destination{{
			Address: destination,
			Amount:  uint64(amount.Units()),
		}},
		Priority:   priority,
		DoNotRelay: true,
		GetTxMeta:  true,
	})
	if err != nil {
		return nil, err
	}
	log.Debugf("created transfer of %s to %s", amount, destination)
	return res, nil
}

func (s *walletService) RelayTransfer(txMetadata string) (string, error) {
	txID, err := s.walletSvc.Relay(txMetadata)
	if err != nil {
		return "", err
	}
	log.Debugf("relayed transfer %s", txID)
	return txID, nil
}

func (s *walletService) SpendProof(txID, message string) (string, error) {
	return s.walletSvc.GetSpendProof(txID, message)
}

func (s *walletService) VerifySpendProof(
	txID, message, signature string,
) (bool, error) {
	return s.walletSvc.CheckSpendProof(txID, message, signature)
}
