package application

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/thanhpk/randstr"

	"github.com/xmrswap-network/xmrswap-daemon/internal/core/domain"
	"github.com/xmrswap-network/xmrswap-daemon/internal/core/ports"
)

const walletPasswordLength = 24

// EscrowService drives the 2-of-2 multisig escrow handshake for a trade:
// per-trade wallet creation, multisig info exchange with the counterparty
// and finalization into the shared escrow address.
type EscrowService interface {
	// EstablishEscrow runs the full handshake for the trade and returns the
	// trade in EscrowReady phase. It blocks until the escrow is ready, the
	// handshake fails, or the context is canceled. One goroutine drives a
	// given trade; concurrent calls for the same trade id are rejected.
	EstablishEscrow(ctx context.Context, tradeID string, role domain.Role) (*domain.Trade, error)
	// GetTrade returns the trade's current state.
	GetTrade(ctx context.Context, tradeID string) (*domain.Trade, error)
	// ListTrades returns all known trades.
	ListTrades(ctx context.Context) ([]*domain.Trade, error)
	// AbortTrade marks the trade's handshake as failed.
	AbortTrade(ctx context.Context, tradeID string, cause error) error
}

type escrowService struct {
	tradeRepository  domain.TradeRepository
	walletSvc        ports.WalletService
	messengerSvc     ports.Messenger
	awaitPeerTimeout time.Duration
	walletLanguage   string

	// daemonMtx serializes open/operate/close sequences against the wallet
	// daemon, which keeps a single wallet open at a time.
	daemonMtx sync.Mutex

	// inFlight tracks trades whose handshake is currently being driven.
	inFlight sync.Map

	// passwords holds per-trade wallet passwords for the lifetime of the
	// process. They are never written to the repository.
	passwords sync.Map
}

// NewEscrowService returns an EscrowService on top of the given repository,
// wallet daemon and messenger. A zero awaitPeerTimeout waits for the
// counterparty indefinitely.
func NewEscrowService(
	tradeRepository domain.TradeRepository,
	walletSvc ports.WalletService,
	messengerSvc ports.Messenger,
	awaitPeerTimeout time.Duration,
) EscrowService {
	return &escrowService{
		tradeRepository:  tradeRepository,
		walletSvc:        walletSvc,
		messengerSvc:     messengerSvc,
		awaitPeerTimeout: awaitPeerTimeout,
		walletLanguage:   "English",
	}
}

func (s *escrowService) EstablishEscrow(
	ctx context.Context, tradeID string, role domain.Role,
) (*domain.Trade, error) {
	if _, loaded := s.inFlight.LoadOrStore(tradeID, struct{}{}); loaded {
		return nil, ErrHandshakeInProgress
	}
	defer s.inFlight.Delete(tradeID)

	trade, err := s.tradeRepository.GetOrCreateTrade(ctx, tradeID, role)
	if err != nil {
		return nil, err
	}
	if trade.IsEscrowReady() {
		return trade, nil
	}
	if trade.IsAborted() {
		return nil, domain.ErrTradeAborted
	}

	// Subscribe before sending anything so a counterparty that moves faster
	// than us cannot slip its info past the handshake.
	inbound, err := s.messengerSvc.Subscribe(tradeID)
	if err != nil {
		return nil, err
	}
	defer s.messengerSvc.Unsubscribe(tradeID)

	localInfo, err := s.prepareLocalInfo(ctx, trade)
	if err != nil {
		return nil, s.abort(ctx, tradeID, err)
	}

	if err := s.exchangeInfos(ctx, trade, localInfo, inbound); err != nil {
		return nil, s.abort(ctx, tradeID, err)
	}

	sharedAddress, err := s.finalize(ctx, trade)
	if err != nil {
		return nil, s.abort(ctx, tradeID, err)
	}

	if err := s.update(ctx, tradeID, func(t *domain.Trade) error {
		return t.EscrowReady(sharedAddress)
	}); err != nil {
		return nil, err
	}

	log.Infof(
		"trade %s: escrow ready, shared address %s", tradeID, sharedAddress,
	)
	return s.tradeRepository.GetTrade(ctx, tradeID)
}

func (s *escrowService) GetTrade(
	ctx context.Context, tradeID string,
) (*domain.Trade, error) {
	return s.tradeRepository.GetTrade(ctx, tradeID)
}

func (s *escrowService) ListTrades(ctx context.Context) ([]*domain.Trade, error) {
	return s.tradeRepository.GetAllTrades(ctx)
}

func (s *escrowService) AbortTrade(
	ctx context.Context, tradeID string, cause error,
) error {
	return s.abortTrade(ctx, tradeID, cause)
}

// prepareLocalInfo creates the per-trade wallet and produces this side's
// multisig info. The wallet is closed again before returning so the daemon
// is free for other trades.
func (s *escrowService) prepareLocalInfo(
	ctx context.Context, trade *domain.Trade,
) (string, error) {
	password := randstr.String(walletPasswordLength)

	s.daemonMtx.Lock()
	defer s.daemonMtx.Unlock()

	if err := s.walletSvc.CreateWallet(
		trade.WalletName, password, s.walletLanguage,
	); err != nil {
		return "", err
	}
	s.passwords.Store(trade.Id, password)

	if err := s.update(ctx, trade.Id, func(t *domain.Trade) error {
		return t.WalletCreated(password)
	}); err != nil {
		s.closeQuietly(trade.Id)
		return "", err
	}
	log.Debugf("trade %s: wallet %s created", trade.Id, trade.WalletName)

	localInfo, err := s.walletSvc.PrepareMultisig()
	if err != nil {
		// the daemon's single open-wallet context must not be left
		// holding a dead trade's wallet
		s.closeQuietly(trade.Id)
		return "", err
	}
	if err := s.walletSvc.CloseWallet(); err != nil {
		return "", err
	}

	if err := s.update(ctx, trade.Id, func(t *domain.Trade) error {
		return t.MultisigPrepared(localInfo)
	}); err != nil {
		return "", err
	}
	return localInfo, nil
}

// exchangeInfos sends the local multisig info and waits for both the
// counterparty's delivery ack and its own info. The two events can arrive in
// either order.
func (s *escrowService) exchangeInfos(
	ctx context.Context,
	trade *domain.Trade,
	localInfo string,
	inbound <-chan ports.MultisigMessage,
) error {
	ack, err := s.messengerSvc.SendMultisigInfo(ctx, trade.Id, localInfo)
	if err != nil {
		return err
	}
	if err := s.update(ctx, trade.Id, func(t *domain.Trade) error {
		return t.InfoSent()
	}); err != nil {
		return err
	}
	log.Debugf("trade %s: multisig info sent", trade.Id)

	var expiry <-chan time.Time
	if s.awaitPeerTimeout > 0 {
		timer := time.NewTimer(s.awaitPeerTimeout)
		defer timer.Stop()
		expiry = timer.C
	}

	acked, peerReceived := false, false
	for !acked || !peerReceived {
		select {
		case err, ok := <-ack:
			if ok && err != nil {
				return err
			}
			if !acked {
				acked = true
				if err := s.update(ctx, trade.Id, func(t *domain.Trade) error {
					return t.AwaitingPeerInfo()
				}); err != nil {
					return err
				}
			}
			ack = nil

		case msg, ok := <-inbound:
			if !ok {
				return ErrAwaitPeerTimeout
			}
			if msg.TradeID != trade.Id || peerReceived {
				continue
			}
			// The counterparty may deliver before our own send is acked;
			// park the info and apply it once the phase allows.
			peerReceived = true
			if !acked {
				if err := s.waitForAck(ctx, trade.Id, ack, expiry); err != nil {
					return err
				}
				acked = true
			}
			if err := s.update(ctx, trade.Id, func(t *domain.Trade) error {
				return t.PeerInfoReceived(msg.Info)
			}); err != nil {
				return err
			}
			log.Debugf("trade %s: peer multisig info received", trade.Id)

		case <-expiry:
			return ErrAwaitPeerTimeout

		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (s *escrowService) waitForAck(
	ctx context.Context,
	tradeID string,
	ack <-chan error,
	expiry <-chan time.Time,
) error {
	select {
	case err, ok := <-ack:
		if ok && err != nil {
			return err
		}
		return s.update(ctx, tradeID, func(t *domain.Trade) error {
			return t.AwaitingPeerInfo()
		})
	case <-expiry:
		return ErrSendNotAcknowledged
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finalize imports the counterparty's info and completes the multisig
// exchange. Both sides pass [peerInfo, localInfo] so finalization yields the
// same shared address regardless of who finishes first.
func (s *escrowService) finalize(
	ctx context.Context, trade *domain.Trade,
) (string, error) {
	stored, err := s.tradeRepository.GetTrade(ctx, trade.Id)
	if err != nil {
		return "", err
	}
	infos, err := stored.MultisigInfoList()
	if err != nil {
		return "", err
	}
	password, ok := s.passwords.Load(trade.Id)
	if !ok {
		return "", domain.ErrTradeMustHaveWallet
	}

	s.daemonMtx.Lock()
	defer s.daemonMtx.Unlock()

	if err := s.walletSvc.OpenWallet(
		trade.WalletName, password.(string),
	); err != nil {
		return "", err
	}
	if err := s.walletSvc.ImportMultisigInfo(infos[:1]); err != nil {
		s.closeQuietly(trade.Id)
		return "", err
	}
	sharedAddress, err := s.walletSvc.FinalizeMultisig(infos, password.(string))
	if err != nil {
		s.closeQuietly(trade.Id)
		return "", err
	}
	if err := s.walletSvc.CloseWallet(); err != nil {
		return "", err
	}
	return sharedAddress, nil
}

// abort marks the trade failed and returns the original cause for the
// caller to surface.
func (s *escrowService) abort(ctx context.Context, tradeID string, cause error) error {
	if err := s.abortTrade(ctx, tradeID, cause); err != nil {
		log.WithError(err).Warnf("trade %s: could not record abort", tradeID)
	}
	return cause
}

func (s *escrowService) abortTrade(
	ctx context.Context, tradeID string, cause error,
) error {
	log.WithError(cause).Warnf("trade %s: handshake aborted", tradeID)
	s.passwords.Delete(tradeID)
	return s.tradeRepository.UpdateTrade(
		ctx, tradeID, func(t *domain.Trade) (*domain.Trade, error) {
			t.Abort(cause)
			return t, nil
		},
	)
}

func (s *escrowService) closeQuietly(tradeID string) {
	if err := s.walletSvc.CloseWallet(); err != nil {
		log.WithError(err).Warnf("trade %s: could not close wallet", tradeID)
	}
}

func (s *escrowService) update(
	ctx context.Context, tradeID string, transition func(t *domain.Trade) error,
) error {
	return s.tradeRepository.UpdateTrade(
		ctx, tradeID, func(t *domain.Trade) (*domain.Trade, error) {
			if err := transition(t); err != nil {
				return nil, err
			}
			return t, nil
		},
	)
}
