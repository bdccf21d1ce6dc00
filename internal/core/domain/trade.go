package domain

import (
	"fmt"
	"time"
)

// TradePhase is the current step of the multisig escrow handshake, together
// with a Failed flag that marks the terminal Aborted state.
type TradePhase struct {
	Code   int
	Failed bool
}

// Trade is the per-trade multisig escrow state. One Trade exists per trade id
// and is mutated exclusively by the coordinator driving that trade: phases
// advance monotonically through the transition methods below.
type Trade struct {
	Id                string
	Role              Role
	WalletName        string
	LocalMultisigInfo string
	PeerMultisigInfo  string
	EscrowAddress     string
	Phase             TradePhase
	FailureReason     string
	CreatedAt         int64
	FinalizedAt       int64

	// WalletPassword is a per-trade secret generated once and held only in
	// memory for the session; it is never persisted.
	WalletPassword string `json:"-" badgerhold:"-"`
}

// NewTrade returns an idle trade for the given id and role. The per-trade
// wallet name is derived from the trade id.
func NewTrade(id string, role Role) (*Trade, error) {
	if role != RoleMaker && role != RoleTaker {
		return nil, ErrInvalidRole
	}
	return &Trade{
		Id:         id,
		Role:       role,
		WalletName: walletName(id),
		Phase:      TradePhase{Code: TradePhaseIdle},
		CreatedAt:  time.Now().Unix(),
	}, nil
}

func walletName(tradeID string) string {
	return fmt.Sprintf("xmr-trade-%s", tradeID)
}

// WalletCreated brings an idle trade to the WalletCreated phase, recording
// the freshly generated wallet password.
func (t *Trade) WalletCreated(password string) error {
	if err := t.checkNotTerminal(); err != nil {
		return err
	}
	if t.Phase.Code != TradePhaseIdle {
		return ErrTradeMustBeIdle
	}
	t.WalletPassword = password
	t.Phase.Code = TradePhaseWalletCreated
	return nil
}

// MultisigPrepared stores the local multisig info returned by the wallet
// daemon and advances to the MultisigPrepared phase.
func (t *Trade) MultisigPrepared(localInfo string) error {
	if err := t.checkNotTerminal(); err != nil {
		return err
	}
	if t.Phase.Code != TradePhaseWalletCreated {
		return ErrTradeMustHaveWallet
	}
	if localInfo == "" {
		return ErrEmptyMultisigInfo
	}
	t.LocalMultisigInfo = localInfo
	t.Phase.Code = TradePhaseMultisigPrepared
	return nil
}

// InfoSent marks the local multisig info as handed to the messaging channel.
func (t *Trade) InfoSent() error {
	if err := t.checkNotTerminal(); err != nil {
		return err
	}
	if t.Phase.Code != TradePhaseMultisigPrepared {
		return ErrTradeMustBePrepared
	}
	t.Phase.Code = TradePhaseInfoSent
	return nil
}

// AwaitingPeerInfo marks the send as acknowledged; the trade now waits for
// the counterparty's multisig info to arrive.
func (t *Trade) AwaitingPeerInfo() error {
	if err := t.checkNotTerminal(); err != nil {
		return err
	}
	if t.Phase.Code != TradePhaseInfoSent {
		return ErrTradeMustHaveSentInfo
	}
	t.Phase.Code = TradePhaseAwaitingPeerInfo
	return nil
}

// PeerInfoReceived stores the counterparty's multisig info and advances to
// Finalizing. Both sides' info must be present before finalization.
func (t *Trade) PeerInfoReceived(peerInfo string) error {
	if err := t.checkNotTerminal(); err != nil {
		return err
	}
	if t.Phase.Code != TradePhaseAwaitingPeerInfo {
		return ErrTradeMustHaveSentInfo
	}
	if peerInfo == "" {
		return ErrEmptyMultisigInfo
	}
	if t.LocalMultisigInfo == "" {
		return ErrMissingMultisigInfo
	}
	t.PeerMultisigInfo = peerInfo
	t.Phase.Code = TradePhaseFinalizing
	return nil
}

// EscrowReady records the shared multisig address returned by finalization.
// The trade's job is done; the address is the now-active escrow destination.
func (t *Trade) EscrowReady(sharedAddress string) error {
	if err := t.checkNotTerminal(); err != nil {
		return err
	}
	if t.Phase.Code != TradePhaseFinalizing {
		return ErrTradeMustBeFinalizing
	}
	t.EscrowAddress = sharedAddress
	t.Phase.Code = TradePhaseEscrowReady
	t.FinalizedAt = time.Now().Unix()
	return nil
}

// Abort marks the trade as failed with the underlying cause. Aborting is
// idempotent and allowed from any phase except EscrowReady.
func (t *Trade) Abort(cause error) {
	if t.Phase.Failed || t.IsEscrowReady() {
		return
	}
	t.Phase.Failed = true
	if cause != nil {
		t.FailureReason = cause.Error()
	}
	t.WalletPassword = ""
}

// MultisigInfoList returns the argument order finalization requires: the
// peer's info first, then the local one. Both sides calling finalize with
// this order yields the same shared address regardless of who goes first.
func (t *Trade) MultisigInfoList() ([]string, error) {
	if t.LocalMultisigInfo == "" || t.PeerMultisigInfo == "" {
		return nil, ErrMissingMultisigInfo
	}
	return []string{t.PeerMultisigInfo, t.LocalMultisigInfo}, nil
}

func (t *Trade) checkNotTerminal() error {
	if t.Phase.Failed {
		return ErrTradeAborted
	}
	if t.Phase.Code == TradePhaseEscrowReady {
		return ErrTradeCompleted
	}
	return nil
}

// IsIdle returns whether the handshake has not started yet.
func (t *Trade) IsIdle() bool {
	return t.Phase.Code == TradePhaseIdle && !t.Phase.Failed
}

// IsAwaitingPeerInfo returns whether the trade waits for the counterparty.
func (t *Trade) IsAwaitingPeerInfo() bool {
	return t.Phase.Code == TradePhaseAwaitingPeerInfo && !t.Phase.Failed
}

// IsEscrowReady returns whether the shared escrow wallet is active.
func (t *Trade) IsEscrowReady() bool {
	return t.Phase.Code == TradePhaseEscrowReady && !t.Phase.Failed
}

// IsAborted returns whether the handshake failed terminally.
func (t *Trade) IsAborted() bool {
	return t.Phase.Failed
}
