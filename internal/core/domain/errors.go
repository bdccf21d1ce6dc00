package domain

import "errors"

var (
	// ErrTradeMustBeIdle is thrown when creating the per-trade wallet for a
	// trade whose handshake already started.
	ErrTradeMustBeIdle = errors.New("trade must be in idle phase")
	// ErrTradeMustHaveWallet ...
	ErrTradeMustHaveWallet = errors.New("trade wallet must be created first")
	// ErrTradeMustBePrepared ...
	ErrTradeMustBePrepared = errors.New("multisig info must be prepared first")
	// ErrTradeMustHaveSentInfo ...
	ErrTradeMustHaveSentInfo = errors.New("local multisig info must be sent first")
	// ErrMissingMultisigInfo is thrown when finalizing before both sides'
	// multisig info is available.
	ErrMissingMultisigInfo = errors.New("both local and peer multisig info are required to finalize")
	// ErrTradeMustBeFinalizing ...
	ErrTradeMustBeFinalizing = errors.New("trade must be in finalizing phase")
	// ErrTradeAborted is thrown when operating on an aborted trade; a fresh
	// attempt requires a new trade with a new wallet.
	ErrTradeAborted = errors.New("trade handshake was aborted")
	// ErrTradeCompleted ...
	ErrTradeCompleted = errors.New("escrow is already active for this trade")
	// ErrInvalidRole ...
	ErrInvalidRole = errors.New("role must be maker or taker")
	// ErrEmptyMultisigInfo ...
	ErrEmptyMultisigInfo = errors.New("multisig info must not be empty")
)
