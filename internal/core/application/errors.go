package application

import "errors"

var (
	// ErrAwaitPeerTimeout is thrown when the counterparty's multisig info
	// does not arrive within the configured wait window.
	ErrAwaitPeerTimeout = errors.New(
		"timed out waiting for the counterparty's multisig info",
	)
	// ErrSendNotAcknowledged is thrown when the transport reports a
	// delivery failure for the local multisig info.
	ErrSendNotAcknowledged = errors.New(
		"counterparty did not acknowledge the multisig info",
	)
	// ErrHandshakeInProgress is thrown when a second goroutine attempts to
	// drive a trade whose handshake is already being driven.
	ErrHandshakeInProgress = errors.New(
		"a handshake for this trade is already in progress",
	)
)
