package ports

import "context"

// MultisigMessage is a counterparty's multisig info delivered over the
// trading network for a specific trade.
type MultisigMessage struct {
	TradeID string
	Sender  string
	Info    string
}

// Messenger is the peer-to-peer messaging surface of the escrow handshake.
// Sends are asynchronous: SendMultisigInfo returns as soon as the message is
// handed to the transport, and the returned channel fires exactly once when
// the counterparty acknowledges arrival, or with an error if delivery failed.
type Messenger interface {
	// SendMultisigInfo sends this side's multisig info to the trade's
	// counterparty. The ack channel is buffered; the caller may consume it
	// at any later point without blocking the transport.
	SendMultisigInfo(ctx context.Context, tradeID, info string) (<-chan error, error)
	// Subscribe returns the stream of inbound multisig messages for the
	// given trade. Messages may arrive before the local side has sent its
	// own info; the channel buffers them until consumed.
	Subscribe(tradeID string) (<-chan MultisigMessage, error)
	// Unsubscribe tears down the trade's inbound stream.
	Unsubscribe(tradeID string)
	// Close shuts the messenger down and releases all subscriptions.
	Close() error
}
