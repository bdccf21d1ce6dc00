package inproc

import (
	"context"
	"errors"
	"sync"

	"github.com/xmrswap-network/xmrswap-daemon/internal/core/ports"
)

// inboundBuffer bounds how many undelivered messages a trade's stream holds.
const inboundBuffer = 16

var (
	// ErrMessengerClosed is thrown when sending through a closed messenger.
	ErrMessengerClosed = errors.New("messenger is closed")
	// ErrInboundOverflow is thrown when the counterparty's inbound buffer
	// is full; the message is dropped rather than blocking the transport.
	ErrInboundOverflow = errors.New("counterparty inbound buffer is full")
)

type pendingMsg struct {
	msg ports.MultisigMessage
	ack chan error
}

type endpoint struct {
	name string
	peer *endpoint

	mtx     sync.Mutex
	subs    map[string]chan ports.MultisigMessage
	pending map[string][]pendingMsg
	closed  bool
}

// NewDuplex returns two messengers wired back to back: everything one side
// sends arrives on the other side's subscription for the same trade id.
// The arrival ack fires as soon as the message lands in the counterparty's
// inbound buffer, which is the transport-level delivery guarantee.
func NewDuplex(nameA, nameB string) (ports.Messenger, ports.Messenger) {
	a := newEndpoint(nameA)
	b := newEndpoint(nameB)
	a.peer, b.peer = b, a
	return a, b
}

func newEndpoint(name string) *endpoint {
	return &endpoint{
		name:    name,
		subs:    map[string]chan ports.MultisigMessage{},
		pending: map[string][]pendingMsg{},
	}
}

func (e *endpoint) SendMultisigInfo(
	ctx context.Context, tradeID, info string,
) (<-chan error, error) {
	e.mtx.Lock()
	if e.closed {
		e.mtx.Unlock()
		return nil, ErrMessengerClosed
	}
	e.mtx.Unlock()

	ack := make(chan error, 1)
	msg := ports.MultisigMessage{TradeID: tradeID, Sender: e.name, Info: info}
	e.peer.deliver(msg, ack)
	return ack, nil
}

func (e *endpoint) Subscribe(tradeID string) (<-chan ports.MultisigMessage, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.closed {
		return nil, ErrMessengerClosed
	}
	if sub, ok := e.subs[tradeID]; ok {
		return sub, nil
	}

	sub := make(chan ports.MultisigMessage, inboundBuffer)
	e.subs[tradeID] = sub

	// flush anything that arrived before the subscription existed
	for _, p := range e.pending[tradeID] {
		select {
		case sub <- p.msg:
			p.ack <- nil
		default:
			p.ack <- ErrInboundOverflow
		}
		close(p.ack)
	}
	delete(e.pending, tradeID)

	return sub, nil
}

func (e *endpoint) Unsubscribe(tradeID string) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if sub, ok := e.subs[tradeID]; ok {
		close(sub)
		delete(e.subs, tradeID)
	}
}

func (e *endpoint) Close() error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	for tradeID, sub := range e.subs {
		close(sub)
		delete(e.subs, tradeID)
	}
	for tradeID, queue := range e.pending {
		for _, p := range queue {
			p.ack <- ErrMessengerClosed
			close(p.ack)
		}
		delete(e.pending, tradeID)
	}
	return nil
}

// deliver hands a counterparty's message to the local subscription, or parks
// it until the subscription exists.
func (e *endpoint) deliver(msg ports.MultisigMessage, ack chan error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.closed {
		ack <- ErrMessengerClosed
		close(ack)
		return
	}
	if sub, ok := e.subs[msg.TradeID]; ok {
		// never block while holding the lock; a slow consumer loses
		// the message and learns it from the ack.
		select {
		case sub <- msg:
			ack <- nil
		default:
			ack <- ErrInboundOverflow
		}
		close(ack)
		return
	}
	e.pending[msg.TradeID] = append(e.pending[msg.TradeID], pendingMsg{msg, ack})
}
