package xmrrpc

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectionLost is returned when the wallet daemon cannot be reached
	// or the transport fails mid-call.
	ErrConnectionLost = errors.New("wallet rpc daemon unreachable")
	// ErrNetworkMismatch is returned when the wallet's primary address prefix
	// does not belong to the expected network. The connection must not be
	// used for any trade operation.
	ErrNetworkMismatch = errors.New("wallet address does not match the expected network")
	// ErrBreakerOpen is returned while the circuit breaker is rejecting calls
	// after repeated daemon failures.
	ErrBreakerOpen = errors.New("wallet rpc circuit breaker is open")
)

// RpcError is an error payload returned by the wallet daemon.
type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RpcError) Error() string {
	return fmt.Sprintf("wallet rpc error %d: %s", e.Code, e.Message)
}
