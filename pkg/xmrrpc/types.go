package xmrrpc

import (
	"encoding/json"
	"math/big"
)

// Uint64 is a smallest-unit count decoded from the wire without ever passing
// through an IEEE-754 double: large piconero balances do not fit a float64
// mantissa.
type Uint64 uint64

// UnmarshalJSON decodes the number from its raw text via big.Int.
func (u *Uint64) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	bi, ok := new(big.Int).SetString(n.String(), 10)
	if !ok || !bi.IsUint64() {
		return &RpcError{Code: -1, Message: "non-integer amount field: " + n.String()}
	}
	*u = Uint64(bi.Uint64())
	return nil
}

// Balance is the result of a get_balance call.
type Balance struct {
	Balance         Uint64 `json:"balance"`
	UnlockedBalance Uint64 `json:"unlocked_balance"`
}

// Address is the result of a get_address call.
type Address struct {
	Address string `json:"address"`
}

// Transfer is a single entry of the wallet's transfer history.
type Transfer struct {
	TxID          string `json:"txid"`
	Type          string `json:"type"`
	Amount        Uint64 `json:"amount"`
	Fee           Uint64 `json:"fee"`
	Height        uint64 `json:"height"`
	Timestamp     int64  `json:"timestamp"`
	PaymentID     string `json:"payment_id"`
	Address       string `json:"address"`
	Confirmations uint64 `json:"confirmations"`
	DoubleSpend   bool   `json:"double_spend_seen"`
}

// TransferFilter selects which transfer categories get_transfers returns.
type TransferFilter struct {
	In      bool `json:"in"`
	Out     bool `json:"out"`
	Pending bool `json:"pending"`
	Failed  bool `json:"failed"`
	Pool    bool `json:"pool"`
}

// AllTransfers selects every transfer category.
func AllTransfers() TransferFilter {
	return TransferFilter{In: true, Out: true, Pending: true, Failed: true, Pool: true}
}

// Destination is one recipient of a transfer.
type Destination struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

// SendPriority is the daemon-side fee priority of an outgoing transfer.
type SendPriority int

const (
	PriorityDefault SendPriority = iota
	PriorityUnimportant
	PriorityNormal
	PriorityElevated
)

// SendRequest is the input of a transfer call.
type SendRequest struct {
	Destinations []Destination `json:"destinations"`
	Priority     SendPriority  `json:"priority"`
	PaymentID    string        `json:"payment_id,omitempty"`
	GetTxKey     bool          `json:"get_tx_key"`
	GetTxHex     bool          `json:"get_tx_hex"`
	GetTxMeta    bool          `json:"get_tx_metadata"`
	DoNotRelay   bool          `json:"do_not_relay"`
}

// SendResult is the outcome of a transfer call.
type SendResult struct {
	Fee        Uint64 `json:"fee"`
	Amount     Uint64 `json:"amount"`
	TxHash     string `json:"tx_hash"`
	TxKey      string `json:"tx_key"`
	TxMetadata string `json:"tx_metadata"`
	TxBlob     string `json:"tx_blob"`
	Weight     uint64 `json:"weight"`
}

// MultisigResult is the outcome of make_multisig and finalize_multisig calls:
// the shared multisig address once enough info has been collected.
type MultisigResult struct {
	Address      string `json:"address"`
	MultisigInfo string `json:"multisig_info"`
}

// SignResult is the outcome of a sign_multisig call.
type SignResult struct {
	TxDataHex string   `json:"tx_data_hex"`
	TxHashes  []string `json:"tx_hash_list"`
}
