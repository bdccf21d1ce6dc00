package ports

import "github.com/xmrswap-network/xmrswap-daemon/pkg/xmrrpc"

// WalletService is the wallet daemon surface the application layer depends
// on. xmrrpc.Client satisfies it; tests substitute an in-memory fake.
type WalletService interface {
	// GetPrimaryAddress returns the main address of the open wallet.
	GetPrimaryAddress() (string, error)
	// GetBalance returns the total balance of the open wallet in atomic units.
	GetBalance() (uint64, error)
	// GetUnlockedBalance returns the spendable balance in atomic units.
	GetUnlockedBalance() (uint64, error)
	// GetTransfers returns the wallet's transfers matching the filter.
	GetTransfers(filter xmrrpc.TransferFilter) ([]xmrrpc.Transfer, error)
	// Send builds, signs and optionally relays an outgoing transfer.
	Send(req xmrrpc.SendRequest) (*xmrrpc.SendResult, error)
	// Relay broadcasts a previously created transaction by its metadata.
	Relay(txMetadata string) (string, error)

	// CreateWallet creates a fresh wallet file on the daemon and opens it.
	CreateWallet(filename, password, language string) error
	// OpenWallet opens an existing wallet file on the daemon.
	OpenWallet(filename, password string) error
	// CloseWallet closes the currently open wallet.
	CloseWallet() error

	// PrepareMultisig returns this side's multisig info string.
	PrepareMultisig() (string, error)
	// ImportMultisigInfo imports the counterparty's multisig info.
	ImportMultisigInfo(infos []string) error
	// MakeMultisig turns the open wallet into a multisig wallet.
	MakeMultisig(infos []string, threshold int, password string) (*xmrrpc.MultisigResult, error)
	// FinalizeMultisig completes the exchange and returns the shared address.
	FinalizeMultisig(infos []string, password string) (string, error)
	// SignMultisigTx signs a partially signed multisig transaction.
	SignMultisigTx(txDataHex string) (*xmrrpc.SignResult, error)
	// SubmitMultisigTx submits a fully signed multisig transaction.
	SubmitMultisigTx(txDataHex string) ([]string, error)

	// GetSpendProof produces a proof that the wallet authored the given tx.
	GetSpendProof(txID, message string) (string, error)
	// CheckSpendProof verifies a spend proof produced by a counterparty.
	CheckSpendProof(txID, message, signature string) (bool, error)

	// ValidateNetwork checks the daemon serves the configured network.
	ValidateNetwork() error
}
