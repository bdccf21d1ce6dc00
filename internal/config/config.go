package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/xmrswap-network/xmrswap-daemon/pkg/xmrrpc"
)

const (
	// DatadirKey is the local data directory to store the internal state of daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// WalletRpcHostKey is the host of the monero-wallet-rpc daemon
	WalletRpcHostKey = "WALLET_RPC_HOST"
	// WalletRpcPortKey is the port of the monero-wallet-rpc daemon
	WalletRpcPortKey = "WALLET_RPC_PORT"
	// WalletRpcUserKey is the username of the wallet daemon's rpc login
	WalletRpcUserKey = "WALLET_RPC_USER"
	// WalletRpcPasswordKey is the password of the wallet daemon's rpc login
	WalletRpcPasswordKey = "WALLET_RPC_PASSWORD"
	// WalletRpcRateLimitKey is the per-second cap on outbound rpc calls
	WalletRpcRateLimitKey = "WALLET_RPC_RATE_LIMIT"
	// NetworkKey selects the monero network: mainnet, stagenet or testnet
	NetworkKey = "NETWORK"
	// MakerFeePerCoinKey is the maker fee in atomic units per whole coin traded
	MakerFeePerCoinKey = "MAKER_FEE_PER_COIN"
	// TakerFeePerCoinKey is the taker fee in atomic units per whole coin traded
	TakerFeePerCoinKey = "TAKER_FEE_PER_COIN"
	// MinMakerFeeKey is the maker fee floor in atomic units
	MinMakerFeeKey = "MIN_MAKER_FEE"
	// MinTakerFeeKey is the taker fee floor in atomic units
	MinTakerFeeKey = "MIN_TAKER_FEE"

	DbLocation = "db"
)

var vip *viper.Viper

func defaultDatadir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".xmrswap-daemon"
	}
	return filepath.Join(home, ".xmrswap-daemon")
}

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("XMRSWAP")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir())
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(WalletRpcHostKey, "127.0.0.1")
	vip.SetDefault(WalletRpcPortKey, 29088)
	vip.SetDefault(WalletRpcRateLimitKey, 10)
	vip.SetDefault(NetworkKey, string(xmrrpc.Stagenet))
	vip.SetDefault(MakerFeePerCoinKey, 1_000_000_000)
	vip.SetDefault(TakerFeePerCoinKey, 3_000_000_000)
	vip.SetDefault(MinMakerFeeKey, 50_000_000)
	vip.SetDefault(MinTakerFeeKey, 50_000_000)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetNetwork returns the configured monero network.
func GetNetwork() xmrrpc.Network {
	return xmrrpc.Network(GetString(NetworkKey))
}

// GetWalletRpcConfig assembles the wallet daemon's client config.
func GetWalletRpcConfig() xmrrpc.Config {
	return xmrrpc.Config{
		Host:              GetString(WalletRpcHostKey),
		Port:              GetInt(WalletRpcPortKey),
		Username:          GetString(WalletRpcUserKey),
		Password:          GetString(WalletRpcPasswordKey),
		Network:           GetNetwork(),
		RequestsPerSecond: GetInt(WalletRpcRateLimitKey),
	}
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	switch GetNetwork() {
	case xmrrpc.Mainnet, xmrrpc.Stagenet, xmrrpc.Testnet:
	default:
		return fmt.Errorf(
			"%s must be one of mainnet, stagenet or testnet", NetworkKey,
		)
	}

	port := GetInt(WalletRpcPortKey)
	if port <= 0 || port > 65535 {
		return fmt.Errorf("%s must be a valid tcp port", WalletRpcPortKey)
	}

	if GetInt(WalletRpcRateLimitKey) <= 0 {
		return fmt.Errorf("%s must be greater than zero", WalletRpcRateLimitKey)
	}

	for _, key := range []string{
		MakerFeePerCoinKey, TakerFeePerCoinKey, MinMakerFeeKey, MinTakerFeeKey,
	} {
		if GetInt(key) < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
	}

	return nil
}

func initDatadir() error {
	datadir := GetDatadir()
	return makeDirectoryIfNotExists(filepath.Join(datadir, DbLocation))
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
