package xmrrpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type rpcCall struct {
	Method string                 `json:"method"`
	Params map[string]interface{} `json:"params"`
}

// newTestDaemon spins up a fake wallet daemon returning canned results per
// method and records every call it receives.
func newTestDaemon(t *testing.T, results map[string]string) (Client, *[]rpcCall) {
	t.Helper()

	calls := &[]rpcCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var call rpcCall
		require.NoError(t, json.NewDecoder(r.Body).Decode(&call))
		*calls = append(*calls, call)

		result, ok := results[call.Method]
		if !ok {
			fmt.Fprintf(w, `{"id":"0","error":{"code":-32601,"message":"Method not found"}}`)
			return
		}
		fmt.Fprintf(w, `{"id":"0","result":%s}`, result)
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	cli, err := NewClient(Config{
		Host:    u.Hostname(),
		Port:    port,
		Network: Stagenet,
	})
	require.NoError(t, err)
	return cli, calls
}

func TestNewClientConfigValidation(t *testing.T) {
	_, err := NewClient(Config{Port: 18083, Network: Mainnet})
	require.Error(t, err)

	_, err = NewClient(Config{Host: "localhost", Network: Mainnet})
	require.Error(t, err)

	_, err = NewClient(Config{Host: "localhost", Port: 18083, Network: "regtest"})
	require.Error(t, err)

	_, err = NewClient(Config{Host: "localhost", Port: 18083, Network: Mainnet})
	require.NoError(t, err)
}

func TestGetBalanceDecodesBigAmounts(t *testing.T) {
	// larger than a float64 mantissa can carry losslessly
	cli, _ := newTestDaemon(t, map[string]string{
		"get_balance": `{"balance":9007199254740993,"unlocked_balance":9007199254740992}`,
	})

	balance, err := cli.GetBalance()
	require.NoError(t, err)
	require.Equal(t, uint64(9007199254740993), balance)

	unlocked, err := cli.GetUnlockedBalance()
	require.NoError(t, err)
	require.Equal(t, uint64(9007199254740992), unlocked)
}

func TestGetPrimaryAddress(t *testing.T) {
	cli, calls := newTestDaemon(t, map[string]string{
		"get_address": `{"address":"55LTRznQQjMLaugEWaXu8jM5gcVnq64CH2DVmFEUc9KgeT1ZBgAAkMqqBMxY6HnZoCMejvHgRT55tmsAMBcWWvkrTjC81ge"}`,
	})

	address, err := cli.GetPrimaryAddress()
	require.NoError(t, err)
	require.True(t, len(address) > 0)
	require.Equal(t, "get_address", (*calls)[0].Method)
}

func TestValidateNetwork(t *testing.T) {
	cli, _ := newTestDaemon(t, map[string]string{
		"get_address": `{"address":"55LTRznQQjMLaugEWaXu8jM5gcVnq64CH2DVmFEUc9KgeT1ZBgAAkMqqBMxY6HnZoCMejvHgRT55tmsAMBcWWvkrTjC81ge"}`,
	})
	// test daemon is configured for stagenet, address starts with '5'
	require.NoError(t, cli.ValidateNetwork())
}

func TestValidateNetworkMismatch(t *testing.T) {
	cli, _ := newTestDaemon(t, map[string]string{
		"get_address": `{"address":"44AFFq5kSiGBoZ4NMDwYtN18obc8AemS33DBLWs3H7otXft3XjrpDtQGv7SqSsaBYBb98uNbr2VBBEt7f2wfn3RVGQBEP3A"}`,
	})
	err := cli.ValidateNetwork()
	require.ErrorIs(t, err, ErrNetworkMismatch)
}

func TestMultisigHandshakeCalls(t *testing.T) {
	cli, calls := newTestDaemon(t, map[string]string{
		"create_wallet":        `{}`,
		"open_wallet":          `{}`,
		"prepare_multisig":     `{"multisig_info":"MultisigV1abc"}`,
		"import_multisig_info": `{"n_outputs":1}`,
		"finalize_multisig":    `{"address":"5Shared"}`,
		"close_wallet":         `{}`,
	})

	require.NoError(t, cli.CreateWallet("trade-1", "pw", "English"))
	require.NoError(t, cli.OpenWallet("trade-1", "pw"))

	info, err := cli.PrepareMultisig()
	require.NoError(t, err)
	require.Equal(t, "MultisigV1abc", info)

	require.NoError(t, cli.ImportMultisigInfo([]string{"MultisigV1peer"}))

	address, err := cli.FinalizeMultisig([]string{"MultisigV1peer", info}, "pw")
	require.NoError(t, err)
	require.Equal(t, "5Shared", address)

	require.NoError(t, cli.CloseWallet())

	methods := make([]string, 0, len(*calls))
	for _, c := range *calls {
		methods = append(methods, c.Method)
	}
	require.Equal(t, []string{
		"create_wallet", "open_wallet", "prepare_multisig",
		"import_multisig_info", "finalize_multisig", "close_wallet",
	}, methods)
}

func TestSendFillsPaymentID(t *testing.T) {
	cli, calls := newTestDaemon(t, map[string]string{
		"transfer": `{"fee":61240000,"amount":1000000000000,"tx_hash":"abc","tx_metadata":"deadbeef"}`,
	})

	res, err := cli.Send(SendRequest{
		Destinations: []Destination{{Address: "5dest", Amount: 1000000000000}},
		Priority:     PriorityNormal,
		DoNotRelay:   true,
		GetTxMeta:    true,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(61240000), uint64(res.Fee))
	require.Equal(t, "deadbeef", res.TxMetadata)

	paymentID, ok := (*calls)[0].Params["payment_id"].(string)
	require.True(t, ok)
	require.Len(t, paymentID, 64)
}

func TestRpcErrorSurfaces(t *testing.T) {
	cli, _ := newTestDaemon(t, map[string]string{})

	err := cli.CloseWallet()
	var rpcErr *RpcError
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, -32601, rpcErr.Code)
}

func TestConnectionLost(t *testing.T) {
	cli, err := NewClient(Config{
		Host: "127.0.0.1", Port: 1, Network: Stagenet,
	})
	require.NoError(t, err)

	_, err = cli.GetBalance()
	require.ErrorIs(t, err, ErrConnectionLost)
}

func TestRelay(t *testing.T) {
	cli, _ := newTestDaemon(t, map[string]string{
		"relay_tx": `{"tx_hash":"49d8f3e4e6d2e6b1ddcf4b66316e2c1a961e88d29c2a2a4a1d5e2f8b1f0d4b9c"}`,
	})

	txID, err := cli.Relay("deadbeef")
	require.NoError(t, err)
	require.Equal(t, "49d8f3e4e6d2e6b1ddcf4b66316e2c1a961e88d29c2a2a4a1d5e2f8b1f0d4b9c", txID)
}
