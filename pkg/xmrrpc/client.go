// Package xmrrpc is a synchronous JSON-RPC 2.0 client for the external
// monero-wallet-rpc daemon. The client does not retry failed calls: transport
// failures surface as ErrConnectionLost and daemon error payloads as
// *RpcError, and the caller decides retry or abort.
package xmrrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"

	"github.com/xmrswap-network/xmrswap-daemon/pkg/circuitbreaker"
)

// Network selects which Monero network the wallet daemon is expected to be on.
type Network string

const (
	Mainnet  Network = "mainnet"
	Testnet  Network = "testnet"
	Stagenet Network = "stagenet"
)

// Config carries the wallet daemon endpoint and credentials. It is injected
// at construction; there is no package-level mutable endpoint.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Network  Network
	// RequestsPerSecond paces outbound calls; 0 means the default of 10.
	RequestsPerSecond int
	// Timeout bounds a single HTTP round trip; 0 means 30s.
	Timeout time.Duration
}

func (c Config) url() string {
	return fmt.Sprintf("http://%s:%d/json_rpc", c.Host, c.Port)
}

func (c Config) validate() error {
	if c.Host == "" {
		return fmt.Errorf("missing wallet rpc host")
	}
	if c.Port <= 0 {
		return fmt.Errorf("missing wallet rpc port")
	}
	switch c.Network {
	case Mainnet, Testnet, Stagenet:
		return nil
	default:
		return fmt.Errorf("unknown network %q", c.Network)
	}
}

// Client exposes the wallet daemon operations consumed by the escrow
// coordinator and the wallet service.
type Client interface {
	GetPrimaryAddress() (string, error)
	GetBalance() (uint64, error)
	GetUnlockedBalance() (uint64, error)
	GetTransfers(filter TransferFilter) ([]Transfer, error)
	Send(req SendRequest) (*SendResult, error)
	Relay(txMetadata string) (string, error)

	CreateWallet(filename, password, language string) error
	OpenWallet(filename, password string) error
	CloseWallet() error

	PrepareMultisig() (string, error)
	ImportMultisigInfo(infos []string) error
	MakeMultisig(infos []string, threshold int, password string) (*MultisigResult, error)
	FinalizeMultisig(infos []string, password string) (string, error)
	SignMultisigTx(txDataHex string) (*SignResult, error)
	SubmitMultisigTx(txDataHex string) ([]string, error)

	GetSpendProof(txID, message string) (string, error)
	CheckSpendProof(txID, message, signature string) (bool, error)

	ValidateNetwork() error
}

type client struct {
	cfg     Config
	httpCli *http.Client
	breaker *gobreaker.CircuitBreaker
	limiter ratelimit.Limiter
}

// NewClient returns a Client bound to the configured endpoint. The endpoint
// is not probed here; the first call reports connectivity problems.
func NewClient(cfg Config) (Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &client{
		cfg:     cfg,
		httpCli: &http.Client{Timeout: timeout},
		breaker: circuitbreaker.NewCircuitBreaker("walletrpc"),
		limiter: ratelimit.New(rps),
	}, nil
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type rpcResponse struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RpcError       `json:"error"`
}

// call performs one JSON-RPC request and decodes the result payload into out
// when out is non-nil. Numbers travel as json.Number end to end.
func (c *client) call(method string, params, out interface{}) error {
	c.limiter.Take()

	raw, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doRequest(method, params)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return ErrBreakerOpen
		}
		return err
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw.(json.RawMessage)))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decoding %s result: %w", method, err)
	}
	return nil
}

func (c *client) doRequest(method string, params interface{}) (interface{}, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      "0",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.url(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Username != "" {
		req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		log.WithError(err).WithField("method", method).Debug("wallet rpc transport failure")
		return nil, fmt.Errorf("%w: %v", ErrConnectionLost, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrConnectionLost, resp.StatusCode)
	}

	var rpcResp rpcResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&rpcResp); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrConnectionLost, err)
	}
	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}
	return rpcResp.Result, nil
}
