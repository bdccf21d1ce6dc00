package xmrrpc

import "github.com/thanhpk/randstr"

func (c *client) GetPrimaryAddress() (string, error) {
	params := map[string]interface{}{"account_index": 0}
	var res Address
	if err := c.call("get_address", params, &res); err != nil {
		return "", err
	}
	return res.Address, nil
}

func (c *client) getBalanceData() (*Balance, error) {
	params := map[string]interface{}{"account_index": 0}
	var res Balance
	if err := c.call("get_balance", params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) GetBalance() (uint64, error) {
	b, err := c.getBalanceData()
	if err != nil {
		return 0, err
	}
	return uint64(b.Balance), nil
}

func (c *client) GetUnlockedBalance() (uint64, error) {
	b, err := c.getBalanceData()
	if err != nil {
		return 0, err
	}
	return uint64(b.UnlockedBalance), nil
}

func (c *client) GetTransfers(filter TransferFilter) ([]Transfer, error) {
	var res struct {
		In      []Transfer `json:"in"`
		Out     []Transfer `json:"out"`
		Pending []Transfer `json:"pending"`
		Failed  []Transfer `json:"failed"`
		Pool    []Transfer `json:"pool"`
	}
	if err := c.call("get_transfers", filter, &res); err != nil {
		return nil, err
	}

	transfers := make([]Transfer, 0,
		len(res.In)+len(res.Out)+len(res.Pending)+len(res.Failed)+len(res.Pool))
	transfers = append(transfers, res.In...)
	transfers = append(transfers, res.Out...)
	transfers = append(transfers, res.Pending...)
	transfers = append(transfers, res.Failed...)
	transfers = append(transfers, res.Pool...)
	return transfers, nil
}

func (c *client) Send(req SendRequest) (*SendResult, error) {
	if req.PaymentID == "" {
		req.PaymentID = GeneratePaymentID()
	}
	var res SendResult
	if err := c.call("transfer", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) Relay(txMetadata string) (string, error) {
	params := map[string]interface{}{"hex": txMetadata}
	var res struct {
		TxHash string `json:"tx_hash"`
	}
	if err := c.call("relay_tx", params, &res); err != nil {
		return "", err
	}
	return res.TxHash, nil
}

func (c *client) CreateWallet(filename, password, language string) error {
	params := map[string]interface{}{
		"filename": filename,
		"password": password,
		"language": language,
	}
	return c.call("create_wallet", params, nil)
}

func (c *client) OpenWallet(filename, password string) error {
	params := map[string]interface{}{
		"filename": filename,
		"password": password,
	}
	return c.call("open_wallet", params, nil)
}

func (c *client) CloseWallet() error {
	return c.call("close_wallet", nil, nil)
}

func (c *client) GetSpendProof(txID, message string) (string, error) {
	params := map[string]interface{}{"txid": txID}
	if message != "" {
		params["message"] = message
	}
	var res struct {
		Signature string `json:"signature"`
	}
	if err := c.call("get_spend_proof", params, &res); err != nil {
		return "", err
	}
	return res.Signature, nil
}

func (c *client) CheckSpendProof(txID, message, signature string) (bool, error) {
	params := map[string]interface{}{
		"txid":      txID,
		"signature": signature,
	}
	if message != "" {
		params["message"] = message
	}
	var res struct {
		Good bool `json:"good"`
	}
	if err := c.call("check_spend_proof", params, &res); err != nil {
		return false, err
	}
	return res.Good, nil
}

// GeneratePaymentID returns a random 64-hex-digit payment id.
func GeneratePaymentID() string {
	return randstr.Hex(32)
}
