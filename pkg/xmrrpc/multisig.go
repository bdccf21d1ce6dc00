package xmrrpc

func (c *client) PrepareMultisig() (string, error) {
	var res struct {
		MultisigInfo string `json:"multisig_info"`
	}
	if err := c.call("prepare_multisig", nil, &res); err != nil {
		return "", err
	}
	return res.MultisigInfo, nil
}

func (c *client) ImportMultisigInfo(infos []string) error {
	params := map[string]interface{}{"info": infos}
	return c.call("import_multisig_info", params, nil)
}

func (c *client) MakeMultisig(infos []string, threshold int, password string) (*MultisigResult, error) {
	params := map[string]interface{}{
		"multisig_info": infos,
		"threshold":     threshold,
		"password":      password,
	}
	var res MultisigResult
	if err := c.call("make_multisig", params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) FinalizeMultisig(infos []string, password string) (string, error) {
	params := map[string]interface{}{
		"multisig_info": infos,
		"password":      password,
	}
	var res Address
	if err := c.call("finalize_multisig", params, &res); err != nil {
		return "", err
	}
	return res.Address, nil
}

func (c *client) SignMultisigTx(txDataHex string) (*SignResult, error) {
	params := map[string]interface{}{"tx_data_hex": txDataHex}
	var res SignResult
	if err := c.call("sign_multisig", params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) SubmitMultisigTx(txDataHex string) ([]string, error) {
	params := map[string]interface{}{"tx_data_hex": txDataHex}
	var res struct {
		TxHashes []string `json:"tx_hash_list"`
	}
	if err := c.call("submit_multisig", params, &res); err != nil {
		return nil, err
	}
	return res.TxHashes, nil
}
