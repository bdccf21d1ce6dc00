package xmrrpc

import "fmt"

// addressPrefixes maps each network to the leading characters of its
// base58-encoded standard and subaddress forms.
var addressPrefixes = map[Network][]byte{
	Mainnet:  {'4', '8'},
	Testnet:  {'9', 'A', 'B'},
	Stagenet: {'5', '7'},
}

// ValidateNetwork fetches the wallet's primary address and checks its prefix
// against the configured network. A mismatch is fatal for the connection:
// mixing mainnet trades with a testnet wallet must never proceed.
func (c *client) ValidateNetwork() error {
	address, err := c.GetPrimaryAddress()
	if err != nil {
		return err
	}
	if !matchesNetwork(address, c.cfg.Network) {
		return fmt.Errorf("%w: address %q is not a %s address",
			ErrNetworkMismatch, abbreviate(address), c.cfg.Network)
	}
	return nil
}

func matchesNetwork(address string, network Network) bool {
	if address == "" {
		return false
	}
	for _, prefix := range addressPrefixes[network] {
		if address[0] == prefix {
			return true
		}
	}
	return false
}

func abbreviate(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "..." + address[len(address)-6:]
}
