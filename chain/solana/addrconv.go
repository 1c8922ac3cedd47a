package solana

import (
	"fmt"

	sollib "github.com/gagliardetto/solana-go"
	chain_selectors "github.com/smartcontractkit/chain-selectors"
)

// AddressToBytes converts a Solana address string to its raw form.
// Solana addresses are base58-encoded public keys (32 bytes).
func AddressToBytes(address string) ([]byte, error) {
	pubkey, err := sollib.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid Solana address format: %s, error: %w", address, err)
	}

	return pubkey.Bytes(), nil
}

// AddressFromBytes converts a raw 32-byte public key back to its base58 text
// form.
func AddressFromBytes(raw []byte) (string, error) {
	if len(raw) != sollib.PublicKeyLength {
		return "", fmt.Errorf("invalid Solana address length: %d, want %d", len(raw), sollib.PublicKeyLength)
	}

	return sollib.PublicKeyFromBytes(raw).String(), nil
}

// AddressConverter implements address conversion for Solana chains.
// This struct implements the chain.Converter strategy interface.
type AddressConverter struct{}

// ConvertToBytes converts a Solana address string to bytes.
func (s AddressConverter) ConvertToBytes(address string) ([]byte, error) {
	return AddressToBytes(address)
}

// Supports returns true if this converter supports the given chain family.
func (s AddressConverter) Supports(family string) bool {
	return family == chain_selectors.FamilySolana
}
