package solana

import (
	"crypto/ed25519"
	"fmt"

	sollib "github.com/gagliardetto/solana-go"
)

// VerifySignature checks that message was signed by the private key
// corresponding to the base58-encoded public key. The signature is the
// base58 text form wallets emit when signing connection challenges.
//
// Malformed inputs return an error; a well-formed but wrong signature
// returns (false, nil).
func VerifySignature(pubkey, message, signature string) (bool, error) {
	pk, err := sollib.PublicKeyFromBase58(pubkey)
	if err != nil {
		return false, fmt.Errorf("invalid public key: %w", err)
	}

	sig, err := sollib.SignatureFromBase58(signature)
	if err != nil {
		return false, fmt.Errorf("invalid signature: %w", err)
	}

	return ed25519.Verify(ed25519.PublicKey(pk.Bytes()), []byte(message), sig[:]), nil
}
