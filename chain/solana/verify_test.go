package solana

import (
	"testing"

	sollib "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	priv, err := sollib.NewRandomPrivateKey()
	require.NoError(t, err)

	message := "Sign this message to connect your wallet"
	sig, err := priv.Sign([]byte(message))
	require.NoError(t, err)

	pubkey := priv.PublicKey().String()

	t.Run("valid signature", func(t *testing.T) {
		t.Parallel()

		ok, err := VerifySignature(pubkey, message, sig.String())
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("tampered message", func(t *testing.T) {
		t.Parallel()

		ok, err := VerifySignature(pubkey, message+"!", sig.String())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("wrong signer", func(t *testing.T) {
		t.Parallel()

		other, err := sollib.NewRandomPrivateKey()
		require.NoError(t, err)

		ok, err := VerifySignature(other.PublicKey().String(), message, sig.String())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed public key", func(t *testing.T) {
		t.Parallel()

		_, err := VerifySignature("not-a-key", message, sig.String())
		require.Error(t, err)
	})

	t.Run("malformed signature", func(t *testing.T) {
		t.Parallel()

		_, err := VerifySignature(pubkey, message, "not-a-signature")
		require.Error(t, err)
	})
}
