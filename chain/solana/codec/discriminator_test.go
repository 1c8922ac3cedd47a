package codec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscriminator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		expectedHex string
	}{
		{
			name:        "mixed case normalizes to snake_case",
			method:      "setAuthority",
			expectedHex: "85fa25156ea31a79",
		},
		{
			name:        "already snake_case is unchanged",
			method:      "set_authority",
			expectedHex: "85fa25156ea31a79",
		},
		{
			name:        "single word",
			method:      "initialize",
			expectedHex: "afaf6d1f0d989bed",
		},
		{
			name:        "leading uppercase lowercases without underscore",
			method:      "Initialize",
			expectedHex: "afaf6d1f0d989bed",
		},
		{
			name:        "two humps",
			method:      "transferTokens",
			expectedHex: "36b4eeaf4a557ebc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := Discriminator(tt.method)
			assert.Equal(t, tt.expectedHex, hex.EncodeToString(d[:]))
		})
	}

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Discriminator("helloWorld"), Discriminator("hello_world"))
	})
}

func TestAccountDiscriminator(t *testing.T) {
	t.Parallel()

	// Account names hash in their declared casing.
	d := AccountDiscriminator("Counter")
	assert.Equal(t, "ffb004f5bcfd7c19", hex.EncodeToString(d[:]))
	assert.NotEqual(t, d, AccountDiscriminator("counter"))
}

func TestToSnakeCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"setAuthority", "set_authority"},
		{"initialize", "initialize"},
		{"Initialize", "initialize"},
		{"transferTokensV2", "transfer_tokens_v2"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, toSnakeCase(tt.in))
		})
	}
}
