package codec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind string
		min  string
		max  string
	}{
		{kind: "u8", min: "0", max: "255"},
		{kind: "i8", min: "-128", max: "127"},
		{kind: "u32", min: "0", max: "4294967295"},
		{kind: "i64", min: "-9223372036854775808", max: "9223372036854775807"},
		{kind: "u128", min: "0", max: "340282366920938463463374607431768211455"},
		{kind: "i128", min: "-170141183460469231731687303715884105728",
			max: "170141183460469231731687303715884105727"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			t.Parallel()

			minV, maxV := intRange(Kind(tt.kind))
			assert.Equal(t, tt.min, minV.String())
			assert.Equal(t, tt.max, maxV.String())

			// Bounds themselves are valid, one past either bound is not.
			require.NoError(t, validateRange("v", Kind(tt.kind), minV))
			require.NoError(t, validateRange("v", Kind(tt.kind), maxV))

			below := new(big.Int).Sub(minV, big.NewInt(1))
			above := new(big.Int).Add(maxV, big.NewInt(1))
			require.Error(t, validateRange("v", Kind(tt.kind), below))
			require.Error(t, validateRange("v", Kind(tt.kind), above))
		})
	}
}
