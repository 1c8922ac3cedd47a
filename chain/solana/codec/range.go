package codec

import "math/big"

var one = big.NewInt(1)

// intRange returns the inclusive bounds of an integer kind: [0, 2^b-1] for
// unsigned widths, [-2^(b-1), 2^(b-1)-1] for signed. Widths of 64 and 128
// bits exceed machine-native precision, so bounds are computed with math/big
// across the board.
func intRange(k Kind) (minV, maxV *big.Int) {
	bits := uint(k.Bits())
	if k.Signed() {
		minV = new(big.Int).Lsh(one, bits-1)
		minV.Neg(minV)
		maxV = new(big.Int).Lsh(one, bits-1)
		maxV.Sub(maxV, one)

		return minV, maxV
	}

	minV = new(big.Int)
	maxV = new(big.Int).Lsh(one, bits)
	maxV.Sub(maxV, one)

	return minV, maxV
}

// validateRange checks v against the bounds of k. Values exactly at either
// bound are valid.
func validateRange(arg string, k Kind, v *big.Int) error {
	minV, maxV := intRange(k)
	if v.Cmp(minV) < 0 || v.Cmp(maxV) > 0 {
		return &RangeError{Arg: arg, Value: v.String(), Type: string(k)}
	}

	return nil
}
