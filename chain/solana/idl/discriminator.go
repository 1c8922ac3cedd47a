package idl

import (
	"encoding/json"
	"fmt"
)

// Discriminator is an 8-byte identifier serialized in IDL JSON as an array
// of byte values rather than the base64 string encoding/json would expect
// for a []byte.
type Discriminator []byte

// UnmarshalJSON implements json.Unmarshaler.
func (d *Discriminator) UnmarshalJSON(data []byte) error {
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return fmt.Errorf("invalid discriminator: %w", err)
	}

	out := make([]byte, len(nums))
	for i, n := range nums {
		if n < 0 || n > 255 {
			return fmt.Errorf("invalid discriminator byte %d at index %d", n, i)
		}
		out[i] = byte(n)
	}
	*d = out

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Discriminator) MarshalJSON() ([]byte, error) {
	nums := make([]int, len(d))
	for i, b := range d {
		nums[i] = int(b)
	}

	return json.Marshal(nums)
}
