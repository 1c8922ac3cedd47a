/*
Package addrconv provides utilities for converting blockchain addresses to
bytes by chain family.

It implements the Strategy pattern: each supported family registers a
Converter, and [ToBytes] selects the right one from the family name. Solana
is currently the only registered family.

# Basic Usage

	raw, err := addrconv.ToBytes(chain_selectors.FamilySolana, "11111111111111111111111111111112")
	if err != nil {
		return err
	}
	fmt.Printf("%x (%d bytes)\n", raw, len(raw))
*/
package addrconv
