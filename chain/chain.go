// Package chain describes the chain families ChainCall can target and the
// capabilities each exposes to the codec layer.
package chain

import (
	chain_selectors "github.com/smartcontractkit/chain-selectors"

	"github.com/Treasure-cd/ChainCall/chain/solana/codec"
)

// Info describes one supported chain family: its identity and the data types
// its instruction codec can encode and decode.
type Info struct {
	Family    string
	Name      string
	DataTypes []string
}

// Supported returns the chain families ChainCall currently implements a
// codec for, in a stable order.
func Supported() []Info {
	kinds := codec.Kinds()
	dataTypes := make([]string, 0, len(kinds))
	for _, k := range kinds {
		dataTypes = append(dataTypes, string(k))
	}

	return []Info{
		{
			Family:    chain_selectors.FamilySolana,
			Name:      "Solana",
			DataTypes: dataTypes,
		},
	}
}

// IsSupported reports whether a codec exists for the given chain family.
func IsSupported(family string) bool {
	for _, info := range Supported() {
		if info.Family == family {
			return true
		}
	}

	return false
}
