package addrconv

import (
	"fmt"
	"sync"

	chain_selectors "github.com/smartcontractkit/chain-selectors"

	"github.com/Treasure-cd/ChainCall/chain/solana"
)

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *converterRegistry
)

func registry() *converterRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = newConverterRegistry()
	})

	return defaultRegistry
}

// ToBytes converts an address string to bytes based on the chain family.
//
// Usage:
//
//	raw, err := addrconv.ToBytes("solana", "11111111111111111111111111111112")
func ToBytes(family, address string) ([]byte, error) {
	return registry().convertAddressByFamily(family, address)
}

// converterRegistry manages address conversion strategies per chain family,
// delegating to the family's Converter implementation.
type converterRegistry struct {
	converters map[string]Converter
}

func newConverterRegistry() *converterRegistry {
	registry := &converterRegistry{
		converters: make(map[string]Converter),
	}

	registry.converters[chain_selectors.FamilySolana] = solana.AddressConverter{}

	return registry
}

func (r *converterRegistry) convertAddressByFamily(family, address string) ([]byte, error) {
	converter, exists := r.converters[family]
	if !exists {
		return nil, fmt.Errorf("no address converter registered for family: %s", family)
	}

	return converter.ConvertToBytes(address)
}
