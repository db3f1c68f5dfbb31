package backfill

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/strangelove-ventures/subgraph-networks/types"
)

// minMappingLen is the shortest tuple accepted: a pool and at least one token.
const minMappingLen = 2

//go:embed optimism.yaml
var optimismPoolMappingsYAML []byte

var optimismPoolMappings []types.PoolMapping

func init() {
	mappings, err := ParsePoolMappings(optimismPoolMappingsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded optimism pool mappings: %v", err))
	}
	optimismPoolMappings = mappings
}

// OptimismPoolMappings returns a copy of the pools seeded on Optimism factory creation.
func OptimismPoolMappings() []types.PoolMapping {
	out := make([]types.PoolMapping, len(optimismPoolMappings))
	for i, m := range optimismPoolMappings {
		out[i] = append(types.PoolMapping(nil), m...)
	}
	return out
}

// ParsePoolMappings decodes a YAML list of address tuples, rejecting
// malformed addresses and tuples shorter than a pool plus one token.
func ParsePoolMappings(data []byte) ([]types.PoolMapping, error) {
	var raw [][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error unmarshalling pool mappings: %w", err)
	}

	mappings := make([]types.PoolMapping, 0, len(raw))
	for i, entry := range raw {
		if len(entry) < minMappingLen {
			return nil, fmt.Errorf("pool mapping %d has %d addresses, want at least %d", i, len(entry), minMappingLen)
		}
		m := make(types.PoolMapping, 0, len(entry))
		for _, s := range entry {
			a, err := types.ParseAddress(s)
			if err != nil {
				return nil, fmt.Errorf("pool mapping %d: %w", i, err)
			}
			m = append(m, a)
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}
