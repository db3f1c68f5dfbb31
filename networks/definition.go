package networks

import (
	"cosmossdk.io/math"

	"github.com/strangelove-ventures/subgraph-networks/types"
)

// Definition is the literal form of a network's record as written in the
// table. Addresses may be in any case; Build canonicalizes them.
type Definition struct {
	FactoryAddress                     string
	StablecoinWrappedNativePoolAddress string
	StablecoinIsToken0                 bool
	WrappedNativeAddress               string
	MinimumNativeLocked                string
	StablecoinAddresses                []string
	WhitelistTokens                    []string
	TokenOverrides                     []TokenOverrideDefinition
	PoolsToSkip                        []string

	// PoolMappings comes from an external source that has already parsed it.
	PoolMappings []types.PoolMapping
}

type TokenOverrideDefinition struct {
	Address  string
	Symbol   string
	Name     string
	Decimals uint32
}

// Build converts d into a validated record for network.
func (d Definition) Build(network types.Network) (types.SubgraphConfig, error) {
	b := builder{network: network}

	cfg := types.SubgraphConfig{
		Network:                            network,
		FactoryAddress:                     b.address("factoryAddress", d.FactoryAddress),
		StablecoinWrappedNativePoolAddress: b.address("stablecoinWrappedNativePoolAddress", d.StablecoinWrappedNativePoolAddress),
		StablecoinIsToken0:                 d.StablecoinIsToken0,
		WrappedNativeAddress:               b.address("wrappedNativeAddress", d.WrappedNativeAddress),
		StablecoinAddresses:                b.addresses("stablecoinAddresses", d.StablecoinAddresses),
		WhitelistTokens:                    b.addresses("whitelistTokens", d.WhitelistTokens),
		TokenOverrides:                     make([]types.TokenOverride, 0, len(d.TokenOverrides)),
		PoolsToSkip:                        b.addresses("poolsToSkip", d.PoolsToSkip),
		PoolMappings:                       make([]types.PoolMapping, 0, len(d.PoolMappings)),
	}

	for _, o := range d.TokenOverrides {
		cfg.TokenOverrides = append(cfg.TokenOverrides, types.TokenOverride{
			Address:  b.address("tokenOverrides", o.Address),
			Symbol:   o.Symbol,
			Name:     o.Name,
			Decimals: o.Decimals,
		})
	}
	for _, m := range d.PoolMappings {
		cfg.PoolMappings = append(cfg.PoolMappings, append(types.PoolMapping(nil), m...))
	}

	if b.err != nil {
		return types.SubgraphConfig{}, b.err
	}

	minLocked, err := math.LegacyNewDecFromStr(d.MinimumNativeLocked)
	if err != nil {
		return types.SubgraphConfig{}, &types.InvalidConfigError{
			Network: network,
			Field:   "minimumNativeLocked",
			Reason:  err.Error(),
		}
	}
	cfg.MinimumNativeLocked = minLocked

	if err := cfg.Validate(); err != nil {
		return types.SubgraphConfig{}, err
	}
	return cfg, nil
}

// builder records the first address that fails to parse.
type builder struct {
	network types.Network
	err     error
}

func (b *builder) address(field, s string) types.Address {
	a, err := types.ParseAddress(s)
	if err != nil && b.err == nil {
		b.err = &types.InvalidConfigError{
			Network: b.network,
			Field:   field,
			Reason:  err.Error(),
		}
	}
	return a
}

func (b *builder) addresses(field string, list []string) []types.Address {
	out := make([]types.Address, 0, len(list))
	for _, s := range list {
		out = append(out, b.address(field, s))
	}
	return out
}
