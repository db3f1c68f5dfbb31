package types

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
)

// subgraphConfigDoc is the external representation of a SubgraphConfig.
type subgraphConfigDoc struct {
	Network                            string             `json:"network" yaml:"network"`
	FactoryAddress                     string             `json:"factoryAddress" yaml:"factory-address"`
	StablecoinWrappedNativePoolAddress string             `json:"stablecoinWrappedNativePoolAddress" yaml:"stablecoin-wrapped-native-pool-address"`
	StablecoinIsToken0                 bool               `json:"stablecoinIsToken0" yaml:"stablecoin-is-token0"`
	WrappedNativeAddress               string             `json:"wrappedNativeAddress" yaml:"wrapped-native-address"`
	MinimumNativeLocked                string             `json:"minimumNativeLocked" yaml:"minimum-native-locked"`
	StablecoinAddresses                []string           `json:"stablecoinAddresses" yaml:"stablecoin-addresses"`
	WhitelistTokens                    []string           `json:"whitelistTokens" yaml:"whitelist-tokens"`
	TokenOverrides                     []tokenOverrideDoc `json:"tokenOverrides" yaml:"token-overrides"`
	PoolsToSkip                        []string           `json:"poolsToSkip" yaml:"pools-to-skip"`
	PoolMappings                       [][]string         `json:"poolMappings" yaml:"pool-mappings"`
}

type tokenOverrideDoc struct {
	Address  string `json:"address" yaml:"address"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Name     string `json:"name" yaml:"name"`
	Decimals uint32 `json:"decimals" yaml:"decimals"`
}

func (c SubgraphConfig) toDoc() subgraphConfigDoc {
	doc := subgraphConfigDoc{
		Network:                            c.Network.Name(),
		FactoryAddress:                     c.FactoryAddress.String(),
		StablecoinWrappedNativePoolAddress: c.StablecoinWrappedNativePoolAddress.String(),
		StablecoinIsToken0:                 c.StablecoinIsToken0,
		WrappedNativeAddress:               c.WrappedNativeAddress.String(),
		StablecoinAddresses:                addressStrings(c.StablecoinAddresses),
		WhitelistTokens:                    addressStrings(c.WhitelistTokens),
		TokenOverrides:                     make([]tokenOverrideDoc, 0, len(c.TokenOverrides)),
		PoolsToSkip:                        addressStrings(c.PoolsToSkip),
		PoolMappings:                       make([][]string, 0, len(c.PoolMappings)),
	}
	if !c.MinimumNativeLocked.IsNil() {
		doc.MinimumNativeLocked = c.MinimumNativeLocked.String()
	}
	for _, o := range c.TokenOverrides {
		doc.TokenOverrides = append(doc.TokenOverrides, tokenOverrideDoc{
			Address:  o.Address.String(),
			Symbol:   o.Symbol,
			Name:     o.Name,
			Decimals: o.Decimals,
		})
	}
	for _, m := range c.PoolMappings {
		doc.PoolMappings = append(doc.PoolMappings, addressStrings(m))
	}
	return doc
}

// fromDoc canonicalizes every address in doc and validates the resulting record.
func (doc subgraphConfigDoc) fromDoc() (SubgraphConfig, error) {
	network, err := ParseNetwork(doc.Network)
	if err != nil {
		return SubgraphConfig{}, err
	}

	p := addressParser{network: network}
	cfg := SubgraphConfig{
		Network:                            network,
		FactoryAddress:                     p.parse("factoryAddress", doc.FactoryAddress),
		StablecoinWrappedNativePoolAddress: p.parse("stablecoinWrappedNativePoolAddress", doc.StablecoinWrappedNativePoolAddress),
		StablecoinIsToken0:                 doc.StablecoinIsToken0,
		WrappedNativeAddress:               p.parse("wrappedNativeAddress", doc.WrappedNativeAddress),
		StablecoinAddresses:                p.parseAll("stablecoinAddresses", doc.StablecoinAddresses),
		WhitelistTokens:                    p.parseAll("whitelistTokens", doc.WhitelistTokens),
		TokenOverrides:                     make([]TokenOverride, 0, len(doc.TokenOverrides)),
		PoolsToSkip:                        p.parseAll("poolsToSkip", doc.PoolsToSkip),
		PoolMappings:                       make([]PoolMapping, 0, len(doc.PoolMappings)),
	}
	for _, o := range doc.TokenOverrides {
		cfg.TokenOverrides = append(cfg.TokenOverrides, TokenOverride{
			Address:  p.parse("tokenOverrides", o.Address),
			Symbol:   o.Symbol,
			Name:     o.Name,
			Decimals: o.Decimals,
		})
	}
	for _, m := range doc.PoolMappings {
		cfg.PoolMappings = append(cfg.PoolMappings, PoolMapping(p.parseAll("poolMappings", m)))
	}
	if p.err != nil {
		return SubgraphConfig{}, p.err
	}

	cfg.MinimumNativeLocked, err = math.LegacyNewDecFromStr(doc.MinimumNativeLocked)
	if err != nil {
		return SubgraphConfig{}, invalid(network, "minimumNativeLocked", "%q is not a decimal: %v", doc.MinimumNativeLocked, err)
	}

	if err := cfg.Validate(); err != nil {
		return SubgraphConfig{}, err
	}
	return cfg, nil
}

// addressParser keeps the first parse failure so a whole document can be
// converted before checking for errors.
type addressParser struct {
	network Network
	err     error
}

func (p *addressParser) parse(field, s string) Address {
	a, err := ParseAddress(s)
	if err != nil && p.err == nil {
		p.err = invalid(p.network, field, "%v", err)
	}
	return a
}

func (p *addressParser) parseAll(field string, list []string) []Address {
	out := make([]Address, 0, len(list))
	for _, s := range list {
		out = append(out, p.parse(field, s))
	}
	return out
}

func addressStrings(list []Address) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.String())
	}
	return out
}

func (c SubgraphConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toDoc())
}

func (c *SubgraphConfig) UnmarshalJSON(bz []byte) error {
	var doc subgraphConfigDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return fmt.Errorf("error unmarshalling subgraph config: %w", err)
	}
	cfg, err := doc.fromDoc()
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

// MarshalYAML and UnmarshalYAML use the signatures understood by both
// gopkg.in/yaml.v2 and gopkg.in/yaml.v3.
func (c SubgraphConfig) MarshalYAML() (interface{}, error) {
	return c.toDoc(), nil
}

func (c *SubgraphConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var doc subgraphConfigDoc
	if err := unmarshal(&doc); err != nil {
		return fmt.Errorf("error unmarshalling subgraph config: %w", err)
	}
	cfg, err := doc.fromDoc()
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}
