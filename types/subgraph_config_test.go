package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	yamlv2 "gopkg.in/yaml.v2"
	"gopkg.in/yaml.v3"

	"github.com/strangelove-ventures/subgraph-networks/types"
)

const (
	weth = types.Address("0x4200000000000000000000000000000000000006")
	usdc = types.Address("0x7f5c764cbc14f9669b88837ca1490cca17c31607")
	dai  = types.Address("0xda10009cbd5d07dd0cecc66161fc93d7c9000da1")
	pool = types.Address("0x03af20bdaaffb4cc0a521796a223f7d85e2aac31")
)

func testConfig() types.SubgraphConfig {
	return types.SubgraphConfig{
		Network:                            types.Optimism,
		FactoryAddress:                     "0x1f98431c8ad98523631ae4a59f267346ea31f984",
		StablecoinWrappedNativePoolAddress: pool,
		StablecoinIsToken0:                 false,
		WrappedNativeAddress:               weth,
		MinimumNativeLocked:                math.LegacyMustNewDecFromStr("10"),
		StablecoinAddresses:                []types.Address{dai, usdc},
		WhitelistTokens:                    []types.Address{weth, dai, usdc},
		TokenOverrides: []types.TokenOverride{
			{Address: "0x82af49447d8a07e3bd95bd0d56f35241523fbab1", Symbol: "WETH", Name: "Wrapped Ethereum", Decimals: 18},
		},
		PoolsToSkip:  []types.Address{"0x282b7d6bef6c78927f394330dca297eca2bd18cd"},
		PoolMappings: []types.PoolMapping{{pool, weth, dai}},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, testConfig().Validate())

	tests := []struct {
		name   string
		field  string
		mutate func(c *types.SubgraphConfig)
	}{
		{"unsupported network", "network", func(c *types.SubgraphConfig) { c.Network = types.Network(5) }},
		{"missing factory", "factoryAddress", func(c *types.SubgraphConfig) { c.FactoryAddress = "" }},
		{"mixed case factory", "factoryAddress", func(c *types.SubgraphConfig) {
			c.FactoryAddress = "0x1F98431c8aD98523631AE4a59f267346ea31F984"
		}},
		{"malformed pool", "stablecoinWrappedNativePoolAddress", func(c *types.SubgraphConfig) { c.StablecoinWrappedNativePoolAddress = "0x1234" }},
		{"malformed wrapped native", "wrappedNativeAddress", func(c *types.SubgraphConfig) { c.WrappedNativeAddress = "weth" }},
		{"nil threshold", "minimumNativeLocked", func(c *types.SubgraphConfig) { c.MinimumNativeLocked = math.LegacyDec{} }},
		{"zero threshold", "minimumNativeLocked", func(c *types.SubgraphConfig) { c.MinimumNativeLocked = math.LegacyZeroDec() }},
		{"negative threshold", "minimumNativeLocked", func(c *types.SubgraphConfig) { c.MinimumNativeLocked = math.LegacyMustNewDecFromStr("-1") }},
		{"duplicate stablecoin", "stablecoinAddresses", func(c *types.SubgraphConfig) { c.StablecoinAddresses = append(c.StablecoinAddresses, dai) }},
		{"duplicate whitelist token", "whitelistTokens", func(c *types.SubgraphConfig) { c.WhitelistTokens = append(c.WhitelistTokens, usdc) }},
		{"wrapped native not whitelisted", "whitelistTokens", func(c *types.SubgraphConfig) { c.WhitelistTokens = []types.Address{dai, usdc} }},
		{"malformed override", "tokenOverrides", func(c *types.SubgraphConfig) { c.TokenOverrides[0].Address = "0x82af" }},
		{"duplicate override", "tokenOverrides", func(c *types.SubgraphConfig) {
			c.TokenOverrides = append(c.TokenOverrides, c.TokenOverrides[0])
		}},
		{"malformed skipped pool", "poolsToSkip", func(c *types.SubgraphConfig) { c.PoolsToSkip = []types.Address{"0xnothex"} }},
		{"empty pool mapping", "poolMappings", func(c *types.SubgraphConfig) { c.PoolMappings = []types.PoolMapping{{}} }},
		{"malformed pool mapping", "poolMappings", func(c *types.SubgraphConfig) { c.PoolMappings = []types.PoolMapping{{pool, "0x00"}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, types.ErrInvalidConfig))

			var invalid *types.InvalidConfigError
			require.True(t, errors.As(err, &invalid))
			require.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestValidateAllowsSkippedPoolsElsewhere(t *testing.T) {
	cfg := testConfig()
	cfg.PoolsToSkip = append(cfg.PoolsToSkip, pool)
	cfg.TokenOverrides = nil
	cfg.PoolMappings = nil
	require.NoError(t, cfg.Validate())
}

func TestLookups(t *testing.T) {
	cfg := testConfig()

	require.True(t, cfg.IsWhitelisted(string(weth)))
	require.True(t, cfg.IsWhitelisted("0x7F5c764cBc14f9669B88837ca1490cCa17c31607"))
	require.False(t, cfg.IsWhitelisted("0x94b008aa00579c1307b0ef2c499ad98a8ce58e58"))

	require.True(t, cfg.IsStablecoin(string(dai)))
	require.False(t, cfg.IsStablecoin(string(weth)))

	require.True(t, cfg.ShouldSkipPool("0x282B7D6BEF6C78927F394330DCA297ECA2BD18CD"))
	require.False(t, cfg.ShouldSkipPool(string(pool)))

	o, ok := cfg.TokenOverride("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1")
	require.True(t, ok)
	require.Equal(t, "WETH", o.Symbol)
	require.Equal(t, uint32(18), o.Decimals)

	_, ok = cfg.TokenOverride(string(usdc))
	require.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	orig := testConfig()
	clone := orig.Clone()
	require.True(t, orig.Equal(clone))

	clone.WhitelistTokens[0] = usdc
	clone.StablecoinAddresses[0] = weth
	clone.TokenOverrides[0].Symbol = "XXX"
	clone.PoolsToSkip[0] = pool
	clone.PoolMappings[0][0] = weth
	clone.MinimumNativeLocked = clone.MinimumNativeLocked.MulInt64(2)

	require.Equal(t, weth, orig.WhitelistTokens[0])
	require.Equal(t, dai, orig.StablecoinAddresses[0])
	require.Equal(t, "WETH", orig.TokenOverrides[0].Symbol)
	require.Equal(t, types.Address("0x282b7d6bef6c78927f394330dca297eca2bd18cd"), orig.PoolsToSkip[0])
	require.Equal(t, pool, orig.PoolMappings[0][0])
	require.True(t, orig.MinimumNativeLocked.Equal(math.LegacyMustNewDecFromStr("10")))
	require.False(t, orig.Equal(clone))
}

func TestEqualTreatsNilAndEmptyAlike(t *testing.T) {
	a := testConfig()
	a.PoolMappings = nil
	b := testConfig()
	b.PoolMappings = []types.PoolMapping{}
	require.True(t, a.Equal(b))

	b.StablecoinIsToken0 = true
	require.False(t, a.Equal(b))
}

func TestJSONRoundTrip(t *testing.T) {
	orig := testConfig()

	bz, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded types.SubgraphConfig
	require.NoError(t, json.Unmarshal(bz, &decoded))
	require.True(t, orig.Equal(decoded))
}

func TestJSONFieldNames(t *testing.T) {
	bz, err := json.Marshal(testConfig())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(bz, &doc))
	require.Equal(t, "optimism", doc["network"])
	require.Equal(t, "0x1f98431c8ad98523631ae4a59f267346ea31f984", doc["factoryAddress"])
	require.Equal(t, false, doc["stablecoinIsToken0"])
	require.Len(t, doc["poolMappings"], 1)
}

func TestYAMLRoundTrip(t *testing.T) {
	orig := testConfig()

	t.Run("yaml.v3", func(t *testing.T) {
		bz, err := yaml.Marshal(orig)
		require.NoError(t, err)

		var decoded types.SubgraphConfig
		require.NoError(t, yaml.Unmarshal(bz, &decoded))
		require.True(t, orig.Equal(decoded))
	})

	t.Run("yaml.v2", func(t *testing.T) {
		bz, err := yamlv2.Marshal(orig)
		require.NoError(t, err)

		var decoded types.SubgraphConfig
		require.NoError(t, yamlv2.Unmarshal(bz, &decoded))
		require.True(t, orig.Equal(decoded))
	})
}

func TestUnmarshalCanonicalizesAndValidates(t *testing.T) {
	doc := `{
		"network": "base",
		"factoryAddress": "0x33128a8fC17869897dcE68Ed026d694621f6FDfD",
		"stablecoinWrappedNativePoolAddress": "0x4c36388be6f416a29c8d8eee81c771ce6be14b18",
		"stablecoinIsToken0": false,
		"wrappedNativeAddress": "0x4200000000000000000000000000000000000006",
		"minimumNativeLocked": "1",
		"stablecoinAddresses": ["0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"],
		"whitelistTokens": ["0x4200000000000000000000000000000000000006", "0x833589FCD6EDB6E08F4C7C32D4F71B54BDA02913"],
		"tokenOverrides": [],
		"poolsToSkip": [],
		"poolMappings": []
	}`

	var cfg types.SubgraphConfig
	require.NoError(t, json.Unmarshal([]byte(doc), &cfg))
	require.Equal(t, types.Base, cfg.Network)
	require.Equal(t, types.Address("0x33128a8fc17869897dce68ed026d694621f6fdfd"), cfg.FactoryAddress)
	require.Equal(t, types.Address("0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"), cfg.WhitelistTokens[1])

	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{"unknown network", `{"network": "solana"}`, types.ErrUnsupportedNetwork},
		{"bad address", `{"network": "base", "factoryAddress": "0x33"}`, types.ErrInvalidConfig},
		{"bad threshold", `{
			"network": "base",
			"factoryAddress": "0x33128a8fc17869897dce68ed026d694621f6fdfd",
			"stablecoinWrappedNativePoolAddress": "0x4c36388be6f416a29c8d8eee81c771ce6be14b18",
			"wrappedNativeAddress": "0x4200000000000000000000000000000000000006",
			"minimumNativeLocked": "lots"
		}`, types.ErrInvalidConfig},
		{"wrapped native missing", `{
			"network": "base",
			"factoryAddress": "0x33128a8fc17869897dce68ed026d694621f6fdfd",
			"stablecoinWrappedNativePoolAddress": "0x4c36388be6f416a29c8d8eee81c771ce6be14b18",
			"wrappedNativeAddress": "0x4200000000000000000000000000000000000006",
			"minimumNativeLocked": "1",
			"whitelistTokens": ["0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"]
		}`, types.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg types.SubgraphConfig
			err := json.Unmarshal([]byte(tt.doc), &cfg)
			require.ErrorIs(t, err, tt.is)
		})
	}
}
