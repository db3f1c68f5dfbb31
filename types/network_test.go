package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strangelove-ventures/subgraph-networks/types"
)

func TestParseNetwork(t *testing.T) {
	tests := []struct {
		name    string
		want    types.Network
		chainID uint64
	}{
		{"arbitrum-one", types.ArbitrumOne, 42161},
		{"avalanche", types.Avalanche, 43114},
		{"base", types.Base, 8453},
		{"blast-mainnet", types.BlastMainnet, 81457},
		{"bsc", types.BSC, 56},
		{"celo", types.Celo, 42220},
		{"mainnet", types.Mainnet, 1},
		{"matic", types.Matic, 137},
		{"optimism", types.Optimism, 10},
		{"smartbch-mainnet", types.SmartBCH, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := types.ParseNetwork(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, n)
			require.Equal(t, tt.name, n.Name())
			require.Equal(t, tt.chainID, n.ChainID())
		})
	}
}

func TestParseNetworkUnsupported(t *testing.T) {
	for _, name := range []string{"unknown-network-xyz", "", "Mainnet", " mainnet", "smartbch", "arbitrum"} {
		_, err := types.ParseNetwork(name)
		require.Error(t, err, name)
		require.True(t, errors.Is(err, types.ErrUnsupportedNetwork), name)

		var unsupported *types.UnsupportedNetworkError
		require.True(t, errors.As(err, &unsupported))
		require.Equal(t, name, unsupported.Name)
	}
}

func TestAllNetworksNamesAreUnique(t *testing.T) {
	all := types.AllNetworks()
	require.Len(t, all, 10)

	names := make(map[string]types.Network)
	for _, n := range all {
		require.True(t, n.Supported())
		_, dup := names[n.Name()]
		require.False(t, dup, n.Name())
		names[n.Name()] = n

		parsed, err := types.ParseNetwork(n.Name())
		require.NoError(t, err)
		require.Equal(t, n, parsed)
	}

	// callers get their own copy
	all[0] = types.Network(12345)
	require.Equal(t, types.ArbitrumOne, types.AllNetworks()[0])
}

func TestUnsupportedNetworkValue(t *testing.T) {
	n := types.Network(12345)
	require.False(t, n.Supported())
	require.Equal(t, "", n.Name())
	require.Equal(t, "network(12345)", n.String())

	_, err := n.MarshalText()
	require.Error(t, err)
}

func TestNetworkTextEncoding(t *testing.T) {
	bz, err := json.Marshal(map[string]types.Network{"n": types.BlastMainnet})
	require.NoError(t, err)
	require.JSONEq(t, `{"n":"blast-mainnet"}`, string(bz))

	var out map[string]types.Network
	require.NoError(t, json.Unmarshal(bz, &out))
	require.Equal(t, types.BlastMainnet, out["n"])

	var n types.Network
	require.ErrorIs(t, n.UnmarshalText([]byte("solana")), types.ErrUnsupportedNetwork)
}
