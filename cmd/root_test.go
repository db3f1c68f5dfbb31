package cmd_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	testutil "github.com/strangelove-ventures/subgraph-networks/test_util"
	"github.com/strangelove-ventures/subgraph-networks/types"
)

func TestNetworksJSON(t *testing.T) {
	a := testutil.ConfigSetup(t, "")

	out, err := execute(t, a, "networks", "--json")
	require.NoError(t, err)

	var entries []struct {
		Name    string `json:"name"`
		ChainID uint64 `json:"chainId"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, len(types.AllNetworks()))
	for i, n := range types.AllNetworks() {
		require.Equal(t, n.Name(), entries[i].Name)
		require.Equal(t, n.ChainID(), entries[i].ChainID)
	}
}

func TestNetworksTable(t *testing.T) {
	a := testutil.ConfigSetup(t, "")

	out, err := execute(t, a, "ls")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(types.AllNetworks())+1)
	require.Contains(t, lines[0], "CHAIN ID")
	require.Contains(t, out, "arbitrum-one")
	require.Contains(t, out, "42161")
}

func TestValidate(t *testing.T) {
	a := testutil.ConfigSetup(t, "")

	out, err := execute(t, a, "validate")
	require.NoError(t, err)
	require.Equal(t, "10 networks valid\n", out)
}

func TestVersion(t *testing.T) {
	a := testutil.ConfigSetup(t, "")

	out, err := execute(t, a, "version")
	require.NoError(t, err)
	require.Contains(t, out, "networks: 10")
}
