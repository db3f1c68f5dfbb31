package types_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strangelove-ventures/subgraph-networks/types"
)

func TestParseAppConfig(t *testing.T) {
	cfg, err := types.ParseAppConfig("../config/sample-config.yaml")
	require.NoError(t, err, "Error parsing config")

	require.Equal(t, "mainnet", cfg.Network)
	require.Equal(t, "localhost:8000", cfg.Api.ListenAddr)
	require.Equal(t, int16(2112), cfg.MetricsPort)
	require.Empty(t, cfg.Api.TrustedProxies)
}

func TestParseAppConfigDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("network: base\n"), 0o600))

	cfg, err := types.ParseAppConfig(file)
	require.NoError(t, err)
	require.Equal(t, "base", cfg.Network)
	require.Equal(t, "localhost:8000", cfg.Api.ListenAddr)
	require.Equal(t, int16(2112), cfg.MetricsPort)
}

func TestParseAppConfigErrors(t *testing.T) {
	_, err := types.ParseAppConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("network: [base\n"), 0o600))
	_, err = types.ParseAppConfig(file)
	require.Error(t, err)
}

func TestNetworkNamePrecedence(t *testing.T) {
	cfg := types.DefaultAppConfig()
	cfg.Network = "mainnet"

	t.Setenv(types.NetworkEnvKey, "")
	require.Equal(t, "mainnet", cfg.NetworkName(""))

	t.Setenv(types.NetworkEnvKey, "optimism")
	require.Equal(t, "optimism", cfg.NetworkName(""))
	require.Equal(t, "celo", cfg.NetworkName("celo"))
}
