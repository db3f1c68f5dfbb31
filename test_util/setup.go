package testutil

import (
	"os"
	"testing"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"

	"github.com/strangelove-ventures/subgraph-networks/cmd"
	"github.com/strangelove-ventures/subgraph-networks/networks"
	"github.com/strangelove-ventures/subgraph-networks/types"
)

const metricsPort = 2112

// ConfigSetup returns an AppState selecting network from an in-memory config
// so commands never touch a config file on disk.
func ConfigSetup(t *testing.T, network string) *cmd.AppState {
	t.Helper()

	// keep the environment from overriding the configured network
	t.Setenv(types.NetworkEnvKey, "")

	testConfig := types.AppConfig{
		Network: network,
		Api: types.ApiConfig{
			ListenAddr: "localhost:0",
		},
		MetricsPort: metricsPort,
	}

	a := cmd.NewAppState()
	a.Logger = log.NewLogger(os.Stderr, log.LevelOption(zerolog.ErrorLevel))
	a.Config = &testConfig
	a.Registry = networks.Default()
	return a
}
