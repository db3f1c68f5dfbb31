package cmd

import (
	"errors"
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/strangelove-ventures/subgraph-networks/networks"
	"github.com/strangelove-ventures/subgraph-networks/types"
)

// AppState is the modifiable state of the application.
type AppState struct {
	Config *types.AppConfig

	ConfigPath string

	EnvFile string

	Debug bool

	LogLevel string

	Logger log.Logger

	Registry *networks.Registry
}

func NewAppState() *AppState {
	return &AppState{}
}

// InitAppState checks if a logger, config and registry are present. If not, it adds them to the AppState
func (a *AppState) InitAppState() error {
	if a.Logger == nil {
		a.InitLogger()
	}
	if a.Config == nil {
		if err := a.loadConfigFile(); err != nil {
			return err
		}
	}
	if a.Registry == nil {
		a.Registry = networks.Default()
	}
	return nil
}

func (a *AppState) InitLogger() {
	// info level is default
	level := zerolog.InfoLevel
	switch a.LogLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// a.Debug overrides a.loglevel
	if a.Debug {
		a.Logger = log.NewLogger(os.Stdout, log.LevelOption(zerolog.DebugLevel))
	} else {
		a.Logger = log.NewLogger(os.Stdout, log.LevelOption(level))
	}
}

// loadConfigFile loads a configuration into the AppState. It uses the AppState ConfigPath
// to determine file path to config. A missing config file is not an error: the
// network can still come from the environment or the command line.
func (a *AppState) loadConfigFile() error {
	if a.EnvFile != "" {
		if err := godotenv.Load(a.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("unable to load env file %s: %w", a.EnvFile, err)
		}
	}

	config, err := types.ParseAppConfig(a.ConfigPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		a.Logger.Debug("Config file not found, using defaults", "location", a.ConfigPath)
		config, err = types.DefaultAppConfig(), nil
	case err != nil:
		a.Logger.Error("Unable to parse config file", "location", a.ConfigPath, "err", err)
		return err
	default:
		a.Logger.Info("Successfully parsed config file", "location", a.ConfigPath)
	}
	a.Config = config
	return nil
}

// ResolveNetwork resolves the network to index. override (usually a
// positional argument) takes precedence over SUBGRAPH_NETWORK and the config file.
func (a *AppState) ResolveNetwork(override string) (types.SubgraphConfig, error) {
	name := a.Config.NetworkName(override)
	if name == "" {
		return types.SubgraphConfig{}, fmt.Errorf("no network selected: pass a network name, set %s or set network in %s", types.NetworkEnvKey, a.ConfigPath)
	}

	cfg, err := a.Registry.Resolve(name)
	if err != nil {
		a.Logger.Error("Unable to resolve network", "network", name, "err", err)
		return types.SubgraphConfig{}, err
	}

	a.Logger.Info("Resolved subgraph config",
		"network", cfg.Network.Name(),
		"chain-id", cfg.Network.ChainID(),
		"factory", cfg.FactoryAddress,
		"whitelist-tokens", len(cfg.WhitelistTokens),
		"pool-mappings", len(cfg.PoolMappings),
	)
	return cfg, nil
}
