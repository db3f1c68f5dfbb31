package cmd

import (
	"github.com/spf13/cobra"
)

const (
	appName           = "subgraph-networks"
	defaultConfigPath = "./config/sample-config.yaml"
	defaultEnvFile    = ".env"
)

// NewRootCmd returns the root command with every subcommand attached. Fields
// already set on a are kept by InitAppState.
func NewRootCmd(a *AppState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Resolves the subgraph configuration for a supported network",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.InitAppState()
		},
		SilenceUsage: true,
	}

	addAppPersistantFlags(rootCmd, a)

	rootCmd.AddCommand(
		configShowCmd(a),
		networksCmd(a),
		validateCmd(a),
		serveCmd(a),
		versionCmd(),
	)

	return rootCmd
}
