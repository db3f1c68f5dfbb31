package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Command for re-checking every compiled-in network record
func validateCmd(a *AppState) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validates the subgraph config of every supported network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, n := range a.Registry.Networks() {
				cfg, _ := a.Registry.Get(n)
				if err := cfg.Validate(); err != nil {
					a.Logger.Error("Invalid subgraph config", "network", n.Name(), "err", err)
					return err
				}
				a.Logger.Info("Valid subgraph config",
					"network", n.Name(),
					"stablecoins", len(cfg.StablecoinAddresses),
					"whitelist-tokens", len(cfg.WhitelistTokens),
					"token-overrides", len(cfg.TokenOverrides),
					"pools-to-skip", len(cfg.PoolsToSkip),
					"pool-mappings", len(cfg.PoolMappings),
				)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d networks valid\n", len(a.Registry.Networks()))
			return nil
		},
	}
}
