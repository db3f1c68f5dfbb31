package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// Command for printing the resolved subgraph configuration
func configShowCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show [network]",
		Aliases: []string{"sc"},
		Short:   "Prints the subgraph config for a network. By default it prints in yaml",
		Args:    cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s show mainnet
$ %s show --config %s --json
$ SUBGRAPH_NETWORK=optimism %s sc`, appName, appName, defaultConfigPath, appName)),
		RunE: func(cmd *cobra.Command, args []string) error {
			var override string
			if len(args) == 1 {
				override = args[0]
			}

			cfg, err := a.ResolveNetwork(override)
			if err != nil {
				return err
			}

			jsn, err := cmd.Flags().GetBool(flagJSON)
			if err != nil {
				return err
			}

			switch {
			case jsn:
				out, err := json.Marshal(cfg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			default:
				out, err := yaml.Marshal(cfg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
		},
	}
	addJsonFlag(cmd)
	return cmd
}
