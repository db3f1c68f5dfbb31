package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type networkEntry struct {
	Name    string `json:"name"`
	ChainID uint64 `json:"chainId"`
}

// Command for listing supported networks
func networksCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "networks",
		Aliases: []string{"ls"},
		Short:   "Lists the supported networks and their chain ids",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := make([]networkEntry, 0)
			for _, n := range a.Registry.Networks() {
				entries = append(entries, networkEntry{Name: n.Name(), ChainID: n.ChainID()})
			}

			jsn, err := cmd.Flags().GetBool(flagJSON)
			if err != nil {
				return err
			}
			if jsn {
				out, err := json.Marshal(entries)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCHAIN ID")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%d\n", e.Name, e.ChainID)
			}
			return w.Flush()
		},
	}
	addJsonFlag(cmd)
	return cmd
}
