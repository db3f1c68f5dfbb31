package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/strangelove-ventures/subgraph-networks/types"
)

var (
	// Version defines the application version (defined at compile time)
	Version = ""
	Commit  = ""
	Dirty   = ""
)

type versionInfo struct {
	Version  string `json:"version" yaml:"version"`
	Commit   string `json:"commit" yaml:"commit"`
	Go       string `json:"go" yaml:"go"`
	Networks int    `json:"networks" yaml:"networks"`
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version info",
		RunE:  getVersionCmd,
	}
}

func getVersionCmd(cmd *cobra.Command, args []string) error {
	commit := Commit
	if Dirty != "" && Dirty != "0" {
		commit += " (dirty)"
	}

	verInfo := versionInfo{
		Version:  Version,
		Commit:   commit,
		Go:       fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
		Networks: len(types.AllNetworks()),
	}

	bz, err := yaml.Marshal(&verInfo)

	fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
