package main

import (
	"os"

	"github.com/strangelove-ventures/subgraph-networks/cmd"
)

func main() {
	if err := cmd.NewRootCmd(cmd.NewAppState()).Execute(); err != nil {
		os.Exit(1)
	}
}
