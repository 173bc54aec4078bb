package view

import (
	"github.com/spf13/cobra"

	"github.com/kpob/nctl/cmd/chain"
	"github.com/kpob/nctl/cmd/node"
)

var ViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Inspect networks and nodes",
	Long:  `Read-only views over a test network: node state and chain state.`,
}

func init() {
	ViewCmd.AddCommand(node.NodeCmd)
	ViewCmd.AddCommand(chain.ChainCmd)
}
