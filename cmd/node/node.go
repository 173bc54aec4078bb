package node

import (
	"github.com/spf13/cobra"
)

var NodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Inspect a node",
	Long:  `Queries a single node of a test network over its JSON-RPC server.`,
}

func init() {
	NodeCmd.AddCommand(rpcSchemaCmd)
	NodeCmd.AddCommand(statusCmd)
	NodeCmd.AddCommand(peersCmd)
}
