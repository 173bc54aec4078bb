package chain

import (
	"github.com/spf13/cobra"
)

var ChainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Inspect chain state",
	Long:  `Queries the chain as seen by one node of a test network.`,
}

func init() {
	ChainCmd.AddCommand(blockCmd)
	ChainCmd.AddCommand(stateRootHashCmd)
	ChainCmd.AddCommand(deployCmd)
	ChainCmd.AddCommand(accountCmd)
}
