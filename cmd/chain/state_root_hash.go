package chain

import (
	"github.com/spf13/cobra"

	"github.com/kpob/nctl/pkg/api"
	"github.com/kpob/nctl/pkg/params"
	"github.com/kpob/nctl/pkg/rpc"
)

var stateRootHashCmd = &cobra.Command{
	Use:   "state-root-hash [net=<ordinal>] [node=<ordinal>]",
	Short: "Get the state root hash",
	Long:  `Fetches and displays the state root hash at the most recently added block.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runStateRootHash,
}

func runStateRootHash(cmd *cobra.Command, args []string) error {
	target, err := params.Parse(args)
	if err != nil {
		return err
	}
	return api.CallAndPrint(cmd.Context(), target, rpc.GetStateRootHash, nil)
}
