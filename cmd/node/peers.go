package node

import (
	"github.com/spf13/cobra"

	"github.com/kpob/nctl/pkg/api"
	"github.com/kpob/nctl/pkg/params"
	"github.com/kpob/nctl/pkg/rpc"
)

var peersCmd = &cobra.Command{
	Use:   "peers [net=<ordinal>] [node=<ordinal>]",
	Short: "Get node peers",
	Long:  `Fetches and displays the peers currently connected to the node.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runPeers,
}

func runPeers(cmd *cobra.Command, args []string) error {
	target, err := params.Parse(args)
	if err != nil {
		return err
	}
	return api.CallAndPrint(cmd.Context(), target, rpc.GetPeers, nil)
}
