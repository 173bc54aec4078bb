package node

import (
	"github.com/spf13/cobra"

	"github.com/kpob/nctl/pkg/api"
	"github.com/kpob/nctl/pkg/params"
	"github.com/kpob/nctl/pkg/rpc"
)

var statusCmd = &cobra.Command{
	Use:   "status [net=<ordinal>] [node=<ordinal>]",
	Short: "Get node status",
	Long:  `Fetches and displays the node's status (uptime, last added block, round length).`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	target, err := params.Parse(args)
	if err != nil {
		return err
	}
	return api.CallAndPrint(cmd.Context(), target, rpc.GetStatus, nil)
}
