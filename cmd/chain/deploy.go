package chain

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpob/nctl/pkg/api"
	"github.com/kpob/nctl/pkg/params"
	"github.com/kpob/nctl/pkg/rpc"
)

var deployCmd = &cobra.Command{
	Use:   "deploy <hash> [net=<ordinal>] [node=<ordinal>]",
	Short: "Get a deploy",
	Long: `Fetches and displays a deploy together with its execution results.

Examples:
  nctl view chain deploy 5a4b2f0d... net=2 node=3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDeploy,
}

func runDeploy(cmd *cobra.Command, args []string) error {
	selectors, positionals := params.Split(args)
	target, err := params.Parse(selectors)
	if err != nil {
		return err
	}
	if len(positionals) != 1 {
		return fmt.Errorf("expected exactly one deploy hash, got %d", len(positionals))
	}

	rpcParams := map[string]any{"deploy_hash": positionals[0]}
	return api.CallAndPrint(cmd.Context(), target, rpc.GetDeploy, rpcParams)
}
