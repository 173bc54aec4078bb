package chain

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpob/nctl/pkg/api"
	"github.com/kpob/nctl/pkg/params"
	"github.com/kpob/nctl/pkg/rpc"
)

var accountCmd = &cobra.Command{
	Use:   "account <public-key> [net=<ordinal>] [node=<ordinal>]",
	Short: "Get account information",
	Long: `Fetches and displays the account stored under a public key, at the most
recently added block.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAccount,
}

func runAccount(cmd *cobra.Command, args []string) error {
	selectors, positionals := params.Split(args)
	target, err := params.Parse(selectors)
	if err != nil {
		return err
	}
	if len(positionals) != 1 {
		return fmt.Errorf("expected exactly one public key, got %d", len(positionals))
	}

	rpcParams := map[string]any{"public_key": positionals[0]}
	return api.CallAndPrint(cmd.Context(), target, rpc.GetAccountInfo, rpcParams)
}
