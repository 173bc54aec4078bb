package chain

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kpob/nctl/pkg/api"
	"github.com/kpob/nctl/pkg/params"
	"github.com/kpob/nctl/pkg/rpc"
)

var blockCmd = &cobra.Command{
	Use:   "block [hash|height] [net=<ordinal>] [node=<ordinal>]",
	Short: "Get a block",
	Long: `Fetches and displays a block. If the argument parses as a number, it is
treated as a height; otherwise as a hash. Without an argument, the most
recently added block is returned.

Examples:
  nctl view chain block
  nctl view chain block 42 net=2
  nctl view chain block 13dfcf9f19f8b7430087eca5d9c2f9247bcdbd8e7d14887aed8a7fd0a6e32904`,
	Args: cobra.ArbitraryArgs,
	RunE: runBlock,
}

func runBlock(cmd *cobra.Command, args []string) error {
	selectors, positionals := params.Split(args)
	target, err := params.Parse(selectors)
	if err != nil {
		return err
	}

	var rpcParams any
	if len(positionals) > 0 {
		identifier := positionals[0]
		if height, err := strconv.ParseUint(identifier, 10, 64); err == nil {
			rpcParams = map[string]any{"block_identifier": map[string]any{"Height": height}}
		} else {
			rpcParams = map[string]any{"block_identifier": map[string]any{"Hash": identifier}}
		}
	}

	return api.CallAndPrint(cmd.Context(), target, rpc.GetBlock, rpcParams)
}
