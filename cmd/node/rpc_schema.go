package node

import (
	"github.com/spf13/cobra"

	"github.com/kpob/nctl/pkg/api"
	"github.com/kpob/nctl/pkg/params"
)

var rpcSchemaCmd = &cobra.Command{
	Use:   "rpc-schema [net=<ordinal>] [node=<ordinal>]",
	Short: "Render a node's RPC schema",
	Long: `Fetches the node's OpenRPC schema via rpc.discover and writes it to stdout.

Examples:
  nctl view node rpc-schema
  nctl view node rpc-schema net=3 node=7`,
	Args: cobra.ArbitraryArgs,
	RunE: runRPCSchema,
}

func runRPCSchema(cmd *cobra.Command, args []string) error {
	target, err := params.Parse(args)
	if err != nil {
		return err
	}
	return api.RenderSchema(cmd.Context(), target)
}
