package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/kpob/nctl/pkg/log"
	"github.com/kpob/nctl/pkg/netvars"
	"github.com/kpob/nctl/pkg/params"
	"github.com/kpob/nctl/pkg/rpc"
)

// AssetsRoot is the directory holding per-network assets (net-1, net-2, ...).
// The root command resolves it from the --assets flag or the environment.
var AssetsRoot = "assets"

// Logger receives request diagnostics. Rendered results never go through
// it; they are written to Output.
var Logger = zap.NewNop()

// Output is where rendered JSON is written.
var Output io.Writer = os.Stdout

// Dial resolves the target network's variables and returns a client bound
// to the target node's JSON-RPC endpoint.
func Dial(target params.Params) (rpc.Client, error) {
	vars, err := netvars.ForNet(AssetsRoot, target.Net)
	if err != nil {
		return nil, err
	}

	logger := log.WithPackage(Logger)
	endpoint := vars.NodeRPCEndpoint(target.Node)
	logger.Debug(
		"dialing node",
		zap.Int("net", target.Net),
		zap.Int("node", target.Node),
		zap.String("endpoint", endpoint),
	)
	return rpc.New(endpoint, rpc.WithLogger(logger)), nil
}

// CallAndPrint calls a method on the target node and pretty-prints the
// JSON-RPC result.
func CallAndPrint(ctx context.Context, target params.Params, method *rpc.Method, rpcParams any) error {
	client, err := Dial(target)
	if err != nil {
		return err
	}

	response, err := client.Call(ctx, method, rpcParams)
	if err != nil {
		return err
	}

	return PrintRaw(response.Result)
}

// RenderSchema fetches the target node's RPC schema via rpc.discover and
// writes it to Output. The discover result wraps the OpenRPC document in a
// "schema" member; only the document itself is rendered. Older servers
// return the document directly, in which case the whole result is rendered.
func RenderSchema(ctx context.Context, target params.Params) error {
	client, err := Dial(target)
	if err != nil {
		return err
	}

	response, err := client.Call(ctx, rpc.Discover, nil)
	if err != nil {
		return err
	}

	var result struct {
		Schema json.RawMessage `json:"schema"`
	}
	if err := json.Unmarshal(response.Result, &result); err != nil {
		return fmt.Errorf("failed to parse discover result: %w", err)
	}
	if len(result.Schema) == 0 {
		return PrintRaw(response.Result)
	}
	return PrintRaw(result.Schema)
}

// PrintJSON pretty-prints data as JSON to Output.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(Output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintRaw re-indents a raw JSON message and writes it to Output.
func PrintRaw(raw json.RawMessage) error {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse result: %w", err)
	}
	return PrintJSON(data)
}
