// Package netvars resolves and loads the per-network variable files kept
// under the assets directory. Each network owns one flat KEY=value file,
// e.g. assets/net-1/vars, describing where its nodes listen.
package netvars

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/valyala/fasttemplate"
	"golang.org/x/xerrors"
)

// Vars holds the settings of one test network.
type Vars struct {
	Protocol     string `mapstructure:"PROTOCOL"`
	Host         string `mapstructure:"HOST" validate:"required"`
	NodeCount    int    `mapstructure:"NODE_COUNT" validate:"required,gt=0"`
	RPCPortBase  int    `mapstructure:"RPC_PORT_BASE" validate:"required,gt=0"`
	RESTPortBase int    `mapstructure:"REST_PORT_BASE" validate:"gte=0"`
	SSEPortBase  int    `mapstructure:"SSE_PORT_BASE" validate:"gte=0"`
}

const (
	// VarsFileName is the name of the variable file within a network's
	// asset directory.
	VarsFileName = "vars"

	defaultProtocol = "http"

	rpcEndpointTemplate = "{protocol}://{host}:{port}/rpc"
)

// Resolve returns the path to the variable file of the given network.
// Existence is not checked; a missing network surfaces as a load error.
func Resolve(assetsRoot string, net int) string {
	return filepath.Join(assetsRoot, fmt.Sprintf("net-%d", net), VarsFileName)
}

// Load reads and validates a variable file.
func Load(path string) (*Vars, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.SetDefault("PROTOCOL", defaultProtocol)

	if err := v.ReadInConfig(); err != nil {
		return nil, xerrors.Errorf("failed to read network vars %v: %w", path, err)
	}

	var vars Vars
	if err := v.Unmarshal(&vars); err != nil {
		return nil, xerrors.Errorf("failed to parse network vars %v: %w", path, err)
	}

	if err := validator.New().Struct(&vars); err != nil {
		return nil, xerrors.Errorf("invalid network vars %v: %w", path, err)
	}

	return &vars, nil
}

// ForNet resolves and loads the variables of the given network.
func ForNet(assetsRoot string, net int) (*Vars, error) {
	return Load(Resolve(assetsRoot, net))
}

// NodeRPCEndpoint returns the JSON-RPC endpoint of a node. Node N listens
// on port RPC_PORT_BASE + N - 1.
func (v *Vars) NodeRPCEndpoint(node int) string {
	t := fasttemplate.New(rpcEndpointTemplate, "{", "}")
	return t.ExecuteString(map[string]any{
		"protocol": v.Protocol,
		"host":     v.Host,
		"port":     strconv.Itoa(v.RPCPortBase + node - 1),
	})
}
