package rpc

import "time"

// Method describes a method exposed by the node's JSON-RPC server.
type Method struct {
	Name    string
	Timeout time.Duration
}

var (
	// Discover returns the OpenRPC schema describing the node's RPC API.
	Discover = &Method{Name: "rpc.discover", Timeout: 30 * time.Second}

	GetStatus        = &Method{Name: "info_get_status"}
	GetPeers         = &Method{Name: "info_get_peers"}
	GetDeploy        = &Method{Name: "info_get_deploy"}
	GetBlock         = &Method{Name: "chain_get_block"}
	GetStateRootHash = &Method{Name: "chain_get_state_root_hash"}
	GetAccountInfo   = &Method{Name: "state_get_account_info"}
)
