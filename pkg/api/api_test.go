package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpob/nctl/pkg/params"
	"github.com/kpob/nctl/pkg/rpc"
)

// pointAtServer writes a vars file under a temporary assets root so that
// the given node of the given network resolves to the test server, and
// redirects Output to the returned buffer.
func pointAtServer(t *testing.T, serverURL string, target params.Params) *bytes.Buffer {
	t.Helper()

	u, err := url.Parse(serverURL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	root := t.TempDir()
	dir := filepath.Join(root, fmt.Sprintf("net-%d", target.Net))
	require.NoError(t, os.MkdirAll(dir, 0o755))

	vars := fmt.Sprintf("HOST=%s\nNODE_COUNT=%d\nRPC_PORT_BASE=%d\n",
		u.Hostname(), target.Node, port-(target.Node-1))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vars"), []byte(vars), 0o644))

	out := &bytes.Buffer{}
	prevRoot, prevOutput := AssetsRoot, Output
	AssetsRoot, Output = root, out
	t.Cleanup(func() {
		AssetsRoot, Output = prevRoot, prevOutput
	})
	return out
}

func discoverServer(t *testing.T, result string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var request rpc.Request
		require.NoError(t, json.Unmarshal(body, &request))
		assert.Equal(t, "rpc.discover", request.Method)

		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":%s}`, result)
	}))
}

func TestRenderSchema(t *testing.T) {
	schema := `{"openrpc":"1.0.0-rc1","info":{"title":"Client API"},"methods":[]}`
	server := discoverServer(t, fmt.Sprintf(`{"api_version":"1.5.0","name":"OpenRPC Schema","schema":%s}`, schema))
	defer server.Close()

	out := pointAtServer(t, server.URL, params.Default)

	require.NoError(t, RenderSchema(context.Background(), params.Default))
	assert.JSONEq(t, schema, out.String())
}

func TestRenderSchema_UnwrappedResult(t *testing.T) {
	schema := `{"openrpc":"1.0.0-rc1","methods":[]}`
	server := discoverServer(t, schema)
	defer server.Close()

	out := pointAtServer(t, server.URL, params.Default)

	require.NoError(t, RenderSchema(context.Background(), params.Default))
	assert.JSONEq(t, schema, out.String())
}

func TestRenderSchema_TargetSelection(t *testing.T) {
	// Node 7 of net 3 must resolve to RPC_PORT_BASE + 6.
	schema := `{"openrpc":"1.0.0-rc1","methods":[]}`
	server := discoverServer(t, fmt.Sprintf(`{"schema":%s}`, schema))
	defer server.Close()

	target := params.Params{Net: 3, Node: 7}
	out := pointAtServer(t, server.URL, target)

	require.NoError(t, RenderSchema(context.Background(), target))
	assert.JSONEq(t, schema, out.String())
}

func TestCallAndPrint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"peers":[{"node_id":"tls:0101..0101","address":"127.0.0.1:34553"}]}}`))
	}))
	defer server.Close()

	out := pointAtServer(t, server.URL, params.Default)

	require.NoError(t, CallAndPrint(context.Background(), params.Default, rpc.GetPeers, nil))
	assert.Contains(t, out.String(), `"node_id": "tls:0101..0101"`)
}

func TestDial_MissingNet(t *testing.T) {
	prevRoot := AssetsRoot
	AssetsRoot = t.TempDir()
	t.Cleanup(func() { AssetsRoot = prevRoot })

	_, err := Dial(params.Params{Net: 9, Node: 1})
	require.Error(t, err)
	assert.ErrorContains(t, err, "net-9")
}
