package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/poly1d"
)

func decodeLines(t *testing.T, out string) []poly1d.ToolResponse {
	t.Helper()
	var resps []poly1d.ToolResponse
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var r poly1d.ToolResponse
		require.NoError(t, json.Unmarshal([]byte(line), &r), line)
		resps = append(resps, r)
	}
	return resps
}

func TestServeStream(t *testing.T) {
	in := strings.NewReader(`{"tool":"degree","params":{"poly":[0,0,1,2,3]}}

not json
{"tool":"deriv","params":{"poly":[1,0]}}
`)
	var out bytes.Buffer
	require.NoError(t, serveStream(context.Background(), in, &out, defaultConfig()))

	resps := decodeLines(t, out.String())
	require.Len(t, resps, 3)
	assert.Equal(t, "2", resps[0].String)
	assert.Contains(t, resps[1].Error, "line 3")
	assert.Equal(t, "1", resps[2].String)
}

func TestServeStream_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := serveStream(ctx, strings.NewReader("{\"tool\":\"mcp_spec\"}\n"), &out, defaultConfig())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestServeStream_LineTooLong(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxBodyBytes = 16
	var out bytes.Buffer
	err := serveStream(context.Background(), strings.NewReader(strings.Repeat("x", 64)+"\n"), &out, cfg)
	require.Error(t, err)
}

func TestServeStream_OrderLimit(t *testing.T) {
	in := strings.NewReader(`{"tool":"integ","params":{"poly":[1],"m":1e18}}
{"tool":"integ","params":{"poly":[1],"m":10000000}}
{"tool":"degree","params":{"poly":[1,0]}}
`)
	var out bytes.Buffer
	require.NoError(t, serveStream(context.Background(), in, &out, defaultConfig()))

	resps := decodeLines(t, out.String())
	require.Len(t, resps, 3)
	assert.Contains(t, resps[0].Error, "out of range")
	assert.Contains(t, resps[1].Error, "at most")
	assert.Equal(t, "1", resps[2].String)
}

func TestHandleLine_RecoversPanic(t *testing.T) {
	resp := handleLine(7, func() poly1d.ToolResponse { panic("boom") })
	assert.Equal(t, "line 7: internal error", resp.Error)

	resp = handleLine(8, func() poly1d.ToolResponse { return poly1d.ToolResponse{String: "ok"} })
	assert.Equal(t, "ok", resp.String)
	assert.Empty(t, resp.Error)
}

func TestEvalCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"eval", "--coeffs", "1,-3,-1,3", "--at", "3.5"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "p(x) = 1x^3 - 3x^2 - 1x + 3\np(3.5) = 5.625\n", out.String())
}

func TestEvalCmd_RequiresCoeffs(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"eval", "--at", "1"})
	require.Error(t, root.Execute())
}

func TestSpecCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"spec"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "real_roots")
}
