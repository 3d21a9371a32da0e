// cmd/mcp-server/main.go — MCP server for poly1d
//
// Exposes poly1d tools as an HTTP endpoint for AI agent frameworks, or as
// newline-delimited JSON over stdin/stdout.
//
// Usage:
//
//	go run ./cmd/mcp-server --port 8080
//	go run ./cmd/mcp-server stdio < requests.jsonl
//	go run ./cmd/mcp-server eval --coeffs 1,-3,-1,3 --at 3.5
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		glog.Errorf("mcp-server: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}
