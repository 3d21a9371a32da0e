package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/golang/glog"

	"github.com/njchilds90/poly1d"
)

// serveStream reads one JSON ToolRequest per line from in and writes one
// JSON ToolResponse per line to out. Blank lines are skipped. A malformed
// line gets an error response and does not stop the loop.
func serveStream(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	opts := cfg.toolOptions()
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, min(64*1024, cfg.MaxBodyBytes)), cfg.MaxBodyBytes)
	enc := json.NewEncoder(out)

	line := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		var resp poly1d.ToolResponse
		var req poly1d.ToolRequest
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			glog.Warningf("line %d: %v", line, err)
			resp = poly1d.ToolResponse{Error: fmt.Sprintf("line %d: invalid request: %v", line, err)}
		} else {
			glog.V(1).Infof("line %d: tool %s", line, req.Tool)
			resp = handleLine(line, func() poly1d.ToolResponse {
				return poly1d.HandleToolCallWith(req, opts)
			})
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response for line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", line+1, err)
	}
	return nil
}

// handleLine runs call and turns a panic into an error response so a
// single bad line cannot end the stream.
func handleLine(line int, call func() poly1d.ToolResponse) (resp poly1d.ToolResponse) {
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("line %d: panic: %v\n%s", line, r, debug.Stack())
			resp = poly1d.ToolResponse{Error: fmt.Sprintf("line %d: internal error", line)}
		}
	}()
	return call()
}
