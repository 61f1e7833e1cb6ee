package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// runStdioServer runs the server on the stdio transport until stdin closes or
// ctx is cancelled. Nothing is printed to stdout here; it carries the MCP
// protocol stream.
func runStdioServer(ctx context.Context, mcpSrv *mcpserver.MCPServer) error {
	stdioSrv := mcpserver.NewStdioServer(mcpSrv)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := stdioSrv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
			serverDone <- err
		}
	}()

	// A cancelled shutdown context is a clean stop, not a failure.
	err := <-serverDone
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}
