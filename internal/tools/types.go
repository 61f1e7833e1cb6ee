// Package tools provides shared utilities for MCP tool implementations:
// client resolution, argument parsing, error envelopes, and audit logging.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
)

// ToolHandler is the signature for MCP tool handler functions that take
// ServerContext.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error)

// GetMiroClient returns the Miro client bound to the credentials of the
// request carried by ctx. Tool handlers use this instead of constructing
// clients themselves, so per-request token isolation is enforced in one
// place.
func GetMiroClient(ctx context.Context, sc *server.ServerContext) (miro.Client, error) {
	return sc.MiroClientForContext(ctx)
}

// ErrorResult converts an error from the Miro client into a tool error
// result with a stable, category-specific message shape. Rate limit errors
// carry the advisory wait and a "(retryable)" marker so agents know a plain
// retry can succeed; authentication errors never can, and say so.
func ErrorResult(err error) *mcp.CallToolResult {
	if wait, ok := miro.IsRateLimitError(err); ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Miro API rate limit exceeded, wait %d seconds before retrying (retryable)", wait))
	}
	if errors.Is(err, server.ErrTokenMissing) {
		return mcp.NewToolResultError(
			"no Miro access token available: supply one via the X-Miro-Token header, an Authorization bearer header, or server configuration")
	}
	if miro.IsAuthError(err) {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Miro authentication failed: %v (check that the access token is valid and has the required scopes)", err))
	}
	return mcp.NewToolResultError(err.Error())
}

// MutationResult wraps the outcome of a state-changing operation in the
// success envelope: {"success": true, "message": ..., "<entityKey>": payload}.
// Void operations (deletes, detaches) pass an empty entityKey and nil payload.
func MutationResult(message, entityKey string, payload any) (*mcp.CallToolResult, error) {
	envelope := map[string]any{
		"success": true,
		"message": message,
	}
	if entityKey != "" && payload != nil {
		envelope[entityKey] = payload
	}

	body, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(body)), nil
}

// FormatResult renders v with the server's formatter in the mode requested
// by the tool arguments and wraps it in a success result.
func FormatResult(sc *server.ServerContext, v any, args map[string]any, label string) (*mcp.CallToolResult, error) {
	mode, err := ParseFormat(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := sc.Formatter().Format(v, mode, label)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render response: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}
