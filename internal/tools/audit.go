package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/instrumentation"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
)

// WrapWithAuditLogging wraps a tool handler with audit logging. The wrapper
// captures invocation timing, the board and item the tool operated on, the
// success or error outcome, and the OpenTelemetry trace context for
// correlation.
//
// Without an instrumentation provider the handler runs unwrapped.
func WrapWithAuditLogging(
	toolName string,
	handler ToolHandler,
	sc *server.ServerContext,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		provider := sc.InstrumentationProvider()
		if provider == nil || provider.AuditLogger() == nil {
			return handler(ctx, request, sc)
		}

		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(ctx)

		extractAuditInfoFromArgs(invocation, request.GetArguments())

		result, err := handler(ctx, request, sc)

		if err != nil {
			invocation.CompleteWithError(err)
		} else if result != nil && result.IsError {
			// Tool-level failures travel in the result envelope, not as Go
			// errors; surface them in the audit record anyway.
			invocation.Complete(false, nil)
			if len(result.Content) > 0 {
				if textContent, ok := result.Content[0].(mcp.TextContent); ok {
					invocation.Error = textContent.Text
				}
			}
		} else {
			invocation.CompleteSuccess()
		}

		provider.AuditLogger().LogToolInvocation(invocation)
		provider.Metrics().RecordToolInvocation(ctx, toolName, invocation.Status, invocation.Duration)

		return result, err
	}
}

// extractAuditInfoFromArgs pulls board and item identifiers out of the tool
// arguments. Argument values are user-controlled, so only identifiers go
// into the record, never content.
func extractAuditInfoFromArgs(invocation *instrumentation.ToolInvocation, args map[string]any) {
	if boardID, ok := args["boardId"].(string); ok && boardID != "" {
		invocation.WithBoard(boardID)
	}

	itemID := extractItemID(args)
	itemType, _ := args["type"].(string)
	if itemID != "" || itemType != "" {
		invocation.WithItem(itemID, itemType)
	}
}

// extractItemID tries the argument names different tools use for the
// identifier of the object they act on.
func extractItemID(args map[string]any) string {
	for _, key := range []string{"itemId", "connectorId", "tagId", "groupId", "memberId"} {
		if id, ok := args[key].(string); ok && id != "" {
			return id
		}
	}
	return ""
}
