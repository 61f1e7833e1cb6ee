package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/instrumentation"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
)

func newAuditTestContext(t *testing.T) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func callToolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestWrapWithAuditLoggingPassesThroughWithoutProvider(t *testing.T) {
	sc := newAuditTestContext(t)

	handlerCalled := false
	handler := func(ctx context.Context, request mcp.CallToolRequest, got *server.ServerContext) (*mcp.CallToolResult, error) {
		handlerCalled = true
		assert.Same(t, sc, got)
		return mcp.NewToolResultText("ok"), nil
	}

	wrapped := WrapWithAuditLogging("miro_list_boards", handler, sc)

	result, err := wrapped(context.Background(), callToolRequest(nil))
	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, "ok", resultText(t, result))
}

func TestWrapWithAuditLoggingPropagatesErrors(t *testing.T) {
	sc := newAuditTestContext(t)

	wantErr := errors.New("handler exploded")
	handler := func(ctx context.Context, request mcp.CallToolRequest, _ *server.ServerContext) (*mcp.CallToolResult, error) {
		return nil, wantErr
	}

	wrapped := WrapWithAuditLogging("miro_get_board", handler, sc)

	_, err := wrapped(context.Background(), callToolRequest(nil))
	assert.ErrorIs(t, err, wantErr)
}

func TestExtractAuditInfoFromArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         map[string]any
		wantBoardID  string
		wantItemID   string
		wantItemType string
	}{
		{
			name:        "board only",
			args:        map[string]any{"boardId": "b1"},
			wantBoardID: "b1",
		},
		{
			name:         "board and item",
			args:         map[string]any{"boardId": "b1", "itemId": "i1", "type": "sticky_note"},
			wantBoardID:  "b1",
			wantItemID:   "i1",
			wantItemType: "sticky_note",
		},
		{
			name:       "connector id",
			args:       map[string]any{"connectorId": "c1"},
			wantItemID: "c1",
		},
		{
			name:       "tag id",
			args:       map[string]any{"tagId": "t1"},
			wantItemID: "t1",
		},
		{
			name:       "group id",
			args:       map[string]any{"groupId": "g1"},
			wantItemID: "g1",
		},
		{
			name:       "member id",
			args:       map[string]any{"memberId": "m1"},
			wantItemID: "m1",
		},
		{
			name: "no identifiers",
			args: map[string]any{"name": "Roadmap"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invocation := instrumentation.NewToolInvocation("test")
			extractAuditInfoFromArgs(invocation, tt.args)

			assert.Equal(t, tt.wantBoardID, invocation.BoardID)
			assert.Equal(t, tt.wantItemID, invocation.ItemID)
			assert.Equal(t, tt.wantItemType, invocation.ItemType)
		})
	}
}
