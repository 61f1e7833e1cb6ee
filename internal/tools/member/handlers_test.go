package member

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro/mirotest"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
)

func newTestContext(t *testing.T, mock *mirotest.Client) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background(),
		server.WithAccessToken("test-token"),
		server.WithClientFactory(func(token string) miro.Client { return mock }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleListMembers(t *testing.T) {
	var gotBoard string
	mock := &mirotest.Client{
		ListBoardMembersFunc: func(ctx context.Context, boardID string, params miro.PageParams) (*miro.Page[miro.BoardMember], error) {
			gotBoard = boardID
			return &miro.Page[miro.BoardMember]{
				Data: []miro.BoardMember{{ID: "m1", Name: "Dana", Role: "editor"}},
				Size: 1,
			}, nil
		},
	}
	sc := newTestContext(t, mock)

	result, err := handleListMembers(context.Background(), callRequest(map[string]any{
		"boardId": "b1",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "b1", gotBoard)
	assert.Contains(t, resultText(t, result), "Dana")
}

func TestHandleShareBoard(t *testing.T) {
	var gotReq miro.ShareRequest
	mock := &mirotest.Client{
		ShareBoardFunc: func(ctx context.Context, boardID string, req miro.ShareRequest) (*miro.Page[miro.BoardMember], error) {
			gotReq = req
			return &miro.Page[miro.BoardMember]{
				Data: []miro.BoardMember{{ID: "m1", Email: "a@example.com", Role: req.Role}},
				Size: 1,
			}, nil
		},
	}
	sc := newTestContext(t, mock)

	result, err := handleShareBoard(context.Background(), callRequest(map[string]any{
		"boardId": "b1",
		"emails":  []any{"a@example.com", "b@example.com"},
		"role":    "editor",
		"message": "join us",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Equal(t, miro.ShareRequest{
		Emails:  []string{"a@example.com", "b@example.com"},
		Role:    "editor",
		Message: "join us",
	}, gotReq)
}

func TestHandleShareBoardRequiresEmails(t *testing.T) {
	mock := &mirotest.Client{}
	sc := newTestContext(t, mock)

	result, err := handleShareBoard(context.Background(), callRequest(map[string]any{
		"boardId": "b1",
		"emails":  []any{},
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "emails")
	assert.Equal(t, 0, mock.CallCount())
}

func TestHandleUpdateMemberRequiresRole(t *testing.T) {
	mock := &mirotest.Client{}
	sc := newTestContext(t, mock)

	result, err := handleUpdateMember(context.Background(), callRequest(map[string]any{
		"boardId":  "b1",
		"memberId": "m1",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "role")
	assert.Equal(t, 0, mock.CallCount())
}

func TestHandleUpdateMember(t *testing.T) {
	var gotRole string
	mock := &mirotest.Client{
		UpdateBoardMemberFunc: func(ctx context.Context, boardID, memberID, role string) (*miro.BoardMember, error) {
			gotRole = role
			return &miro.BoardMember{ID: memberID, Role: role}, nil
		},
	}
	sc := newTestContext(t, mock)

	result, err := handleUpdateMember(context.Background(), callRequest(map[string]any{
		"boardId":  "b1",
		"memberId": "m1",
		"role":     "coowner",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "coowner", gotRole)
}

func TestHandleRemoveMember(t *testing.T) {
	mock := &mirotest.Client{
		RemoveBoardMemberFunc: func(ctx context.Context, boardID, memberID string) error {
			return nil
		},
	}
	sc := newTestContext(t, mock)

	result, err := handleRemoveMember(context.Background(), callRequest(map[string]any{
		"boardId":  "b1",
		"memberId": "m1",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Member m1 removed from board b1")
}
