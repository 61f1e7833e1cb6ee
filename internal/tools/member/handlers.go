package member

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools"
)

func handleListMembers(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	page, err := client.ListBoardMembers(ctx, boardID, tools.ParsePageParams(args, sc.Config()))
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, page, args, "Board Members")
}

func handleGetMember(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	memberID, err := tools.RequireString(args, "memberId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	member, err := client.GetBoardMember(ctx, boardID, memberID)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, member, args, "Board Member")
}

func handleShareBoard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	emails := tools.GetStringSlice(args, "emails")
	if len(emails) == 0 {
		return mcp.NewToolResultError("required parameter \"emails\" must be a non-empty array of email addresses"), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	page, err := client.ShareBoard(ctx, boardID, miro.ShareRequest{
		Emails:  emails,
		Role:    tools.GetString(args, "role"),
		Message: tools.GetString(args, "message"),
	})
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(
		fmt.Sprintf("Board %s shared with %d recipient(s)", boardID, len(emails)),
		"invitations", page)
}

func handleUpdateMember(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	memberID, err := tools.RequireString(args, "memberId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	role, err := tools.RequireString(args, "role")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	member, err := client.UpdateBoardMember(ctx, boardID, memberID, role)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Member %s role changed to %s", memberID, role), "member", member)
}

func handleRemoveMember(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	memberID, err := tools.RequireString(args, "memberId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	if err := client.RemoveBoardMember(ctx, boardID, memberID); err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Member %s removed from board %s", memberID, boardID), "", nil)
}
