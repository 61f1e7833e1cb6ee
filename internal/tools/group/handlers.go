package group

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools"
)

func handleCreateGroup(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	itemIDs := tools.GetStringSlice(args, "itemIds")
	if len(itemIDs) < 2 {
		return mcp.NewToolResultError("itemIds must list at least two item IDs"), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	grp, err := client.CreateGroup(ctx, boardID, itemIDs)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Group %s created from %d items", grp.ID, len(itemIDs)), "group", grp)
}

func handleListGroups(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	page, err := client.ListGroups(ctx, boardID, tools.ParsePageParams(args, sc.Config()))
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, page, args, "Groups")
}

func handleGetGroup(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	groupID, err := tools.RequireString(args, "groupId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	grp, err := client.GetGroup(ctx, boardID, groupID)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, grp, args, "Group")
}

func handleListGroupItems(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	groupID, err := tools.RequireString(args, "groupId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	page, err := client.ListGroupItems(ctx, boardID, groupID, tools.ParsePageParams(args, sc.Config()))
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, page, args, "Group Items")
}

func handleUngroup(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	groupID, err := tools.RequireString(args, "groupId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	if err := client.Ungroup(ctx, boardID, groupID); err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Group %s dissolved on board %s", groupID, boardID), "", nil)
}
