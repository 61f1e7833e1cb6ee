package board

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools"
)

func handleListBoards(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	params := miro.ListBoardsParams{
		PageParams: tools.ParsePageParams(args, sc.Config()),
		TeamID:     tools.GetString(args, "teamId"),
		Query:      tools.GetString(args, "query"),
		Owner:      tools.GetString(args, "owner"),
		Sort:       tools.GetString(args, "sort"),
	}

	page, err := client.ListBoards(ctx, params)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, page, args, "Boards")
}

func handleGetBoard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	board, err := client.GetBoard(ctx, boardID)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, board, args, "Board")
}

func handleCreateBoard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, err := tools.RequireString(args, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	board, err := client.CreateBoard(ctx, miro.BoardRequest{
		Name:        name,
		Description: tools.GetString(args, "description"),
		TeamID:      tools.GetString(args, "teamId"),
	})
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Board %q created", board.Name), "board", board)
}

func handleUpdateBoard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := miro.BoardRequest{
		Name:        tools.GetString(args, "name"),
		Description: tools.GetString(args, "description"),
	}
	if req.Name == "" && req.Description == "" {
		return mcp.NewToolResultError("nothing to update: provide name or description"), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	board, err := client.UpdateBoard(ctx, boardID, req)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Board %s updated", boardID), "board", board)
}

func handleDeleteBoard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	if err := client.DeleteBoard(ctx, boardID); err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Board %s deleted", boardID), "", nil)
}

func handleCopyBoard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	board, err := client.CopyBoard(ctx, boardID, miro.BoardRequest{
		Name:        tools.GetString(args, "name"),
		Description: tools.GetString(args, "description"),
		TeamID:      tools.GetString(args, "teamId"),
	})
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Board %s copied to %s", boardID, board.ID), "board", board)
}
