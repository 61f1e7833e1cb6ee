package connector

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools"
)

func handleCreateConnector(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	startItemID, err := tools.RequireString(args, "startItemId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	endItemID, err := tools.RequireString(args, "endItemId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	req := miro.ConnectorRequest{
		Shape:     tools.GetString(args, "shape"),
		StartItem: &miro.ConnectorEndpoint{Item: startItemID},
		EndItem:   &miro.ConnectorEndpoint{Item: endItemID},
	}
	if caption := tools.GetString(args, "caption"); caption != "" {
		req.Captions = []miro.ConnectorCaption{{Content: caption}}
	}

	conn, err := client.CreateConnector(ctx, boardID, req)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(
		fmt.Sprintf("Connector %s created between %s and %s", conn.ID, startItemID, endItemID),
		"connector", conn)
}

func handleListConnectors(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	page, err := client.ListConnectors(ctx, boardID, tools.ParsePageParams(args, sc.Config()))
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, page, args, "Connectors")
}

func handleGetConnector(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	connectorID, err := tools.RequireString(args, "connectorId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	conn, err := client.GetConnector(ctx, boardID, connectorID)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, conn, args, "Connector")
}

func handleUpdateConnector(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	connectorID, err := tools.RequireString(args, "connectorId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := miro.ConnectorRequest{
		Shape: tools.GetString(args, "shape"),
	}
	if start := tools.GetString(args, "startItemId"); start != "" {
		req.StartItem = &miro.ConnectorEndpoint{Item: start}
	}
	if end := tools.GetString(args, "endItemId"); end != "" {
		req.EndItem = &miro.ConnectorEndpoint{Item: end}
	}
	if caption := tools.GetString(args, "caption"); caption != "" {
		req.Captions = []miro.ConnectorCaption{{Content: caption}}
	}
	if req.Shape == "" && req.StartItem == nil && req.EndItem == nil && req.Captions == nil {
		return mcp.NewToolResultError("nothing to update: provide shape, startItemId, endItemId, or caption"), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	conn, err := client.UpdateConnector(ctx, boardID, connectorID, req)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Connector %s updated", connectorID), "connector", conn)
}

func handleDeleteConnector(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	connectorID, err := tools.RequireString(args, "connectorId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	if err := client.DeleteConnector(ctx, boardID, connectorID); err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Connector %s deleted from board %s", connectorID, boardID), "", nil)
}
