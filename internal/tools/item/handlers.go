package item

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools"
)

func handleListItems(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	page, err := client.ListItems(ctx, boardID, miro.ListItemsParams{
		PageParams:   tools.ParsePageParams(args, sc.Config()),
		Type:         tools.GetString(args, "type"),
		ParentItemID: tools.GetString(args, "parentItemId"),
	})
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, page, args, "Items")
}

func handleListItemsByType(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	itemType, err := tools.RequireString(args, "type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	page, err := client.ListItems(ctx, boardID, miro.ListItemsParams{
		PageParams: tools.ParsePageParams(args, sc.Config()),
		Type:       itemType,
	})
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, page, args, "Items")
}

func handleListFrameItems(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	frameID, err := tools.RequireString(args, "frameId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	page, err := client.ListItems(ctx, boardID, miro.ListItemsParams{
		PageParams:   tools.ParsePageParams(args, sc.Config()),
		ParentItemID: frameID,
	})
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, page, args, "Frame Items")
}

func handleGetItem(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	itemID, err := tools.RequireString(args, "itemId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	item, err := client.GetItem(ctx, boardID, itemID)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.FormatResult(sc, item, args, "Item")
}

func handleUpdateItemPosition(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	itemID, err := tools.RequireString(args, "itemId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	pos := tools.ParsePosition(args)
	if pos == nil {
		return mcp.NewToolResultError("required parameters \"x\" and \"y\" are missing"), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	item, err := client.UpdateItem(ctx, boardID, itemID, miro.ItemRequest{
		Position: pos,
		Parent:   tools.ParseParent(args),
	})
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Item %s moved on board %s", itemID, boardID), "item", item)
}

func handleDeleteItem(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, err := tools.RequireString(args, "boardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	itemID, err := tools.RequireString(args, "itemId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.GetMiroClient(ctx, sc)
	if err != nil {
		return tools.ErrorResult(err), nil
	}

	if err := client.DeleteItem(ctx, boardID, itemID); err != nil {
		return tools.ErrorResult(err), nil
	}

	return tools.MutationResult(fmt.Sprintf("Item %s deleted from board %s", itemID, boardID), "", nil)
}

// createItemHandler builds the handler for one kind's create tool. The
// request body carries only the blocks the caller actually supplied, so
// unset fields never reach the wire.
func createItemHandler(spec typedItem) tools.ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		boardID, err := tools.RequireString(args, "boardId")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		for _, arg := range spec.data {
			if arg.required {
				if _, err := tools.RequireString(args, arg.key); err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
			}
		}

		client, err := tools.GetMiroClient(ctx, sc)
		if err != nil {
			return tools.ErrorResult(err), nil
		}

		item, err := spec.create(ctx, client, boardID, buildItemRequest(spec, args))
		if err != nil {
			return tools.ErrorResult(err), nil
		}

		return tools.MutationResult(fmt.Sprintf("%s %s created on board %s", spec.label, item.ID, boardID), "item", item)
	}
}

// updateItemHandler builds the handler for one kind's update tool. Updates
// are partial; at least one field must be supplied.
func updateItemHandler(spec typedItem) tools.ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		boardID, err := tools.RequireString(args, "boardId")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		itemID, err := tools.RequireString(args, "itemId")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		req := buildItemRequest(spec, args)
		if req.Data == nil && req.Style == nil && req.Position == nil && req.Geometry == nil && req.Parent == nil {
			return mcp.NewToolResultError("nothing to update: provide at least one content, style, or placement field"), nil
		}

		client, err := tools.GetMiroClient(ctx, sc)
		if err != nil {
			return tools.ErrorResult(err), nil
		}

		item, err := spec.update(ctx, client, boardID, itemID, req)
		if err != nil {
			return tools.ErrorResult(err), nil
		}

		return tools.MutationResult(fmt.Sprintf("%s %s updated", spec.label, itemID), "item", item)
	}
}

func buildItemRequest(spec typedItem, args map[string]any) miro.ItemRequest {
	req := miro.ItemRequest{
		Position: tools.ParsePosition(args),
		Geometry: tools.ParseGeometry(args),
		Parent:   tools.ParseParent(args),
	}

	data := map[string]any{}
	for _, arg := range spec.data {
		if v := tools.GetString(args, arg.key); v != "" {
			data[arg.key] = v
		}
	}
	if len(data) > 0 {
		req.Data = data
	}

	style := map[string]any{}
	for _, arg := range spec.style {
		if v := tools.GetString(args, arg.key); v != "" {
			style[arg.key] = v
		}
	}
	if len(style) > 0 {
		req.Style = style
	}

	return req
}
