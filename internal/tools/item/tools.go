// Package item implements the MCP tools for board content: generic item
// queries, placement and deletion, and the typed create/update tools for
// sticky notes, shapes, text, cards, app cards, frames, embeds, images,
// and documents.
package item

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools"
)

type createFunc func(ctx context.Context, client miro.Client, boardID string, req miro.ItemRequest) (*miro.Item, error)
type updateFunc func(ctx context.Context, client miro.Client, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error)

// argSpec describes one string argument that maps into the item's data or
// style block under the same key.
type argSpec struct {
	key      string
	desc     string
	required bool
}

// typedItem describes one item kind's tool surface. The Miro API exposes a
// separate endpoint pair per kind, but the request shape is uniform, so one
// table drives registration for all of them.
type typedItem struct {
	kind   string // tool name suffix and audit item type
	label  string // heading label in markdown output
	data   []argSpec
	style  []argSpec
	create createFunc
	update updateFunc // nil when the API has no update endpoint for the kind
}

func typedItems() []typedItem {
	return []typedItem{
		{
			kind:  "sticky_note",
			label: "Sticky Note",
			data: []argSpec{
				{key: "content", desc: "Text content of the sticky note", required: true},
				{key: "shape", desc: "Sticky note shape: square or rectangle (optional)"},
			},
			style: []argSpec{
				{key: "fillColor", desc: "Fill color name, e.g. yellow, light_green, cyan (optional)"},
			},
			create: func(ctx context.Context, c miro.Client, boardID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.CreateStickyNote(ctx, boardID, req)
			},
			update: func(ctx context.Context, c miro.Client, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.UpdateStickyNote(ctx, boardID, itemID, req)
			},
		},
		{
			kind:  "shape",
			label: "Shape",
			data: []argSpec{
				{key: "shape", desc: "Geometric shape: rectangle, circle, triangle, rhombus, etc. (optional, default rectangle)"},
				{key: "content", desc: "Text displayed inside the shape (optional)"},
			},
			style: []argSpec{
				{key: "fillColor", desc: "Fill color as a hex value (optional)"},
				{key: "borderColor", desc: "Border color as a hex value (optional)"},
			},
			create: func(ctx context.Context, c miro.Client, boardID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.CreateShape(ctx, boardID, req)
			},
			update: func(ctx context.Context, c miro.Client, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.UpdateShape(ctx, boardID, itemID, req)
			},
		},
		{
			kind:  "text",
			label: "Text",
			data: []argSpec{
				{key: "content", desc: "Text content (may include basic HTML formatting)", required: true},
			},
			style: []argSpec{
				{key: "color", desc: "Text color as a hex value (optional)"},
				{key: "fontSize", desc: "Font size in dp (optional)"},
			},
			create: func(ctx context.Context, c miro.Client, boardID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.CreateText(ctx, boardID, req)
			},
			update: func(ctx context.Context, c miro.Client, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.UpdateText(ctx, boardID, itemID, req)
			},
		},
		{
			kind:  "card",
			label: "Card",
			data: []argSpec{
				{key: "title", desc: "Card title", required: true},
				{key: "description", desc: "Card description (optional)"},
				{key: "dueDate", desc: "Due date in RFC 3339 format (optional)"},
			},
			style: []argSpec{
				{key: "cardTheme", desc: "Card theme color as a hex value (optional)"},
			},
			create: func(ctx context.Context, c miro.Client, boardID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.CreateCard(ctx, boardID, req)
			},
			update: func(ctx context.Context, c miro.Client, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.UpdateCard(ctx, boardID, itemID, req)
			},
		},
		{
			kind:  "app_card",
			label: "App Card",
			data: []argSpec{
				{key: "title", desc: "App card title", required: true},
				{key: "description", desc: "App card description (optional)"},
				{key: "status", desc: "Sync status: disconnected, connected, disabled (optional)"},
			},
			create: func(ctx context.Context, c miro.Client, boardID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.CreateAppCard(ctx, boardID, req)
			},
			update: func(ctx context.Context, c miro.Client, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.UpdateAppCard(ctx, boardID, itemID, req)
			},
		},
		{
			kind:  "frame",
			label: "Frame",
			data: []argSpec{
				{key: "title", desc: "Frame title (optional)"},
			},
			style: []argSpec{
				{key: "fillColor", desc: "Frame background color as a hex value (optional)"},
			},
			create: func(ctx context.Context, c miro.Client, boardID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.CreateFrame(ctx, boardID, req)
			},
			update: func(ctx context.Context, c miro.Client, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.UpdateFrame(ctx, boardID, itemID, req)
			},
		},
		{
			kind:  "embed",
			label: "Embed",
			data: []argSpec{
				{key: "url", desc: "URL of the external content to embed", required: true},
				{key: "mode", desc: "Embed mode: inline or modal (optional)"},
			},
			create: func(ctx context.Context, c miro.Client, boardID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.CreateEmbed(ctx, boardID, req)
			},
		},
		{
			kind:  "image",
			label: "Image",
			data: []argSpec{
				{key: "url", desc: "URL of the image to add", required: true},
				{key: "title", desc: "Image title (optional)"},
			},
			create: func(ctx context.Context, c miro.Client, boardID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.CreateImage(ctx, boardID, req)
			},
		},
		{
			kind:  "document",
			label: "Document",
			data: []argSpec{
				{key: "url", desc: "URL of the document to add", required: true},
				{key: "title", desc: "Document title (optional)"},
			},
			create: func(ctx context.Context, c miro.Client, boardID string, req miro.ItemRequest) (*miro.Item, error) {
				return c.CreateDocument(ctx, boardID, req)
			},
		},
	}
}

// RegisterItemTools registers the generic and typed item tools with the MCP
// server.
func RegisterItemTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	registerGenericItemTools(s, sc)

	for _, spec := range typedItems() {
		registerTypedItemTools(s, sc, spec)
	}

	return nil
}

func registerGenericItemTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List items on a board, optionally filtered by item type or parent frame"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("type",
			mcp.Description("Filter by item type: sticky_note, shape, text, card, app_card, frame, embed, image, document, connector (optional)"),
		),
		mcp.WithString("parentItemId",
			mcp.Description("List only children of this frame (optional)"),
		),
		tools.FormatParam(),
	}
	listOpts = append(listOpts, tools.PaginationParams()...)
	s.AddTool(mcp.NewTool("miro_get_items", listOpts...),
		tools.WrapWithAuditLogging("miro_get_items", handleListItems, sc))

	byTypeOpts := []mcp.ToolOption{
		mcp.WithDescription("List items of a specific type on a board"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Item type to list: sticky_note, shape, text, card, app_card, frame, embed, image, document"),
		),
		tools.FormatParam(),
	}
	byTypeOpts = append(byTypeOpts, tools.PaginationParams()...)
	s.AddTool(mcp.NewTool("miro_get_items_by_type", byTypeOpts...),
		tools.WrapWithAuditLogging("miro_get_items_by_type", handleListItemsByType, sc))

	frameItemsOpts := []mcp.ToolOption{
		mcp.WithDescription("List the items inside a frame"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("frameId",
			mcp.Required(),
			mcp.Description("ID of the frame whose children to list"),
		),
		tools.FormatParam(),
	}
	frameItemsOpts = append(frameItemsOpts, tools.PaginationParams()...)
	s.AddTool(mcp.NewTool("miro_get_frame_items", frameItemsOpts...),
		tools.WrapWithAuditLogging("miro_get_frame_items", handleListFrameItems, sc))

	s.AddTool(mcp.NewTool("miro_get_item",
		mcp.WithDescription("Get a single board item by ID"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("itemId",
			mcp.Required(),
			mcp.Description("ID of the item"),
		),
		tools.FormatParam(),
	), tools.WrapWithAuditLogging("miro_get_item", handleGetItem, sc))

	s.AddTool(mcp.NewTool("miro_update_item_position",
		mcp.WithDescription("Move an item to a new position on the board, optionally into a parent frame"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("itemId",
			mcp.Required(),
			mcp.Description("ID of the item to move"),
		),
		mcp.WithNumber("x",
			mcp.Required(),
			mcp.Description("New x coordinate"),
		),
		mcp.WithNumber("y",
			mcp.Required(),
			mcp.Description("New y coordinate"),
		),
		mcp.WithString("parentId",
			mcp.Description("Frame to move the item into (optional)"),
		),
	), tools.WrapWithAuditLogging("miro_update_item_position", handleUpdateItemPosition, sc))

	s.AddTool(mcp.NewTool("miro_delete_item",
		mcp.WithDescription("Delete an item from a board"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("itemId",
			mcp.Required(),
			mcp.Description("ID of the item to delete"),
		),
	), tools.WrapWithAuditLogging("miro_delete_item", handleDeleteItem, sc))
}

func registerTypedItemTools(s *mcpserver.MCPServer, sc *server.ServerContext, spec typedItem) {
	createName := "miro_create_" + spec.kind
	createOpts := []mcp.ToolOption{
		mcp.WithDescription(fmt.Sprintf("Create a %s on a board", spec.label)),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
	}
	createOpts = append(createOpts, contentParams(spec, true)...)
	createOpts = append(createOpts, placementParams()...)
	s.AddTool(mcp.NewTool(createName, createOpts...),
		tools.WrapWithAuditLogging(createName, createItemHandler(spec), sc))

	if spec.update == nil {
		return
	}

	updateName := "miro_update_" + spec.kind
	updateOpts := []mcp.ToolOption{
		mcp.WithDescription(fmt.Sprintf("Update a %s's content, style, or placement", spec.label)),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("itemId",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("ID of the %s to update", spec.label)),
		),
	}
	updateOpts = append(updateOpts, contentParams(spec, false)...)
	updateOpts = append(updateOpts, placementParams()...)
	s.AddTool(mcp.NewTool(updateName, updateOpts...),
		tools.WrapWithAuditLogging(updateName, updateItemHandler(spec), sc))
}

// contentParams builds the schema options for a kind's data and style
// arguments. Required flags only apply on create; updates are always
// partial.
func contentParams(spec typedItem, create bool) []mcp.ToolOption {
	var opts []mcp.ToolOption
	for _, arg := range append(append([]argSpec{}, spec.data...), spec.style...) {
		paramOpts := []mcp.PropertyOption{mcp.Description(arg.desc)}
		if create && arg.required {
			paramOpts = append(paramOpts, mcp.Required())
		}
		opts = append(opts, mcp.WithString(arg.key, paramOpts...))
	}
	return opts
}

func placementParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("x",
			mcp.Description("X coordinate on the board (optional)"),
		),
		mcp.WithNumber("y",
			mcp.Description("Y coordinate on the board (optional)"),
		),
		mcp.WithNumber("width",
			mcp.Description("Item width (optional)"),
		),
		mcp.WithNumber("height",
			mcp.Description("Item height (optional)"),
		),
		mcp.WithNumber("rotation",
			mcp.Description("Rotation in degrees (optional)"),
		),
		mcp.WithString("parentId",
			mcp.Description("Frame to place the item in (optional)"),
		),
	}
}
