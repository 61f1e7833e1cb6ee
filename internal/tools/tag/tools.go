// Package tag implements the MCP tools for board tags: tag CRUD plus
// attaching tags to card-like items and querying by tag.
package tag

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools"
)

// RegisterTagTools registers all tag tools with the MCP server.
func RegisterTagTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	createTool := mcp.NewTool("miro_create_tag",
		mcp.WithDescription("Create a tag on a board"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Tag title"),
		),
		mcp.WithString("fillColor",
			mcp.Description("Tag color name, e.g. red, magenta, green (optional)"),
		),
	)
	s.AddTool(createTool, tools.WrapWithAuditLogging("miro_create_tag", handleCreateTag, sc))

	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List the tags on a board"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		tools.FormatParam(),
	}
	listOpts = append(listOpts, tools.PaginationParams()...)
	s.AddTool(mcp.NewTool("miro_get_tags", listOpts...),
		tools.WrapWithAuditLogging("miro_get_tags", handleListTags, sc))

	getTool := mcp.NewTool("miro_get_tag",
		mcp.WithDescription("Get a single tag by ID"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("tagId",
			mcp.Required(),
			mcp.Description("ID of the tag"),
		),
		tools.FormatParam(),
	)
	s.AddTool(getTool, tools.WrapWithAuditLogging("miro_get_tag", handleGetTag, sc))

	updateTool := mcp.NewTool("miro_update_tag",
		mcp.WithDescription("Update a tag's title or color"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("tagId",
			mcp.Required(),
			mcp.Description("ID of the tag to update"),
		),
		mcp.WithString("title",
			mcp.Description("New tag title (optional)"),
		),
		mcp.WithString("fillColor",
			mcp.Description("New tag color (optional)"),
		),
	)
	s.AddTool(updateTool, tools.WrapWithAuditLogging("miro_update_tag", handleUpdateTag, sc))

	deleteTool := mcp.NewTool("miro_delete_tag",
		mcp.WithDescription("Delete a tag from a board, detaching it from all items"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("tagId",
			mcp.Required(),
			mcp.Description("ID of the tag to delete"),
		),
	)
	s.AddTool(deleteTool, tools.WrapWithAuditLogging("miro_delete_tag", handleDeleteTag, sc))

	attachTool := mcp.NewTool("miro_attach_tag",
		mcp.WithDescription("Attach an existing tag to a card or sticky note"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("itemId",
			mcp.Required(),
			mcp.Description("ID of the item to tag"),
		),
		mcp.WithString("tagId",
			mcp.Required(),
			mcp.Description("ID of the tag to attach"),
		),
	)
	s.AddTool(attachTool, tools.WrapWithAuditLogging("miro_attach_tag", handleAttachTag, sc))

	detachTool := mcp.NewTool("miro_detach_tag",
		mcp.WithDescription("Detach a tag from an item"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("itemId",
			mcp.Required(),
			mcp.Description("ID of the tagged item"),
		),
		mcp.WithString("tagId",
			mcp.Required(),
			mcp.Description("ID of the tag to detach"),
		),
	)
	s.AddTool(detachTool, tools.WrapWithAuditLogging("miro_detach_tag", handleDetachTag, sc))

	itemTagsTool := mcp.NewTool("miro_get_item_tags",
		mcp.WithDescription("List the tags attached to an item"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("itemId",
			mcp.Required(),
			mcp.Description("ID of the item"),
		),
		tools.FormatParam(),
	)
	s.AddTool(itemTagsTool, tools.WrapWithAuditLogging("miro_get_item_tags", handleListItemTags, sc))

	byTagOpts := []mcp.ToolOption{
		mcp.WithDescription("List the items a tag is attached to"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("tagId",
			mcp.Required(),
			mcp.Description("ID of the tag"),
		),
		tools.FormatParam(),
	}
	byTagOpts = append(byTagOpts, tools.PaginationParams()...)
	s.AddTool(mcp.NewTool("miro_get_items_by_tag", byTagOpts...),
		tools.WrapWithAuditLogging("miro_get_items_by_tag", handleListItemsByTag, sc))

	return nil
}
