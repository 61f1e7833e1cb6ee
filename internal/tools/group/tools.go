// Package group implements the MCP tools for item groups: creating a group
// from existing items, inspecting groups, and ungrouping.
package group

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools"
)

// RegisterGroupTools registers all group tools with the MCP server.
func RegisterGroupTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	createTool := mcp.NewTool("miro_create_group",
		mcp.WithDescription("Group existing board items together"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithArray("itemIds",
			mcp.Required(),
			mcp.Description("IDs of the items to group (at least two)"),
		),
	)
	s.AddTool(createTool, tools.WrapWithAuditLogging("miro_create_group", handleCreateGroup, sc))

	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List the groups on a board"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		tools.FormatParam(),
	}
	listOpts = append(listOpts, tools.PaginationParams()...)
	s.AddTool(mcp.NewTool("miro_get_groups", listOpts...),
		tools.WrapWithAuditLogging("miro_get_groups", handleListGroups, sc))

	getTool := mcp.NewTool("miro_get_group",
		mcp.WithDescription("Get a single group by ID"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("groupId",
			mcp.Required(),
			mcp.Description("ID of the group"),
		),
		tools.FormatParam(),
	)
	s.AddTool(getTool, tools.WrapWithAuditLogging("miro_get_group", handleGetGroup, sc))

	itemsOpts := []mcp.ToolOption{
		mcp.WithDescription("List the items belonging to a group"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("groupId",
			mcp.Required(),
			mcp.Description("ID of the group"),
		),
		tools.FormatParam(),
	}
	itemsOpts = append(itemsOpts, tools.PaginationParams()...)
	s.AddTool(mcp.NewTool("miro_get_group_items", itemsOpts...),
		tools.WrapWithAuditLogging("miro_get_group_items", handleListGroupItems, sc))

	ungroupTool := mcp.NewTool("miro_ungroup",
		mcp.WithDescription("Dissolve a group, leaving its items on the board"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("groupId",
			mcp.Required(),
			mcp.Description("ID of the group to dissolve"),
		),
	)
	s.AddTool(ungroupTool, tools.WrapWithAuditLogging("miro_ungroup", handleUngroup, sc))

	return nil
}
