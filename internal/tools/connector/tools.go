// Package connector implements the MCP tools for connectors, the lines
// linking two board items.
package connector

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools"
)

// RegisterConnectorTools registers all connector tools with the MCP server.
func RegisterConnectorTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	createTool := mcp.NewTool("miro_create_connector",
		mcp.WithDescription("Create a connector line between two board items"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("startItemId",
			mcp.Required(),
			mcp.Description("ID of the item the connector starts from"),
		),
		mcp.WithString("endItemId",
			mcp.Required(),
			mcp.Description("ID of the item the connector ends at"),
		),
		mcp.WithString("shape",
			mcp.Description("Line shape: straight, elbowed, curved (optional, default curved)"),
		),
		mcp.WithString("caption",
			mcp.Description("Text label displayed along the connector (optional)"),
		),
	)
	s.AddTool(createTool, tools.WrapWithAuditLogging("miro_create_connector", handleCreateConnector, sc))

	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List the connectors on a board"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		tools.FormatParam(),
	}
	listOpts = append(listOpts, tools.PaginationParams()...)
	s.AddTool(mcp.NewTool("miro_get_connectors", listOpts...),
		tools.WrapWithAuditLogging("miro_get_connectors", handleListConnectors, sc))

	getTool := mcp.NewTool("miro_get_connector",
		mcp.WithDescription("Get a single connector by ID"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("connectorId",
			mcp.Required(),
			mcp.Description("ID of the connector"),
		),
		tools.FormatParam(),
	)
	s.AddTool(getTool, tools.WrapWithAuditLogging("miro_get_connector", handleGetConnector, sc))

	updateTool := mcp.NewTool("miro_update_connector",
		mcp.WithDescription("Update a connector's shape, endpoints, or caption"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("connectorId",
			mcp.Required(),
			mcp.Description("ID of the connector to update"),
		),
		mcp.WithString("startItemId",
			mcp.Description("New start item (optional)"),
		),
		mcp.WithString("endItemId",
			mcp.Description("New end item (optional)"),
		),
		mcp.WithString("shape",
			mcp.Description("New line shape: straight, elbowed, curved (optional)"),
		),
		mcp.WithString("caption",
			mcp.Description("New caption text (optional)"),
		),
	)
	s.AddTool(updateTool, tools.WrapWithAuditLogging("miro_update_connector", handleUpdateConnector, sc))

	deleteTool := mcp.NewTool("miro_delete_connector",
		mcp.WithDescription("Delete a connector from a board"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("connectorId",
			mcp.Required(),
			mcp.Description("ID of the connector to delete"),
		),
	)
	s.AddTool(deleteTool, tools.WrapWithAuditLogging("miro_delete_connector", handleDeleteConnector, sc))

	return nil
}
