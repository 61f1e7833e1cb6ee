// Package board implements the MCP tools for Miro board lifecycle and
// discovery: listing, reading, creating, updating, copying, and deleting
// boards.
package board

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools"
)

// RegisterBoardTools registers all board management tools with the MCP server.
func RegisterBoardTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List boards accessible to the authenticated user, optionally filtered by team, owner, or search query"),
		mcp.WithString("teamId",
			mcp.Description("Filter boards by team ID (optional)"),
		),
		mcp.WithString("query",
			mcp.Description("Search boards by name (optional)"),
		),
		mcp.WithString("owner",
			mcp.Description("Filter boards by owner user ID (optional)"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort order: default, last_modified, last_opened, last_created, alphabetically (optional)"),
		),
		tools.FormatParam(),
	}
	listOpts = append(listOpts, tools.PaginationParams()...)
	listTool := mcp.NewTool("miro_list_boards", listOpts...)
	s.AddTool(listTool, tools.WrapWithAuditLogging("miro_list_boards", handleListBoards, sc))

	getTool := mcp.NewTool("miro_get_board",
		mcp.WithDescription("Get a single board by ID, including its name, description, and sharing link"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board to retrieve"),
		),
		tools.FormatParam(),
	)
	s.AddTool(getTool, tools.WrapWithAuditLogging("miro_get_board", handleGetBoard, sc))

	createTool := mcp.NewTool("miro_create_board",
		mcp.WithDescription("Create a new board"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the new board"),
		),
		mcp.WithString("description",
			mcp.Description("Description of the new board (optional)"),
		),
		mcp.WithString("teamId",
			mcp.Description("Team to create the board in (optional)"),
		),
	)
	s.AddTool(createTool, tools.WrapWithAuditLogging("miro_create_board", handleCreateBoard, sc))

	updateTool := mcp.NewTool("miro_update_board",
		mcp.WithDescription("Update a board's name or description"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board to update"),
		),
		mcp.WithString("name",
			mcp.Description("New board name (optional)"),
		),
		mcp.WithString("description",
			mcp.Description("New board description (optional)"),
		),
	)
	s.AddTool(updateTool, tools.WrapWithAuditLogging("miro_update_board", handleUpdateBoard, sc))

	deleteTool := mcp.NewTool("miro_delete_board",
		mcp.WithDescription("Permanently delete a board"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board to delete"),
		),
	)
	s.AddTool(deleteTool, tools.WrapWithAuditLogging("miro_delete_board", handleDeleteBoard, sc))

	copyTool := mcp.NewTool("miro_copy_board",
		mcp.WithDescription("Create a copy of an existing board, optionally with a new name and description"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board to copy"),
		),
		mcp.WithString("name",
			mcp.Description("Name for the copy (optional)"),
		),
		mcp.WithString("description",
			mcp.Description("Description for the copy (optional)"),
		),
		mcp.WithString("teamId",
			mcp.Description("Team to create the copy in (optional)"),
		),
	)
	s.AddTool(copyTool, tools.WrapWithAuditLogging("miro_copy_board", handleCopyBoard, sc))

	return nil
}
