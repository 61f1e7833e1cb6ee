// Package member implements the MCP tools for board sharing and membership:
// listing members, inviting by email, changing roles, and removing access.
package member

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools"
)

// RegisterMemberTools registers all board membership tools with the MCP server.
func RegisterMemberTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List the members of a board with their roles"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		tools.FormatParam(),
	}
	listOpts = append(listOpts, tools.PaginationParams()...)
	listTool := mcp.NewTool("miro_get_board_members", listOpts...)
	s.AddTool(listTool, tools.WrapWithAuditLogging("miro_get_board_members", handleListMembers, sc))

	getTool := mcp.NewTool("miro_get_board_member",
		mcp.WithDescription("Get a single board member by ID"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("memberId",
			mcp.Required(),
			mcp.Description("ID of the member"),
		),
		tools.FormatParam(),
	)
	s.AddTool(getTool, tools.WrapWithAuditLogging("miro_get_board_member", handleGetMember, sc))

	shareTool := mcp.NewTool("miro_share_board",
		mcp.WithDescription("Invite users to a board by email with a given role"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board to share"),
		),
		mcp.WithArray("emails",
			mcp.Required(),
			mcp.Description("Email addresses to invite, as an array of strings"),
		),
		mcp.WithString("role",
			mcp.Description("Role for the invitees: viewer, commenter, editor, coowner (optional, default viewer)"),
		),
		mcp.WithString("message",
			mcp.Description("Invitation message (optional)"),
		),
	)
	s.AddTool(shareTool, tools.WrapWithAuditLogging("miro_share_board", handleShareBoard, sc))

	updateTool := mcp.NewTool("miro_update_board_member",
		mcp.WithDescription("Change a board member's role"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("memberId",
			mcp.Required(),
			mcp.Description("ID of the member"),
		),
		mcp.WithString("role",
			mcp.Required(),
			mcp.Description("New role: viewer, commenter, editor, coowner"),
		),
	)
	s.AddTool(updateTool, tools.WrapWithAuditLogging("miro_update_board_member", handleUpdateMember, sc))

	removeTool := mcp.NewTool("miro_remove_board_member",
		mcp.WithDescription("Remove a member from a board"),
		mcp.WithString("boardId",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
		mcp.WithString("memberId",
			mcp.Required(),
			mcp.Description("ID of the member to remove"),
		),
	)
	s.AddTool(removeTool, tools.WrapWithAuditLogging("miro_remove_board_member", handleRemoveMember, sc))

	return nil
}
