package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools/output"
)

// PaginationParams returns the tool options shared by every list operation.
//
// Usage in tool registration:
//
//	opts := []mcp.ToolOption{
//	    mcp.WithDescription("..."),
//	}
//	opts = append(opts, tools.PaginationParams()...)
//	tool := mcp.NewTool("tool_name", opts...)
func PaginationParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum number of results per page (%d-%d, default %d)",
				miro.MinPageSize, miro.MaxPageSize, miro.DefaultPageSize)),
		),
		mcp.WithString("cursor",
			mcp.Description("Opaque pagination cursor from a previous response; pass it back unmodified to fetch the next page"),
		),
	}
}

// FormatParam returns the tool option selecting the response render mode.
func FormatParam() mcp.ToolOption {
	return mcp.WithString("format",
		mcp.Description("Response format: 'json' (default, lossless) or 'markdown' (tables, easier to read)"),
	)
}

// ParsePageParams extracts pagination arguments, falling back to the
// server's configured defaults. Out-of-range limits are clamped by the
// client before they reach the API.
func ParsePageParams(args map[string]any, cfg *server.Config) miro.PageParams {
	params := miro.PageParams{
		Limit:  cfg.DefaultPageSize,
		Cursor: GetString(args, "cursor"),
	}
	if limit, ok := GetFloat(args, "limit"); ok {
		params.Limit = int(limit)
	}
	if cfg.MaxPageSize > 0 && params.Limit > cfg.MaxPageSize {
		params.Limit = cfg.MaxPageSize
	}
	return params
}

// ParseFormat extracts the render mode argument. Absent means JSON.
func ParseFormat(args map[string]any) (output.Mode, error) {
	return output.ParseMode(GetString(args, "format"))
}

// GetString returns the string argument for key, or "" when absent or of
// the wrong type.
func GetString(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// RequireString returns the string argument for key or an error naming the
// missing parameter.
func RequireString(args map[string]any, key string) (string, error) {
	s := GetString(args, key)
	if s == "" {
		return "", fmt.Errorf("required parameter %q is missing or empty", key)
	}
	return s, nil
}

// GetFloat returns the numeric argument for key. JSON numbers decode as
// float64, so this is the only numeric accessor needed.
func GetFloat(args map[string]any, key string) (float64, bool) {
	f, ok := args[key].(float64)
	return f, ok
}

// GetBool returns the boolean argument for key.
func GetBool(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

// GetStringSlice returns the string-array argument for key. JSON arrays
// decode as []any, so each element is asserted individually; non-string
// elements are skipped.
func GetStringSlice(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			result = append(result, s)
		}
	}
	return result
}

// GetMap returns the object argument for key, or nil when absent.
func GetMap(args map[string]any, key string) map[string]any {
	m, _ := args[key].(map[string]any)
	return m
}

// ParsePosition builds a Position from the x/y arguments, returning nil
// when neither is present so unset placement stays off the wire.
func ParsePosition(args map[string]any) *miro.Position {
	x, hasX := GetFloat(args, "x")
	y, hasY := GetFloat(args, "y")
	if !hasX && !hasY {
		return nil
	}
	return &miro.Position{X: x, Y: y}
}

// ParseGeometry builds a Geometry from the width/height/rotation arguments,
// returning nil when none are present.
func ParseGeometry(args map[string]any) *miro.Geometry {
	width, hasW := GetFloat(args, "width")
	height, hasH := GetFloat(args, "height")
	rotation, hasR := GetFloat(args, "rotation")
	if !hasW && !hasH && !hasR {
		return nil
	}
	return &miro.Geometry{Width: width, Height: height, Rotation: rotation}
}

// ParseParent builds a Parent reference from the parentId argument.
func ParseParent(args map[string]any) *miro.Parent {
	if id := GetString(args, "parentId"); id != "" {
		return &miro.Parent{ID: id}
	}
	return nil
}
