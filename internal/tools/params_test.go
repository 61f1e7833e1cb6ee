package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools/output"
)

func TestParsePageParams(t *testing.T) {
	cfg := server.NewDefaultConfig()

	tests := []struct {
		name string
		args map[string]any
		want miro.PageParams
	}{
		{
			name: "defaults when absent",
			args: map[string]any{},
			want: miro.PageParams{Limit: cfg.DefaultPageSize},
		},
		{
			name: "explicit limit",
			args: map[string]any{"limit": float64(42)},
			want: miro.PageParams{Limit: 42},
		},
		{
			name: "limit above max clamped to configured max",
			args: map[string]any{"limit": float64(500)},
			want: miro.PageParams{Limit: cfg.MaxPageSize},
		},
		{
			name: "cursor passthrough",
			args: map[string]any{"cursor": "abc123"},
			want: miro.PageParams{Limit: cfg.DefaultPageSize, Cursor: "abc123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePageParams(tt.args, cfg))
		})
	}
}

func TestParseFormat(t *testing.T) {
	mode, err := ParseFormat(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, output.ModeJSON, mode)

	mode, err = ParseFormat(map[string]any{"format": "markdown"})
	require.NoError(t, err)
	assert.Equal(t, output.ModeMarkdown, mode)

	_, err = ParseFormat(map[string]any{"format": "xml"})
	assert.Error(t, err)
}

func TestRequireString(t *testing.T) {
	s, err := RequireString(map[string]any{"boardId": "b1"}, "boardId")
	require.NoError(t, err)
	assert.Equal(t, "b1", s)

	_, err = RequireString(map[string]any{}, "boardId")
	assert.ErrorContains(t, err, `"boardId"`)

	_, err = RequireString(map[string]any{"boardId": ""}, "boardId")
	assert.Error(t, err)

	_, err = RequireString(map[string]any{"boardId": 42}, "boardId")
	assert.Error(t, err)
}

func TestGetStringSlice(t *testing.T) {
	args := map[string]any{
		"emails": []any{"a@example.com", "b@example.com", 3, ""},
	}
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, GetStringSlice(args, "emails"))
	assert.Nil(t, GetStringSlice(args, "missing"))
	assert.Nil(t, GetStringSlice(map[string]any{"emails": "not-a-list"}, "emails"))
}

func TestParsePosition(t *testing.T) {
	assert.Nil(t, ParsePosition(map[string]any{}))

	pos := ParsePosition(map[string]any{"x": float64(10), "y": float64(20)})
	require.NotNil(t, pos)
	assert.Equal(t, 10.0, pos.X)
	assert.Equal(t, 20.0, pos.Y)

	// One coordinate is enough; the other defaults to zero.
	pos = ParsePosition(map[string]any{"x": float64(5)})
	require.NotNil(t, pos)
	assert.Equal(t, 5.0, pos.X)
	assert.Equal(t, 0.0, pos.Y)
}

func TestParseGeometry(t *testing.T) {
	assert.Nil(t, ParseGeometry(map[string]any{}))

	geo := ParseGeometry(map[string]any{"width": float64(100), "height": float64(50)})
	require.NotNil(t, geo)
	assert.Equal(t, 100.0, geo.Width)
	assert.Equal(t, 50.0, geo.Height)
}

func TestParseParent(t *testing.T) {
	assert.Nil(t, ParseParent(map[string]any{}))

	parent := ParseParent(map[string]any{"parentId": "frame-1"})
	require.NotNil(t, parent)
	assert.Equal(t, "frame-1", parent.ID)
}
