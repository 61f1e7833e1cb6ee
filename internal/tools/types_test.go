package tools

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestErrorResultRateLimit(t *testing.T) {
	result := ErrorResult(&miro.RateLimitError{RetryAfter: 30})

	assert.True(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "wait 30 seconds")
	assert.Contains(t, text, "(retryable)")
}

func TestErrorResultAuth(t *testing.T) {
	result := ErrorResult(&miro.AuthError{Message: "invalid token"})

	assert.True(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "authentication failed")
	assert.NotContains(t, text, "(retryable)")
}

func TestErrorResultTokenMissing(t *testing.T) {
	result := ErrorResult(server.ErrTokenMissing)

	assert.True(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "X-Miro-Token")
	assert.Contains(t, text, "Authorization")
}

func TestErrorResultGeneric(t *testing.T) {
	result := ErrorResult(&miro.APIError{StatusCode: 404, Message: "board not found"})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "board not found")
}

func TestErrorResultPlainError(t *testing.T) {
	result := ErrorResult(errors.New("something broke"))

	assert.True(t, result.IsError)
	assert.Equal(t, "something broke", resultText(t, result))
}

func TestMutationResultWithEntity(t *testing.T) {
	board := &miro.Board{ID: "b1", Name: "Roadmap"}

	result, err := MutationResult("Board \"Roadmap\" created", "board", board)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &envelope))
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Board \"Roadmap\" created", envelope["message"])

	entity, ok := envelope["board"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "b1", entity["id"])
}

func TestMutationResultVoid(t *testing.T) {
	result, err := MutationResult("Item i1 deleted from board b1", "", nil)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &envelope))
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Item i1 deleted from board b1", envelope["message"])
	assert.NotContains(t, envelope, "item")
}
