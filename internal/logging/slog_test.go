package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "info", "json")
		logger.Info("hello", "key", "value")
		assert.Contains(t, buf.String(), `"msg":"hello"`)
		assert.Contains(t, buf.String(), `"key":"value"`)
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "info", "text")
		logger.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("debug level filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "warn", "json")
		logger.Info("quiet")
		assert.Empty(t, buf.String())
		logger.Warn("loud")
		assert.Contains(t, buf.String(), "loud")
	})

	t.Run("unknown level defaults to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "bogus", "json")
		logger.Debug("hidden")
		assert.Empty(t, buf.String())
		logger.Info("shown")
		assert.Contains(t, buf.String(), "shown")
	})
}

func TestAttrHelpers(t *testing.T) {
	assert.Equal(t, slog.String(KeyBoardID, "b1"), BoardID("b1"))
	assert.Equal(t, slog.String(KeyTool, "miro_get_board"), Tool("miro_get_board"))
	assert.Equal(t, slog.String(KeyItemType, "sticky_note"), ItemType("sticky_note"))
	assert.Equal(t, slog.String(KeyError, ""), Err(nil))
	assert.Equal(t, slog.String(KeyToken, "[token:6 chars]"), Token("secret"))
}

func TestSanitizeToken(t *testing.T) {
	assert.Equal(t, "<empty>", SanitizeToken(""))

	masked := SanitizeToken("super-secret-token")
	assert.NotContains(t, masked, "super")
	assert.Equal(t, "[token:18 chars]", masked)
}
