package instrumentation

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolInvocation_NewAndComplete(t *testing.T) {
	inv := NewToolInvocation("miro_list_boards")
	assert.Equal(t, "miro_list_boards", inv.Tool)
	assert.False(t, inv.StartedAt.IsZero())

	time.Sleep(time.Millisecond)
	inv.CompleteSuccess()

	assert.Equal(t, InvocationStatusSuccess, inv.Status)
	assert.Greater(t, inv.Duration, time.Duration(0))
	assert.Empty(t, inv.Error)
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	inv := NewToolInvocation("miro_create_board")
	inv.CompleteWithError(errors.New("boom"))

	assert.Equal(t, InvocationStatusError, inv.Status)
	assert.Equal(t, "boom", inv.Error)
}

func TestToolInvocation_Complete_NilError(t *testing.T) {
	inv := NewToolInvocation("miro_get_board")
	inv.Complete(false, nil)

	assert.Equal(t, InvocationStatusError, inv.Status)
	assert.Empty(t, inv.Error)
}

func TestToolInvocation_MethodChaining(t *testing.T) {
	inv := NewToolInvocation("miro_create_sticky_note").
		WithBoard("b1").
		WithItem("i1", "sticky_note").
		CompleteSuccess()

	assert.Equal(t, "b1", inv.BoardID)
	assert.Equal(t, "i1", inv.ItemID)
	assert.Equal(t, "sticky_note", inv.ItemType)
}

func TestToolInvocation_LogAttrs(t *testing.T) {
	inv := NewToolInvocation("miro_get_items").
		WithBoard("b1").
		CompleteSuccess()

	attrs := inv.LogAttrs()

	keys := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		keys[a.Key] = true
	}
	assert.True(t, keys["tool"])
	assert.True(t, keys["status"])
	assert.True(t, keys["duration"])
	assert.True(t, keys["board_id"])
	assert.False(t, keys["item_id"], "unset fields should be omitted")
	assert.False(t, keys["error"])
}

func TestAuditLogger_LogToolInvocation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	audit := NewAuditLogger(logger)

	inv := NewToolInvocation("miro_delete_item").
		WithBoard("b1").
		WithItem("i1", "shape").
		CompleteWithError(errors.New("not found"))
	audit.LogToolInvocation(inv)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"tool":"miro_delete_item"`)
	assert.Contains(t, out, `"status":"error"`)
	assert.Contains(t, out, `"board_id":"b1"`)
	assert.Contains(t, out, `"error":"not found"`)
}

func TestAuditLogger_NilSafe(t *testing.T) {
	var audit *AuditLogger
	assert.NotPanics(t, func() {
		audit.LogToolInvocation(NewToolInvocation("x").CompleteSuccess())
	})
	assert.NotPanics(t, func() {
		NewAuditLogger(nil).LogToolInvocation(nil)
	})
}
