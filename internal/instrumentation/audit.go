package instrumentation

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/logging"
)

// Invocation status values.
const (
	InvocationStatusSuccess = "success"
	InvocationStatusError   = "error"
)

// ToolInvocation captures one MCP tool call for audit logging. Build it with
// NewToolInvocation, enrich via the With* methods, then call one of the
// Complete* methods before logging.
type ToolInvocation struct {
	Tool      string
	StartedAt time.Time
	Duration  time.Duration
	Status    string
	Error     string

	// Request context, extracted from tool arguments
	BoardID  string
	ItemID   string
	ItemType string

	// TraceID correlates the audit entry with a distributed trace, when
	// tracing is enabled.
	TraceID string
}

// NewToolInvocation starts tracking a tool invocation.
func NewToolInvocation(tool string) *ToolInvocation {
	return &ToolInvocation{
		Tool:      tool,
		StartedAt: time.Now(),
	}
}

// WithSpanContext records the trace ID from ctx, if a sampled span exists.
func (i *ToolInvocation) WithSpanContext(ctx context.Context) *ToolInvocation {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		i.TraceID = sc.TraceID().String()
	}
	return i
}

// WithBoard records the board targeted by the invocation.
func (i *ToolInvocation) WithBoard(boardID string) *ToolInvocation {
	i.BoardID = boardID
	return i
}

// WithItem records the item targeted by the invocation.
func (i *ToolInvocation) WithItem(itemID, itemType string) *ToolInvocation {
	i.ItemID = itemID
	i.ItemType = itemType
	return i
}

// Complete marks the invocation finished with the given outcome.
func (i *ToolInvocation) Complete(success bool, err error) *ToolInvocation {
	i.Duration = time.Since(i.StartedAt)
	if success {
		i.Status = InvocationStatusSuccess
	} else {
		i.Status = InvocationStatusError
	}
	if err != nil {
		i.Error = err.Error()
	}
	return i
}

// CompleteSuccess marks the invocation finished successfully.
func (i *ToolInvocation) CompleteSuccess() *ToolInvocation {
	return i.Complete(true, nil)
}

// CompleteWithError marks the invocation finished with an error.
func (i *ToolInvocation) CompleteWithError(err error) *ToolInvocation {
	return i.Complete(false, err)
}

// LogAttrs returns the slog attributes describing this invocation, using the
// shared attribute keys so audit entries stay greppable alongside the rest of
// the logs.
func (i *ToolInvocation) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		logging.Tool(i.Tool),
		logging.Status(i.Status),
		slog.Duration(logging.KeyDuration, i.Duration),
	}
	if i.BoardID != "" {
		attrs = append(attrs, logging.BoardID(i.BoardID))
	}
	if i.ItemID != "" {
		attrs = append(attrs, logging.ItemID(i.ItemID))
	}
	if i.ItemType != "" {
		attrs = append(attrs, logging.ItemType(i.ItemType))
	}
	if i.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", i.TraceID))
	}
	if i.Error != "" {
		attrs = append(attrs, slog.String(logging.KeyError, i.Error))
	}
	return attrs
}

// AuditLogger writes structured audit entries for tool invocations.
type AuditLogger struct {
	logger *slog.Logger
}

// NewAuditLogger creates an AuditLogger. A nil logger falls back to
// slog.Default.
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{logger: logger}
}

// LogToolInvocation writes one audit entry for a completed invocation.
func (a *AuditLogger) LogToolInvocation(invocation *ToolInvocation) {
	if a == nil || invocation == nil {
		return
	}
	a.logger.LogAttrs(context.Background(), slog.LevelInfo, "tool invocation", invocation.LogAttrs()...)
}
