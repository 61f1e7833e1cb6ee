package instrumentation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{Enabled: false}, nil)
	require.NoError(t, err)

	assert.False(t, provider.Enabled())
	assert.Nil(t, provider.Metrics())
	assert.NotNil(t, provider.AuditLogger())
	assert.Nil(t, provider.PrometheusRegistry())
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_Prometheus(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{
		Enabled:         true,
		ServiceName:     "mcp-miro-test",
		ServiceVersion:  "0.0.1",
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	}, nil)
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	assert.True(t, provider.Enabled())
	require.NotNil(t, provider.Metrics())
	assert.NotNil(t, provider.PrometheusRegistry())

	// Recording through the full pipeline must not panic.
	provider.Metrics().RecordHTTPRequest(context.Background(), "POST", "/mcp", 200, 5*time.Millisecond)
	provider.Metrics().RecordAPIRequest(context.Background(), "GET", "boards", "200", 5*time.Millisecond)
	provider.Metrics().RecordToolInvocation(context.Background(), "miro_list_boards", "success", 5*time.Millisecond)
	provider.Metrics().RecordCredentialResolution(context.Background(), CredentialResultOK)

	families, err := provider.PrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["http_requests_total"])
	assert.True(t, names["miro_api_requests_total"])
	assert.True(t, names["mcp_tool_invocations_total"])
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordHTTPRequest(context.Background(), "GET", "/", 200, time.Millisecond)
		m.RecordAPIRequest(context.Background(), "GET", "boards", "200", time.Millisecond)
		m.RecordToolInvocation(context.Background(), "x", "success", time.Millisecond)
		m.RecordCredentialResolution(context.Background(), CredentialResultMissing)
	})
}
