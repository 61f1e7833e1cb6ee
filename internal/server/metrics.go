package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/instrumentation"
)

// DefaultShutdownTimeout bounds graceful shutdown of the HTTP servers.
const DefaultShutdownTimeout = 30 * time.Second

// MetricsServer serves the Prometheus /metrics endpoint on a dedicated
// listener, separate from the MCP endpoint for security: the metrics port
// can stay internal while the MCP port is exposed.
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer builds a metrics server for the given provider. Returns
// an error when the provider is not exporting via Prometheus.
func NewMetricsServer(addr string, provider *instrumentation.Provider) (*MetricsServer, error) {
	registry := provider.PrometheusRegistry()
	if registry == nil {
		return nil, fmt.Errorf("metrics server requires the prometheus exporter (got %q)", provider.MetricsExporter())
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Start begins serving and blocks until the listener stops.
func (m *MetricsServer) Start() error {
	slog.Info("metrics server starting", "addr", m.server.Addr, "endpoint", "/metrics")
	if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the metrics server.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.server.Shutdown(ctx)
}
