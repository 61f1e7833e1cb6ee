package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/instrumentation"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/logging"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server/middleware"
)

// runStreamableHTTPServer runs the server with Streamable HTTP transport.
// The MCP endpoint requires per-request credentials unless a static fallback
// token is configured; health endpoints are always open.
func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, config ServeConfig, sc *server.ServerContext, provider *instrumentation.Provider) error {
	logger := sc.Logger()

	allowedOrigins, err := middleware.ValidateAllowedOrigins(config.AllowedOrigins)
	if err != nil {
		return fmt.Errorf("invalid allowed origins: %w", err)
	}

	mux := http.NewServeMux()

	// Streamable HTTP handler with per-request token extraction
	mcpHandler := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath(config.HTTPEndpoint),
		mcpserver.WithHTTPContextFunc(server.HTTPContextFunc),
	)

	// Requests without a token are rejected at the HTTP layer before reaching
	// the MCP handler, unless a static fallback token is configured.
	allowFallback := config.AccessToken != ""
	mux.Handle(config.HTTPEndpoint, server.RequireCredentials(allowFallback)(mcpHandler))

	healthChecker := server.NewHealthChecker(sc)
	healthChecker.RegisterHealthEndpoints(mux)

	var handler http.Handler = mux
	handler = middleware.HTTPMetrics(provider)(handler)
	handler = middleware.SecurityHeaders(middleware.SecurityHeadersConfig{EnableHSTS: config.EnableHSTS})(handler)
	handler = middleware.CORS(allowedOrigins)(handler)
	handler = middleware.MaxRequestSize(config.MaxRequestBytes)(handler)

	httpServer := &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	var metricsServer *server.MetricsServer
	if config.Metrics.Enabled && provider != nil && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(config.Metrics.Addr, provider)
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}
	}

	logger.Info("streamable HTTP server starting",
		"addr", config.HTTPAddr,
		"endpoint", config.HTTPEndpoint,
		"require_credentials", !allowFallback,
		"health_endpoints", []string{"/healthz", "/readyz"})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		return nil
	})

	if metricsServer != nil {
		g.Go(metricsServer.Start)
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received, stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()

		healthChecker.SetReady(false)

		// Shutdown metrics server first
		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("error shutting down metrics server", logging.Err(err))
			}
		}
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("HTTP server gracefully stopped")
	return nil
}
