package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/instrumentation"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/logging"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools/board"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools/connector"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools/group"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools/item"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools/member"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools/output"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools/tag"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	config := ServeConfig{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP Miro server",
		Long: `Start the MCP Miro server to provide tools for working with Miro
boards via the Model Context Protocol.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - sse: Server-Sent Events over HTTP
  - streamable-http: Streamable HTTP transport

Credentials:
  - stdio: supply a static token via --token or MIRO_ACCESS_TOKEN
  - HTTP transports: each request carries its own token in the X-Miro-Token
    header (or a standard Authorization bearer header). A static token, when
    configured, serves as a fallback for requests without headers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadEnvIfEmpty(&config.AccessToken, "MIRO_ACCESS_TOKEN")
			config.EnableHSTS = os.Getenv("ENABLE_HSTS") == envValueTrue
			loadEnvIfEmpty(&config.AllowedOrigins, "ALLOWED_ORIGINS")
			if err := config.Validate(); err != nil {
				return err
			}
			return runServe(config)
		},
	}

	// Transport flags
	cmd.Flags().StringVar(&config.Transport, "transport", transportStdio, "Transport type: stdio, sse, or streamable-http")
	cmd.Flags().StringVar(&config.HTTPAddr, "http-addr", ":8080", "HTTP server address (for sse and streamable-http transports)")
	cmd.Flags().StringVar(&config.SSEEndpoint, "sse-endpoint", "/sse", "SSE endpoint path (for sse transport)")
	cmd.Flags().StringVar(&config.MessageEndpoint, "message-endpoint", "/message", "Message endpoint path (for sse transport)")
	cmd.Flags().StringVar(&config.HTTPEndpoint, "http-endpoint", "/mcp", "HTTP endpoint path (for streamable-http transport)")

	// Miro API flags
	cmd.Flags().StringVar(&config.AccessToken, "token", "", "Static Miro access token (can also be set via MIRO_ACCESS_TOKEN env var)")
	cmd.Flags().StringVar(&config.APIBaseURL, "api-base-url", miro.DefaultBaseURL, "Miro REST API base URL")
	cmd.Flags().DurationVar(&config.RequestTimeout, "request-timeout", miro.DefaultTimeout, "Timeout for individual Miro API requests")

	// Response shaping flags
	cmd.Flags().IntVar(&config.DefaultPageSize, "default-page-size", miro.DefaultPageSize, "Default page size for list operations")
	cmd.Flags().IntVar(&config.MaxPageSize, "max-page-size", miro.MaxPageSize, "Maximum page size for list operations")
	cmd.Flags().IntVar(&config.MaxResponseChars, "max-response-chars", output.DefaultMaxResponseChars, "Maximum characters in a formatted tool response")

	// Logging flags
	cmd.Flags().StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, or error")
	cmd.Flags().StringVar(&config.LogFormat, "log-format", "json", "Log format: json or text")
	cmd.Flags().BoolVar(&config.DebugMode, "debug", false, "Enable debug logging (overrides --log-level)")

	// HTTP hardening flags
	cmd.Flags().Int64Var(&config.MaxRequestBytes, "max-request-bytes", 4<<20, "Maximum HTTP request body size in bytes (0 disables the limit)")

	// Metrics flags
	cmd.Flags().BoolVar(&config.Metrics.Enabled, "metrics", false, "Serve Prometheus metrics on a dedicated listener")
	cmd.Flags().StringVar(&config.Metrics.Addr, "metrics-addr", ":9090", "Metrics server address")

	return cmd
}

// instrumentationConfigFor derives the instrumentation configuration from
// the environment and the serve flags. Requesting the metrics listener
// implies an active provider; a listener without instruments would serve
// nothing.
func instrumentationConfigFor(config ServeConfig, version string) instrumentation.Config {
	ic := instrumentation.DefaultConfig()
	ic.ServiceVersion = version
	if config.Metrics.Enabled {
		ic.Enabled = true
	}
	return ic
}

// runServe contains the main server logic with support for multiple transports.
func runServe(config ServeConfig) error {
	// Log to stderr: stdout belongs to the MCP protocol on stdio transport.
	level := config.LogLevel
	if config.DebugMode {
		level = "debug"
	}
	logger := logging.NewLogger(os.Stderr, level, config.LogFormat)

	// Setup graceful shutdown - listen for both SIGINT and SIGTERM
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize OpenTelemetry instrumentation provider
	instrumentationConfig := instrumentationConfigFor(config, rootCmd.Version)
	instrumentationProvider, err := instrumentation.NewProvider(shutdownCtx, instrumentationConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}

	if instrumentationProvider.Enabled() {
		logger.Info("instrumentation enabled",
			"metrics_exporter", instrumentationConfig.MetricsExporter,
			"tracing_exporter", instrumentationConfig.TracingExporter)
	}

	if config.Transport == transportStdio && config.AccessToken == "" {
		logger.Warn("no static access token configured; stdio tool calls will fail until one is provided")
	}

	serverContext, err := server.NewServerContext(shutdownCtx,
		server.WithLogger(logger),
		server.WithConfig(config.ServerConfig()),
		server.WithInstrumentationProvider(instrumentationProvider),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			// Only log shutdown errors for non-stdio transports to avoid output interference
			if config.Transport != transportStdio {
				logger.Error("error during server context shutdown", logging.Err(err))
			}
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("mcp-miro", rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
	)

	// Register all tool categories
	if err := board.RegisterBoardTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register board tools: %w", err)
	}
	if err := member.RegisterMemberTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register member tools: %w", err)
	}
	if err := item.RegisterItemTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register item tools: %w", err)
	}
	if err := connector.RegisterConnectorTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register connector tools: %w", err)
	}
	if err := tag.RegisterTagTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register tag tools: %w", err)
	}
	if err := group.RegisterGroupTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register group tools: %w", err)
	}

	// Start the appropriate server based on transport type
	switch config.Transport {
	case transportStdio:
		// Don't print startup messages for stdio mode as it interferes with MCP communication
		return runStdioServer(shutdownCtx, mcpSrv)
	case transportSSE:
		logger.Info("starting MCP server", "transport", config.Transport, "addr", config.HTTPAddr)
		return runSSEServer(shutdownCtx, mcpSrv, config, logger)
	case transportStreamableHTTP:
		logger.Info("starting MCP server", "transport", config.Transport, "addr", config.HTTPAddr)
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, config, serverContext, instrumentationProvider)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, sse, streamable-http)", config.Transport)
	}
}
