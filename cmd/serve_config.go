package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/server"
)

// envValueTrue is the string value used to enable boolean environment variables.
const envValueTrue = "true"

// ServeConfig holds all configuration for the serve command.
type ServeConfig struct {
	// Transport settings
	Transport string
	HTTPAddr  string

	// Endpoint paths
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	// Miro API settings. AccessToken is the static fallback token used by
	// the stdio transport; HTTP transports resolve tokens per request.
	AccessToken    string
	APIBaseURL     string
	RequestTimeout time.Duration

	// Response shaping
	DefaultPageSize  int
	MaxPageSize      int
	MaxResponseChars int

	// Logging
	LogLevel  string
	LogFormat string
	DebugMode bool

	// HTTP hardening (streamable-http transport)
	EnableHSTS      bool
	AllowedOrigins  string
	MaxRequestBytes int64

	// Metrics server configuration
	Metrics MetricsServeConfig
}

// MetricsServeConfig configures the dedicated Prometheus metrics listener.
// It is kept on a separate port so the metrics endpoint can stay internal
// while the MCP endpoint is exposed.
type MetricsServeConfig struct {
	Enabled bool
	Addr    string
}

// Validate checks the serve configuration for values that cannot work.
func (c *ServeConfig) Validate() error {
	switch c.Transport {
	case transportStdio, transportSSE, transportStreamableHTTP:
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: %s, %s, %s)",
			c.Transport, transportStdio, transportSSE, transportStreamableHTTP)
	}

	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default page size must be positive, got %d", c.DefaultPageSize)
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("max page size (%d) must be >= default page size (%d)", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", c.RequestTimeout)
	}
	return nil
}

// ServerConfig converts the CLI configuration into the server configuration.
func (c *ServeConfig) ServerConfig() *server.Config {
	cfg := server.NewDefaultConfig()
	cfg.Version = rootCmd.Version
	cfg.APIBaseURL = c.APIBaseURL
	cfg.RequestTimeout = c.RequestTimeout
	cfg.AccessToken = c.AccessToken
	cfg.DefaultPageSize = c.DefaultPageSize
	cfg.MaxPageSize = c.MaxPageSize
	cfg.MaxResponseChars = c.MaxResponseChars
	cfg.LogLevel = c.LogLevel
	cfg.LogFormat = c.LogFormat
	return cfg
}

// loadEnvIfEmpty loads an environment variable into a string pointer if it's empty.
func loadEnvIfEmpty(target *string, envKey string) {
	if *target == "" {
		*target = os.Getenv(envKey)
	}
}
