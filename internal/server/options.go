package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/instrumentation"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools/output"
)

// Option is a functional option for configuring ServerContext.
type Option func(*ServerContext) error

// WithLogger sets the structured logger for the ServerContext.
func WithLogger(logger *slog.Logger) Option {
	return func(sc *ServerContext) error {
		if logger == nil {
			return ErrMissingLogger
		}
		sc.logger = logger
		return nil
	}
}

// WithConfig sets the configuration for the ServerContext.
func WithConfig(config *Config) Option {
	return func(sc *ServerContext) error {
		if config == nil {
			return ErrMissingConfig
		}
		sc.config = config.Clone()
		return nil
	}
}

// WithClientFactory sets the factory used to build per-request Miro clients.
// Tests use this to inject a mock client.
func WithClientFactory(factory ClientFactory) Option {
	return func(sc *ServerContext) error {
		if factory == nil {
			return ErrMissingClientFactory
		}
		sc.clientFactory = factory
		return nil
	}
}

// WithFormatter sets the response formatter.
func WithFormatter(formatter *output.Formatter) Option {
	return func(sc *ServerContext) error {
		sc.formatter = formatter
		return nil
	}
}

// WithInstrumentationProvider sets the OpenTelemetry instrumentation provider.
func WithInstrumentationProvider(provider *instrumentation.Provider) Option {
	return func(sc *ServerContext) error {
		sc.instrumentationProvider = provider
		return nil
	}
}

// WithAccessToken sets a static access token used when the request context
// carries none. This is the credential path for the stdio transport, where
// there are no per-request headers.
func WithAccessToken(token string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.AccessToken = token
		return nil
	}
}

// Error definitions for ServerContext validation and operations.
var (
	ErrMissingConfig        = errors.New("configuration is required")
	ErrMissingLogger        = errors.New("logger is required")
	ErrMissingClientFactory = errors.New("client factory is required")
	ErrTokenMissing         = errors.New("no Miro access token available for this request")
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	ServerName string `json:"serverName"`
	Version    string `json:"version"`

	// Remote API settings
	APIBaseURL     string        `json:"apiBaseUrl"`
	RequestTimeout time.Duration `json:"requestTimeout"`

	// AccessToken is the static fallback token for transports without
	// per-request headers (stdio). HTTP transports resolve the token per
	// request instead.
	AccessToken string `json:"-"`

	// List operation limits
	DefaultPageSize int `json:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize"`

	// MaxResponseChars caps the size of formatted tool responses.
	MaxResponseChars int `json:"maxResponseChars"`

	// Logging settings
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// NewDefaultConfig creates a configuration with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		ServerName:       "mcp-miro",
		Version:          "0.1.0",
		APIBaseURL:       miro.DefaultBaseURL,
		RequestTimeout:   miro.DefaultTimeout,
		DefaultPageSize:  miro.DefaultPageSize,
		MaxPageSize:      miro.MaxPageSize,
		MaxResponseChars: output.DefaultMaxResponseChars,
		LogLevel:         "info",
		LogFormat:        "json",
	}
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
