package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/instrumentation"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
	"github.com/primrose-mcp/primrose-mcp-miro/internal/tools/output"
)

// ClientFactory builds a miro.Client bound to one bearer token. The server
// calls it once per inbound request so each request gets its own client.
type ClientFactory func(token string) miro.Client

// ServerContext encapsulates all dependencies needed by the MCP server
// and provides a clean abstraction for dependency injection and lifecycle
// management.
type ServerContext struct {
	// Core dependencies
	config        *Config
	logger        *slog.Logger
	clientFactory ClientFactory
	formatter     *output.Formatter

	// Observability
	instrumentationProvider *instrumentation.Provider

	// Context management
	ctx    context.Context
	cancel context.CancelFunc

	// Lifecycle management
	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new ServerContext with default values.
// Use the provided functional options to customize the context.
func NewServerContext(ctx context.Context, opts ...Option) (*ServerContext, error) {
	serverCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:    serverCtx,
		cancel: cancel,
		config: NewDefaultConfig(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(sc); err != nil {
			cancel()
			return nil, err
		}
	}

	// The default factory builds real API clients from the configuration.
	// Tests replace it via WithClientFactory.
	if sc.clientFactory == nil {
		cfg := sc.config
		logger := sc.logger
		metrics := sc.instrumentationProvider.Metrics()
		sc.clientFactory = func(token string) miro.Client {
			return miro.New(token,
				miro.WithBaseURL(cfg.APIBaseURL),
				miro.WithTimeout(cfg.RequestTimeout),
				miro.WithLogger(logger),
				miro.WithMetrics(metrics),
			)
		}
	}

	if sc.formatter == nil {
		sc.formatter = output.NewFormatter(&output.Config{
			MaxResponseChars: sc.config.MaxResponseChars,
		})
	}

	if err := sc.validate(); err != nil {
		cancel()
		return nil, err
	}

	return sc, nil
}

// Context returns the server context for cancellation and deadlines.
func (sc *ServerContext) Context() context.Context {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.ctx
}

// MiroClientForContext returns a Miro client bound to the credentials of the
// request carried by ctx. Resolution order: request context token, then the
// statically configured token (stdio mode). When neither is present the
// request must not proceed, so ErrTokenMissing is returned.
//
// A fresh client is constructed on every call; nothing is shared across
// requests, which is the concurrency-isolation strategy of this server.
func (sc *ServerContext) MiroClientForContext(ctx context.Context) (miro.Client, error) {
	sc.mu.RLock()
	factory := sc.clientFactory
	fallback := sc.config.AccessToken
	metrics := sc.instrumentationProvider.Metrics()
	sc.mu.RUnlock()

	token, ok := TokenFromContext(ctx)
	if !ok || token == "" {
		token = fallback
	}
	if token == "" {
		metrics.RecordCredentialResolution(ctx, instrumentation.CredentialResultMissing)
		return nil, ErrTokenMissing
	}

	metrics.RecordCredentialResolution(ctx, instrumentation.CredentialResultOK)
	return factory(token), nil
}

// Logger returns the structured logger.
func (sc *ServerContext) Logger() *slog.Logger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.logger
}

// Config returns the server configuration.
func (sc *ServerContext) Config() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// Formatter returns the response formatter shared by all tool handlers.
// The formatter is stateless, so sharing it across requests is safe.
func (sc *ServerContext) Formatter() *output.Formatter {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.formatter
}

// InstrumentationProvider returns the observability provider. May be nil.
func (sc *ServerContext) InstrumentationProvider() *instrumentation.Provider {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.instrumentationProvider
}

// Shutdown gracefully shuts down the server context.
// This cancels the context and flushes instrumentation exporters.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.logger.Info("shutting down server context")

	var err error
	if sc.instrumentationProvider != nil {
		err = sc.instrumentationProvider.Shutdown(context.Background())
	}

	if sc.cancel != nil {
		sc.cancel()
	}
	sc.shutdown = true

	return err
}

// IsShutdown returns true if the server context has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// validate ensures all required dependencies are set.
func (sc *ServerContext) validate() error {
	if sc.config == nil {
		return ErrMissingConfig
	}
	if sc.logger == nil {
		return ErrMissingLogger
	}
	if sc.clientFactory == nil {
		return ErrMissingClientFactory
	}
	return nil
}
