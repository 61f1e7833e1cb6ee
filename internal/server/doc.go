// Package server provides the ServerContext and HTTP front door for the
// mcp-miro MCP server.
//
// ServerContext encapsulates all dependencies needed by tool handlers:
// configuration, the structured logger, the per-request Miro client factory,
// the response formatter, and the instrumentation provider. It is built once
// at startup via functional options.
//
// The front door resolves per-request tenant credentials: on HTTP transports
// the bearer token is extracted from request headers and injected into the
// request context; tool handlers obtain a fresh miro.Client bound to that
// token via MiroClientForContext. A request without credentials is rejected
// with a structured 401 before any tool executes. Credentials are never
// shared across requests.
package server
