// Package cmd provides the command-line interface for mcp-miro.
//
// This package implements a Cobra-based CLI with multiple subcommands:
//   - serve: Starts the MCP server (default behavior when no subcommand is provided)
//   - version: Displays the application version
//   - self-update: Updates the binary to the latest version from GitHub releases
//
// The CLI maintains backwards compatibility by running the serve command when
// no subcommand is specified.
//
// Command Structure:
//
//	mcp-miro [flags]                 # Starts the MCP server (default)
//	mcp-miro serve [flags]           # Explicitly starts the MCP server
//	mcp-miro version                 # Shows version information
//	mcp-miro self-update             # Updates to latest release
//	mcp-miro help [command]          # Shows help information
//
// The serve command supports multiple transport options:
//   - stdio: Standard input/output (default) - for command-line integration
//   - sse: Server-Sent Events over HTTP - for web-based clients
//   - streamable-http: Streamable HTTP transport - for HTTP-based integration
//
// Transport Configuration Examples:
//
//	mcp-miro serve --transport stdio             # Default STDIO transport
//	mcp-miro serve --transport sse --http-addr :8080 --sse-endpoint /sse
//	mcp-miro serve --transport streamable-http --http-addr :9000 --http-endpoint /mcp
//
// Credentials:
//
// The stdio transport uses a static access token supplied via --token or the
// MIRO_ACCESS_TOKEN environment variable. The HTTP transports resolve the
// token per request from the X-Miro-Token header (or a standard Authorization
// bearer header), so one server instance can serve many Miro accounts.
package cmd
