// Package middleware provides HTTP middleware for the MCP server's network
// transports: security headers, CORS, and request metrics.
package middleware
