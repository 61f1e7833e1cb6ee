// Package logging provides structured logging utilities for mcp-miro.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - Credential masking (access tokens are never logged directly)
//
// # Usage Patterns
//
// Annotate log entries with the shared attribute helpers:
//
//	logger.Info("listing boards", logging.Tool("miro_get_boards"), logging.BoardID(boardID))
//
// Mask sensitive data before logging:
//
//	logger.Debug("resolved credentials", logging.Token(token))
package logging
