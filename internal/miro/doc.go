// Package miro provides a typed client for the Miro REST API v2.
//
// The Client interface exposes one method per remote operation: board CRUD,
// board membership, generic and typed board items, connectors, tags, and
// groups. Every method performs exactly one HTTP request against the remote
// API and returns either a decoded response or a normalized error.
//
// # Error Normalization
//
// All methods translate HTTP failures into a small error taxonomy:
//
//   - 401/403 become *AuthError
//   - 429 becomes *RateLimitError carrying the Retry-After value
//   - any other non-2xx becomes *APIError with the status code and a
//     best-effort message extracted from the JSON error body
//
// A 204 response is a valid empty success, never an error.
//
// # Credential Isolation
//
// A Client is constructed with exactly one bearer token and is intended to
// live for a single inbound request. Clients are never shared across
// requests, so no locking is required. Calling any method on a client with
// an empty token fails with *AuthError before any network I/O.
//
// # Retries
//
// The client never retries. Rate-limit errors surface the suggested wait
// time so the caller can decide whether to retry.
package miro
