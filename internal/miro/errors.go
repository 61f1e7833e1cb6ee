package miro

import (
	"errors"
	"fmt"
)

// AuthError indicates the remote API rejected the bearer token (401/403),
// or that no token was available when a call was attempted.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return e.Message
}

// RateLimitError indicates the remote API returned HTTP 429.
// RetryAfter is the suggested wait in seconds before retrying.
type RateLimitError struct {
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
}

// APIError is any other non-2xx response from the remote API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsAuthError reports whether err is (or wraps) an authentication failure.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsRateLimitError reports whether err is (or wraps) a rate-limit failure.
// When true, the suggested wait in seconds is returned as well.
func IsRateLimitError(err error) (int, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr.RetryAfter, true
	}
	return 0, false
}
