package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// TokenHeader is the primary header carrying the per-request Miro access
// token. A standard Authorization bearer header is accepted as a fallback.
const TokenHeader = "X-Miro-Token"

// RequiredHeaders lists the headers a client may use to supply credentials,
// in preference order. Returned in rejection responses so callers can fix
// their configuration programmatically.
var RequiredHeaders = []string{TokenHeader, "Authorization"}

// tokenContextKey is the private context key for the resolved token.
type tokenContextKey struct{}

// ContextWithToken returns a child context carrying the given access token.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext retrieves the per-request access token, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok && token != ""
}

// ExtractToken resolves the bearer token from request headers. It reads
// X-Miro-Token first, then a standard Authorization bearer header. It never
// touches the network and has no side effects.
func ExtractToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(TokenHeader)); token != "" {
		return token
	}
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// HTTPContextFunc injects the resolved token into the request context. It is
// installed on the HTTP transports via the mcp-go context-func options, so
// every tool handler sees the credentials of exactly the request it serves.
func HTTPContextFunc(ctx context.Context, r *http.Request) context.Context {
	if token := ExtractToken(r); token != "" {
		return ContextWithToken(ctx, token)
	}
	return ctx
}

// credentialRejection is the JSON body returned for requests lacking
// credentials. This is an HTTP-layer rejection, deliberately distinct from
// the MCP tool error envelope: the two protocol layers must not be conflated.
type credentialRejection struct {
	Error           string   `json:"error"`
	RequiredHeaders []string `json:"requiredHeaders"`
}

// RequireCredentials rejects requests without a resolvable bearer token
// before they reach the MCP handler. When allowFallback is true (a static
// token is configured) requests pass through even without headers.
func RequireCredentials(allowFallback bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allowFallback && ExtractToken(r) == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(credentialRejection{
					Error:           "missing Miro access token",
					RequiredHeaders: RequiredHeaders,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
