package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "dedicated header",
			headers: map[string]string{TokenHeader: "tok-123"},
			want:    "tok-123",
		},
		{
			name:    "authorization bearer fallback",
			headers: map[string]string{"Authorization": "Bearer tok-456"},
			want:    "tok-456",
		},
		{
			name:    "bearer prefix case insensitive",
			headers: map[string]string{"Authorization": "bearer tok-789"},
			want:    "tok-789",
		},
		{
			name: "dedicated header wins over authorization",
			headers: map[string]string{
				TokenHeader:     "tok-primary",
				"Authorization": "Bearer tok-secondary",
			},
			want: "tok-primary",
		},
		{
			name:    "whitespace trimmed",
			headers: map[string]string{TokenHeader: "  tok-123  "},
			want:    "tok-123",
		},
		{
			name:    "non-bearer authorization ignored",
			headers: map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			want:    "",
		},
		{
			name:    "no headers",
			headers: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/mcp", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ExtractToken(req))
		})
	}
}

func TestTokenContextRoundTrip(t *testing.T) {
	ctx := ContextWithToken(context.Background(), "tok-abc")

	token, ok := TokenFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", token)
}

func TestTokenFromContextMissing(t *testing.T) {
	token, ok := TokenFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestHTTPContextFuncInjectsToken(t *testing.T) {
	req := httptest.NewRequest("POST", "/mcp", nil)
	req.Header.Set(TokenHeader, "tok-xyz")

	ctx := HTTPContextFunc(context.Background(), req)

	token, ok := TokenFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "tok-xyz", token)
}

func TestRequireCredentialsRejectsBeforeHandler(t *testing.T) {
	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	middleware := RequireCredentials(false)(handler)

	req := httptest.NewRequest("POST", "/mcp", nil)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	// The handler must never run for an unauthenticated request.
	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body credentialRejection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	assert.Equal(t, RequiredHeaders, body.RequiredHeaders)
}

func TestRequireCredentialsPassesWithToken(t *testing.T) {
	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	middleware := RequireCredentials(false)(handler)

	req := httptest.NewRequest("POST", "/mcp", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireCredentialsFallbackAllowsMissingHeaders(t *testing.T) {
	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	// With a static token configured the front door lets requests through.
	middleware := RequireCredentials(true)(handler)

	req := httptest.NewRequest("POST", "/mcp", nil)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}
