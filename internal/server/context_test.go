package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
)

// stubClient satisfies miro.Client via embedding; only identity matters in
// these tests, so no methods are overridden.
type stubClient struct {
	miro.Client
	token string
}

func TestNewServerContextDefaults(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	assert.NotNil(t, sc.Config())
	assert.NotNil(t, sc.Logger())
	assert.NotNil(t, sc.Formatter())
	assert.Equal(t, "mcp-miro", sc.Config().ServerName)
}

func TestNewServerContextRejectsNilOptions(t *testing.T) {
	_, err := NewServerContext(context.Background(), WithLogger(nil))
	assert.ErrorIs(t, err, ErrMissingLogger)

	_, err = NewServerContext(context.Background(), WithConfig(nil))
	assert.ErrorIs(t, err, ErrMissingConfig)

	_, err = NewServerContext(context.Background(), WithClientFactory(nil))
	assert.ErrorIs(t, err, ErrMissingClientFactory)
}

func TestMiroClientForContextUsesRequestToken(t *testing.T) {
	var factoryCalls []string
	sc, err := NewServerContext(context.Background(),
		WithClientFactory(func(token string) miro.Client {
			factoryCalls = append(factoryCalls, token)
			return &stubClient{token: token}
		}),
	)
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	ctx := ContextWithToken(context.Background(), "tok-request")

	client, err := sc.MiroClientForContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-request", client.(*stubClient).token)
	assert.Equal(t, []string{"tok-request"}, factoryCalls)
}

func TestMiroClientForContextFallsBackToConfiguredToken(t *testing.T) {
	sc, err := NewServerContext(context.Background(),
		WithAccessToken("tok-static"),
		WithClientFactory(func(token string) miro.Client {
			return &stubClient{token: token}
		}),
	)
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	client, err := sc.MiroClientForContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-static", client.(*stubClient).token)
}

func TestMiroClientForContextRequestTokenWinsOverFallback(t *testing.T) {
	sc, err := NewServerContext(context.Background(),
		WithAccessToken("tok-static"),
		WithClientFactory(func(token string) miro.Client {
			return &stubClient{token: token}
		}),
	)
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	ctx := ContextWithToken(context.Background(), "tok-request")

	client, err := sc.MiroClientForContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-request", client.(*stubClient).token)
}

func TestMiroClientForContextNoTokenFails(t *testing.T) {
	factoryCalled := false
	sc, err := NewServerContext(context.Background(),
		WithClientFactory(func(token string) miro.Client {
			factoryCalled = true
			return &stubClient{token: token}
		}),
	)
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	_, err = sc.MiroClientForContext(context.Background())
	assert.ErrorIs(t, err, ErrTokenMissing)
	assert.False(t, factoryCalled)
}

func TestMiroClientForContextBuildsFreshClients(t *testing.T) {
	calls := 0
	sc, err := NewServerContext(context.Background(),
		WithClientFactory(func(token string) miro.Client {
			calls++
			return &stubClient{token: token}
		}),
	)
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	ctx := ContextWithToken(context.Background(), "tok")

	first, err := sc.MiroClientForContext(ctx)
	require.NoError(t, err)
	second, err := sc.MiroClientForContext(ctx)
	require.NoError(t, err)

	// Each request gets its own client; nothing is cached across calls.
	assert.Equal(t, 2, calls)
	assert.NotSame(t, first.(*stubClient), second.(*stubClient))
}

func TestShutdownIsIdempotent(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	require.NoError(t, err)

	assert.False(t, sc.IsShutdown())
	require.NoError(t, sc.Shutdown())
	assert.True(t, sc.IsShutdown())
	require.NoError(t, sc.Shutdown())

	select {
	case <-sc.Context().Done():
	default:
		t.Fatal("expected server context to be canceled after shutdown")
	}
}

func TestConfigClone(t *testing.T) {
	original := NewDefaultConfig()
	original.AccessToken = "secret"

	clone := original.Clone()
	clone.AccessToken = "changed"
	clone.ServerName = "other"

	assert.Equal(t, "secret", original.AccessToken)
	assert.Equal(t, "mcp-miro", original.ServerName)
}
