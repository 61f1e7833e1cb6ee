package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeCmdProperties(t *testing.T) {
	cmd := newServeCmd()

	assert.Equal(t, "serve", cmd.Use)
	assert.Equal(t, "Start the MCP Miro server", cmd.Short)
	assert.True(t, strings.Contains(cmd.Long, "Model Context Protocol"))
	assert.True(t, strings.Contains(cmd.Long, "stdio"))
	assert.True(t, strings.Contains(cmd.Long, "sse"))
	assert.True(t, strings.Contains(cmd.Long, "streamable-http"))
	assert.True(t, strings.Contains(cmd.Long, "X-Miro-Token"))
}

func TestServeCmdFlags(t *testing.T) {
	cmd := newServeCmd()

	flagNames := []string{
		"transport",
		"http-addr",
		"sse-endpoint",
		"message-endpoint",
		"http-endpoint",
		"token",
		"api-base-url",
		"request-timeout",
		"default-page-size",
		"max-page-size",
		"max-response-chars",
		"log-level",
		"log-format",
		"debug",
		"max-request-bytes",
		"metrics",
		"metrics-addr",
	}

	for _, flagName := range flagNames {
		flag := cmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "Flag %s should exist", flagName)
	}
}

func TestServeCmdFlagDefaults(t *testing.T) {
	cmd := newServeCmd()

	tests := []struct {
		flagName string
		expected string
	}{
		{"transport", "stdio"},
		{"http-addr", ":8080"},
		{"sse-endpoint", "/sse"},
		{"message-endpoint", "/message"},
		{"http-endpoint", "/mcp"},
		{"api-base-url", "https://api.miro.com/v2"},
		{"default-page-size", "20"},
		{"max-page-size", "100"},
		{"log-level", "info"},
		{"log-format", "json"},
		{"metrics-addr", ":9090"},
	}

	for _, tt := range tests {
		flag := cmd.Flags().Lookup(tt.flagName)
		if assert.NotNil(t, flag, "Flag %s should exist", tt.flagName) {
			assert.Equal(t, tt.expected, flag.DefValue, "Flag %s default", tt.flagName)
		}
	}
}

func TestInstrumentationConfigFor(t *testing.T) {
	t.Setenv("INSTRUMENTATION_ENABLED", "")

	t.Run("disabled by default", func(t *testing.T) {
		cfg := instrumentationConfigFor(ServeConfig{}, "1.2.3")
		assert.False(t, cfg.Enabled)
		assert.Equal(t, "1.2.3", cfg.ServiceVersion)
	})

	t.Run("metrics flag implies enabled provider", func(t *testing.T) {
		cfg := instrumentationConfigFor(ServeConfig{Metrics: MetricsServeConfig{Enabled: true}}, "1.2.3")
		assert.True(t, cfg.Enabled)
	})

	t.Run("env toggle honored without the flag", func(t *testing.T) {
		t.Setenv("INSTRUMENTATION_ENABLED", "true")
		cfg := instrumentationConfigFor(ServeConfig{}, "1.2.3")
		assert.True(t, cfg.Enabled)
	})
}

func TestServeCmdRejectsUnknownTransport(t *testing.T) {
	cmd := newServeCmd()
	cmd.SetArgs([]string{"--transport", "carrier-pigeon"})

	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport type")
}
