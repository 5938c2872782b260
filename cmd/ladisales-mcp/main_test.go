package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/ladiops/ladisales-mcp/internal/config"
	"github.com/ladiops/ladisales-mcp/internal/ladisales"
	"github.com/ladiops/ladisales-mcp/internal/server/tools"
)

func clearGatewayEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LADISALES_API_BASE_URL",
		"LADISALES_API_KEY",
		"LADISALES_LOCATION_BASE_URL",
		"LADISALES_LISTEN",
		"LADISALES_LOG_LEVEL",
		"LADISALES_LOG_FORMAT",
	} {
		// Setenv registers the restore, Unsetenv makes the variable truly
		// absent rather than empty.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestValidateCommandSucceedsWithEnv(t *testing.T) {
	clearGatewayEnv(t)
	t.Setenv("LADISALES_API_BASE_URL", "https://api.example.com/2.0")
	t.Setenv("LADISALES_API_KEY", "secret")

	app := &cli.Command{Commands: []*cli.Command{validateCommand()}}
	err := app.Run(context.Background(), []string{"ladisales-mcp", "validate"})
	require.NoError(t, err)
}

func TestValidateCommandFailsWithoutRequiredValues(t *testing.T) {
	clearGatewayEnv(t)

	app := &cli.Command{Commands: []*cli.Command{validateCommand()}}
	err := app.Run(context.Background(), []string{"ladisales-mcp", "validate"})
	require.Error(t, err)
}

func TestServeCommandRejectsInvalidConfig(t *testing.T) {
	clearGatewayEnv(t)

	app := &cli.Command{Commands: []*cli.Command{serveCommand()}}
	err := app.Run(context.Background(), []string{"ladisales-mcp", "serve"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRenderSummaryListsEveryTool(t *testing.T) {
	cfg := config.Default()
	cfg.APIBaseURL = "https://api.example.com/2.0"
	cfg.LocationBaseURL = cfg.APIBaseURL
	cfg.APIKey = "secret"

	client, err := ladisales.New(cfg.APIBaseURL, cfg.APIKey)
	require.NoError(t, err)
	registry, err := tools.New(client, slog.Default(), "test")
	require.NoError(t, err)

	summary := renderSummary(cfg, "/etc/ladisales/gateway.toml", registry)
	assert.Contains(t, summary, "ladisales-mcp")
	assert.Contains(t, summary, "/etc/ladisales/gateway.toml")
	assert.Contains(t, summary, cfg.Listen)
	assert.Contains(t, summary, cfg.APIBaseURL)
	for _, name := range registry.Names() {
		assert.Contains(t, summary, name, "tool missing from catalog output")
	}

	// Without a file path the config line is omitted entirely.
	summary = renderSummary(cfg, "", registry)
	assert.NotContains(t, summary, "config ")
}

func TestRenderSummaryTruncatesLongUpstreamURL(t *testing.T) {
	cfg := config.Default()
	cfg.APIBaseURL = "https://api.example.com/" + strings.Repeat("segment/", 20) + "2.0"
	cfg.LocationBaseURL = cfg.APIBaseURL
	cfg.APIKey = "secret"

	client, err := ladisales.New(cfg.APIBaseURL, cfg.APIKey)
	require.NoError(t, err)
	registry, err := tools.New(client, slog.Default(), "test")
	require.NoError(t, err)

	summary := renderSummary(cfg, "", registry)
	assert.NotContains(t, summary, cfg.APIBaseURL)
	assert.Contains(t, summary, "...")
}
