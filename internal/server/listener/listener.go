// Package listener provides the HTTP transport for the gateway. It mounts
// the MCP streamable endpoint and a health check on a supervised HTTP
// server runnable.
package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"

	"github.com/ladiops/ladisales-mcp/internal/server/tools"
)

// Ensure Listener implements the supervisor interfaces.
var (
	_ supervisor.Runnable  = (*Listener)(nil)
	_ supervisor.Stateable = (*Listener)(nil)
)

// Timeouts carries the HTTP server timeout configuration.
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
	Drain time.Duration
}

// Listener wraps go-supervisor's httpserver.Runner with the gateway routes.
type Listener struct {
	addr     string
	server   *httpserver.Runner
	logger   *slog.Logger
	numTools int
}

// New builds a Listener serving the registry's MCP server at /mcp and a
// health check at /healthz.
func New(addr string, registry *tools.Registry, timeouts Timeouts, logger *slog.Logger) (*Listener, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.WithGroup("listener")

	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return registry.Server()
	}, nil)

	requestLogger := RequestLogger(logger)

	mcpRoute, err := httpserver.NewRouteFromHandlerFunc(
		"mcp", "/mcp", mcpHandler.ServeHTTP, requestLogger)
	if err != nil {
		return nil, fmt.Errorf("creating mcp route: %w", err)
	}
	healthRoute, err := httpserver.NewRouteFromHandlerFunc(
		"healthz", "/healthz", healthHandler)
	if err != nil {
		return nil, fmt.Errorf("creating health route: %w", err)
	}
	routes := []httpserver.Route{*mcpRoute, *healthRoute}

	configCallback := func() (*httpserver.Config, error) {
		options := []httpserver.ConfigOption{}
		if timeouts.Read > 0 {
			options = append(options, httpserver.WithReadTimeout(timeouts.Read))
		}
		if timeouts.Write > 0 {
			options = append(options, httpserver.WithWriteTimeout(timeouts.Write))
		}
		if timeouts.Idle > 0 {
			options = append(options, httpserver.WithIdleTimeout(timeouts.Idle))
		}
		if timeouts.Drain > 0 {
			options = append(options, httpserver.WithDrainTimeout(timeouts.Drain))
		}
		return httpserver.NewConfig(addr, routes, options...)
	}

	runner, err := httpserver.NewRunner(httpserver.WithConfigCallback(configCallback))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP server runner: %w", err)
	}

	return &Listener{
		addr:     addr,
		server:   runner,
		logger:   logger,
		numTools: len(registry.Names()),
	}, nil
}

// String returns a unique identifier for this listener.
func (l *Listener) String() string {
	return fmt.Sprintf("Listener[%s]", l.addr)
}

// Run starts the HTTP server and blocks until the context is canceled.
func (l *Listener) Run(ctx context.Context) error {
	l.logger.Info("Starting MCP listener", "address", l.addr, "tools", l.numTools)
	return l.server.Run(ctx)
}

// Stop stops the HTTP server, draining in-flight requests.
func (l *Listener) Stop() {
	l.logger.Info("Stopping MCP listener", "address", l.addr)
	l.server.Stop()
}

// GetState returns the current state of the underlying server.
func (l *Listener) GetState() string {
	return l.server.GetState()
}

// IsRunning reports whether the server is accepting requests.
func (l *Listener) IsRunning() bool {
	return l.server.IsReady()
}

// GetStateChan returns a channel emitting state changes.
func (l *Listener) GetStateChan(ctx context.Context) <-chan string {
	return l.server.GetStateChan(ctx)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
