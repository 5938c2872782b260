// Package tools defines the MCP tool catalog for the LaDiSales gateway and
// the registry that mounts it on an MCP server. Each tool is a thin typed
// shim over the upstream client; the upstream owns all entity shapes.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ladiops/ladisales-mcp/internal/ladisales"
	"github.com/ladiops/ladisales-mcp/internal/server/dispatch"
)

// rawHandler dispatches a decoded argument payload without going through
// the MCP session layer.
type rawHandler func(ctx context.Context, args json.RawMessage) (*mcp.CallToolResult, error)

// Registry owns the tool catalog and the MCP server it is mounted on.
type Registry struct {
	client     *ladisales.Client
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
	server     *mcp.Server
	raw        map[string]rawHandler
}

// New builds a Registry with the full tool catalog registered.
func New(client *ladisales.Client, logger *slog.Logger, version string) (*Registry, error) {
	if client == nil {
		return nil, fmt.Errorf("client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := &Registry{
		client:     client,
		dispatcher: dispatch.New(logger),
		logger:     logger.WithGroup("tools"),
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "ladisales",
			Title:   "LaDiSales Gateway",
			Version: version,
		}, nil),
		raw: make(map[string]rawHandler),
	}

	for _, register := range []func(*Registry) error{
		registerProductTools,
		registerCustomerTools,
		registerDiscountTools,
		registerLocationTools,
	} {
		if err := register(r); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("tool catalog registered", "tools", len(r.raw))
	return r, nil
}

// Server returns the MCP server carrying the catalog.
func (r *Registry) Server() *mcp.Server {
	return r.server
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.raw))
	for name := range r.raw {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch routes a call by tool name without an MCP session, used by tests
// and diagnostics. Unknown names surface as an UnknownTool result.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) (*mcp.CallToolResult, error) {
	handler, ok := r.raw[name]
	if !ok {
		return dispatch.ErrorResult(&ladisales.Error{
			Kind: ladisales.KindUnknownTool,
			Op:   name,
			Err:  fmt.Errorf("tool is not registered"),
		}), nil
	}
	return handler(ctx, args)
}

// notifyPage streams page-level progress to clients that asked for it.
// Best effort; a failed notification never fails the call.
func notifyPage(ctx context.Context, req *mcp.CallToolRequest, page, items int) {
	if req == nil || req.Session == nil || req.Params == nil {
		return
	}
	token := req.Params.GetProgressToken()
	if token == nil {
		return
	}
	_ = req.Session.NotifyProgress(ctx, &mcp.ProgressNotificationParams{
		ProgressToken: token,
		Progress:      float64(items),
		Message:       fmt.Sprintf("fetched page %d", page),
	})
}

// add registers one tool on both the MCP server and the raw dispatch table.
// Duplicate names are a programming error and rejected.
func add[In, Out any](r *Registry, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, Out]) error {
	if _, dup := r.raw[tool.Name]; dup {
		return fmt.Errorf("duplicate tool name %q", tool.Name)
	}

	wrapped := dispatch.Wrap(r.dispatcher, tool.Name, handler)
	mcp.AddTool(r.server, tool, wrapped)

	r.raw[tool.Name] = func(ctx context.Context, args json.RawMessage) (*mcp.CallToolResult, error) {
		var in In
		if len(args) > 0 {
			if err := json.Unmarshal(args, &in); err != nil {
				return dispatch.ErrorResult(
					ladisales.NewValidation(tool.Name, "decoding arguments: %v", err)), nil
			}
		}

		result, out, err := wrapped(ctx, &mcp.CallToolRequest{}, in)
		if err != nil {
			return dispatch.ErrorResult(err), nil
		}
		if result != nil {
			return result, nil
		}

		encoded, err := json.Marshal(out)
		if err != nil {
			return dispatch.ErrorResult(fmt.Errorf("encoding %s result: %w", tool.Name, err)), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(encoded)}},
		}, nil
	}
	return nil
}
