// Package dispatch decorates tool handlers with per-call tracking. Every
// call gets a correlation ID, a lifecycle state machine, and structured
// logs; failures are converted into protocol-visible tool results instead
// of transport errors.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ladiops/ladisales-mcp/internal/ladisales"
)

// Dispatcher carries the shared state for wrapped handlers.
type Dispatcher struct {
	logger *slog.Logger
}

// New creates a Dispatcher logging through the given logger.
func New(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger.WithGroup("dispatch")}
}

// Wrap decorates a typed tool handler. The wrapped handler assigns a call
// ID, walks the call state machine, logs the outcome with elapsed time, and
// maps any returned error to a tool result with IsError set. The protocol
// layer never sees a Go error from a wrapped handler.
func Wrap[In, Out any](d *Dispatcher, name string, handler mcp.ToolHandlerFor[In, Out]) mcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, Out, error) {
		var zero Out

		callID := uuid.Must(uuid.NewV4()).String()
		logger := d.logger.With("tool", name, "call_id", callID)

		machine, err := NewCallFSM(logger.Handler())
		if err != nil {
			logger.Error("call state machine setup failed", "error", err)
			return ErrorResult(err), zero, nil
		}

		start := time.Now()
		logger.Debug("tool call received")

		// By the time the wrapped handler runs, the arguments have already
		// been decoded against the input schema.
		for _, state := range []string{CallValidated, CallDispatched} {
			if err := machine.Transition(state); err != nil {
				logger.Error("call state transition failed", "error", err)
				return ErrorResult(err), zero, nil
			}
		}

		result, out, err := handler(ctx, req, in)
		elapsed := time.Since(start)

		if err != nil {
			machine.TransitionBool(CallFailed)
			logger.Warn("tool call failed",
				"kind", errorKindName(err),
				"elapsed", elapsed,
				"error", err)
			return ErrorResult(err), zero, nil
		}

		if result != nil && result.IsError {
			machine.TransitionBool(CallFailed)
			logger.Warn("tool call returned error result", "elapsed", elapsed)
			return result, out, nil
		}

		machine.TransitionBool(CallSucceeded)
		logger.Debug("tool call succeeded", "elapsed", elapsed)
		return result, out, nil
	}
}

// ErrorResult converts an error into a tool result the MCP client can
// inspect. The payload is a small JSON object naming the error class, so
// clients can distinguish bad input from upstream trouble.
func ErrorResult(err error) *mcp.CallToolResult {
	payload, marshalErr := json.Marshal(map[string]any{
		"error":   errorKindName(err),
		"message": err.Error(),
	})
	if marshalErr != nil {
		payload = []byte(fmt.Sprintf(`{"error":%q}`, err.Error()))
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
	}
}

func errorKindName(err error) string {
	if kind := ladisales.KindOf(err); kind != 0 {
		return kind.String()
	}
	return "InternalError"
}
