// Call state machine implementation.
// Tracks the lifecycle of individual tool calls through the dispatcher.
package dispatch

import (
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Call state constants
const (
	CallReceived   = "received"
	CallValidated  = "validated"
	CallDispatched = "dispatched"
	CallSucceeded  = "succeeded"
	CallFailed     = "failed"
)

// CallTransitions defines valid state transitions for a tool call. A call
// may fail at any stage: before validation (unknown tool, undecodable
// arguments), before dispatch, or after.
var CallTransitions = map[string][]string{
	CallReceived:   {CallValidated, CallFailed},
	CallValidated:  {CallDispatched, CallFailed},
	CallDispatched: {CallSucceeded, CallFailed},
	CallSucceeded:  {},
	CallFailed:     {},
}

type CallFSM struct {
	*fsm.Machine
}

func NewCallFSM(handler slog.Handler) (*CallFSM, error) {
	machine, err := fsm.New(handler, CallReceived, CallTransitions)
	if err != nil {
		return nil, err
	}
	return &CallFSM{Machine: machine}, nil
}
