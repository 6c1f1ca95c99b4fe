package results

import "github.com/averycrespi/calc-mcp/internal/calculator"

// DisplayToolResult represents the result of a tool that reads or drives a calculator session
type DisplayToolResult struct {
	Message   string          `json:"message"`
	Arguments DisplayToolArgs `json:"arguments"`
	Display   DisplayState    `json:"display"`
}

// DisplayToolArgs represents the input arguments for a session tool
type DisplayToolArgs struct {
	Session string `json:"session"`
	Keys    string `json:"keys,omitempty"`
}

// DisplayState represents what a calculator session shows, plus its pending work
type DisplayState struct {
	Value            string     `json:"value"`
	FirstOperand     *float64   `json:"first_operand,omitempty"`
	PendingOperation string     `json:"pending_operation,omitempty"`
	Error            *ErrorInfo `json:"error,omitempty"`
}

// NewDisplayState converts a calculator snapshot
func NewDisplayState(snap calculator.Snapshot) DisplayState {
	state := DisplayState{
		Value:        snap.Display,
		FirstOperand: snap.FirstOperand,
		Error:        NewErrorInfo(snap.Err),
	}
	if snap.Operation != calculator.OperationNone {
		state.PendingOperation = snap.Operation.String()
	}
	return state
}

// ListSessionsToolResult represents the result of the list sessions tool
type ListSessionsToolResult struct {
	Message  string   `json:"message"`
	Sessions []string `json:"sessions"`
}
