package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool handles requests to drive a calculator session from its keypad
type PressKeysTool struct {
	sessions *session.Manager
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(sessions *session.Manager) *PressKeysTool {
	return &PressKeysTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press calculator keys in order and return the display. "+
			"Keys: digits 0-9, '.', '+', '-', '*', '/', '=', 'c' (clear), 'ce' (clear entry), "+
			"'bs' (backspace), '±' (toggle sign), 'ms', 'mr', 'mc', 'm+', 'm-'. "+
			"Separate named keys with spaces; runs of single-character keys such as '12+3=' may be written together."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("The key sequence to press")),
		mcp.WithString("session", mcp.Description(sessionDescription)),
	)
	return tool
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sequence := mcp.ParseString(req, "keys", "")
	if sequence == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	keys, err := keypad.ParseSequence(sequence)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse keys: %v", err)), nil
	}

	id := t.sessions.ResolveID(getSession(req))
	toolResult := results.DisplayToolResult{
		Arguments: results.DisplayToolArgs{
			Session: id,
			Keys:    sequence,
		},
	}

	t.sessions.WithSession(id, func(pad *keypad.Keypad) {
		pad.PressAll(keys)
		toolResult.Display = results.NewDisplayState(pad.State().Snapshot())
	})

	if toolResult.Display.Error != nil {
		toolResult.Message = fmt.Sprintf("Pressed %d key(s). The calculator is in an error state; press 'c' to clear it.", len(keys))
	} else {
		toolResult.Message = fmt.Sprintf("Pressed %d key(s).", len(keys))
	}

	return newJSONResult(toolResult, false)
}
