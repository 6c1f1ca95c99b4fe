package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearSessionTool handles requests to fully reset a calculator session
type ClearSessionTool struct {
	sessions *session.Manager
}

// NewClearSessionTool creates a new clear session tool
func NewClearSessionTool(sessions *session.Manager) *ClearSessionTool {
	return &ClearSessionTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *ClearSessionTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolClearSession,
		mcp.WithDescription("Clear a calculator session, including any error state. Memory is not affected."),
		mcp.WithString("session", mcp.Description(sessionDescription)),
		mcp.WithBoolean("delete", mcp.Description("Discard the session instead of resetting it")),
	)
	return tool
}

// Handle processes the tool request
func (t *ClearSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := t.sessions.ResolveID(getSession(req))

	if getBool(req, "delete") {
		message := "Session deleted."
		if !t.sessions.Delete(id) {
			message = "Session did not exist."
		}
		return newJSONResult(results.DisplayToolResult{
			Message:   message,
			Arguments: results.DisplayToolArgs{Session: id},
			Display:   results.NewDisplayState(calculator.NewState().Snapshot()),
		}, false)
	}

	return newJSONResult(results.DisplayToolResult{
		Message:   "Session cleared.",
		Arguments: results.DisplayToolArgs{Session: id},
		Display:   results.NewDisplayState(t.sessions.Reset(id)),
	}, false)
}
