package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetDisplayTool handles requests to read a calculator session
type GetDisplayTool struct {
	sessions *session.Manager
}

// NewGetDisplayTool creates a new get display tool
func NewGetDisplayTool(sessions *session.Manager) *GetDisplayTool {
	return &GetDisplayTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *GetDisplayTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolGetDisplay,
		mcp.WithDescription("Read the display and pending operation of a calculator session"),
		mcp.WithString("session", mcp.Description(sessionDescription)),
	)
	return tool
}

// Handle processes the tool request
func (t *GetDisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := t.sessions.ResolveID(getSession(req))

	return newJSONResult(results.DisplayToolResult{
		Message:   "Current display.",
		Arguments: results.DisplayToolArgs{Session: id},
		Display:   results.NewDisplayState(t.sessions.Snapshot(id)),
	}, false)
}
