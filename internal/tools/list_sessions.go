package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListSessionsTool handles requests to enumerate calculator sessions
type ListSessionsTool struct {
	sessions *session.Manager
}

// NewListSessionsTool creates a new list sessions tool
func NewListSessionsTool(sessions *session.Manager) *ListSessionsTool {
	return &ListSessionsTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *ListSessionsTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolListSessions,
		mcp.WithDescription("List the calculator sessions that have been used"),
	)
	return tool
}

// Handle processes the tool request
func (t *ListSessionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := t.sessions.List()

	toolResult := results.ListSessionsToolResult{
		Sessions: ids,
	}
	if len(ids) == 0 {
		toolResult.Message = "No sessions yet. Any session tool creates one on first use."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d session(s).", len(ids))
	}

	return newJSONResult(toolResult, false)
}
