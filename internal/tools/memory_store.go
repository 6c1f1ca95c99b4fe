package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// MemoryStoreTool handles requests to overwrite the memory register
type MemoryStoreTool struct {
	memory types.Memory
}

// NewMemoryStoreTool creates a new memory store tool
func NewMemoryStoreTool(memory types.Memory) *MemoryStoreTool {
	return &MemoryStoreTool{
		memory: memory,
	}
}

// GetTool returns the MCP tool definition
func (t *MemoryStoreTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolMemoryStore,
		mcp.WithDescription("Store a value in calculator memory"),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("The value to store in memory")),
	)
	return tool
}

// Handle processes the tool request
func (t *MemoryStoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := getNumber(req, "value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t.memory.Store(value)

	return newJSONResult(results.MemoryToolResult{
		Message:   fmt.Sprintf("Stored %s in memory.", calculator.FormatNumber(value)),
		Arguments: results.MemoryToolArgs{Value: &value},
		Memory:    results.NewMemoryValue(t.memory.Recall()),
	}, false)
}
