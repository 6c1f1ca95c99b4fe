package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// MemoryClearTool handles requests to reset the memory register
type MemoryClearTool struct {
	memory types.Memory
}

// NewMemoryClearTool creates a new memory clear tool
func NewMemoryClearTool(memory types.Memory) *MemoryClearTool {
	return &MemoryClearTool{
		memory: memory,
	}
}

// GetTool returns the MCP tool definition
func (t *MemoryClearTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolMemoryClear,
		mcp.WithDescription("Clear the calculator memory"),
	)
	return tool
}

// Handle processes the tool request
func (t *MemoryClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.memory.Clear()

	return newJSONResult(results.MemoryToolResult{
		Message: "Memory cleared.",
		Memory:  results.NewMemoryValue(t.memory.Recall()),
	}, false)
}
