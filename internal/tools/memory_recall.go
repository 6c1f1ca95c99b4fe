package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// MemoryRecallTool handles requests to read the memory register
type MemoryRecallTool struct {
	memory types.Memory
}

// NewMemoryRecallTool creates a new memory recall tool
func NewMemoryRecallTool(memory types.Memory) *MemoryRecallTool {
	return &MemoryRecallTool{
		memory: memory,
	}
}

// GetTool returns the MCP tool definition
func (t *MemoryRecallTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolMemoryRecall,
		mcp.WithDescription("Recall the value from calculator memory"),
	)
	return tool
}

// Handle processes the tool request
func (t *MemoryRecallTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value := t.memory.Recall()

	return newJSONResult(results.MemoryToolResult{
		Message: fmt.Sprintf("Memory holds %s.", calculator.FormatNumber(value)),
		Memory:  results.NewMemoryValue(value),
	}, false)
}
