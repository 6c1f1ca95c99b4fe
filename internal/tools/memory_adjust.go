package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// MemoryAdjustTool handles M+ and M- requests
type MemoryAdjustTool struct {
	memory   types.Memory
	subtract bool
}

// NewMemoryAddTool creates a tool that adds to the memory register
func NewMemoryAddTool(memory types.Memory) *MemoryAdjustTool {
	return &MemoryAdjustTool{
		memory: memory,
	}
}

// NewMemorySubtractTool creates a tool that subtracts from the memory register
func NewMemorySubtractTool(memory types.Memory) *MemoryAdjustTool {
	return &MemoryAdjustTool{
		memory:   memory,
		subtract: true,
	}
}

// GetTool returns the MCP tool definition
func (t *MemoryAdjustTool) GetTool() mcp.Tool {
	if t.subtract {
		return mcp.NewTool(ToolMemorySubtract,
			mcp.WithDescription("Subtract a value from calculator memory"),
			mcp.WithNumber("value", mcp.Required(), mcp.Description("The value to subtract from memory")),
		)
	}
	return mcp.NewTool(ToolMemoryAdd,
		mcp.WithDescription("Add a value to calculator memory"),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("The value to add to memory")),
	)
}

// Handle processes the tool request
func (t *MemoryAdjustTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := getNumber(req, "value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var message string
	if t.subtract {
		t.memory.Subtract(value)
		message = fmt.Sprintf("Subtracted %s from memory.", calculator.FormatNumber(value))
	} else {
		t.memory.Add(value)
		message = fmt.Sprintf("Added %s to memory.", calculator.FormatNumber(value))
	}

	return newJSONResult(results.MemoryToolResult{
		Message:   message,
		Arguments: results.MemoryToolArgs{Value: &value},
		Memory:    results.NewMemoryValue(t.memory.Recall()),
	}, false)
}
