package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// Tool names
const (
	ToolCalculate      = "calculate"
	ToolMemoryStore    = "memory_store"
	ToolMemoryRecall   = "memory_recall"
	ToolMemoryClear    = "memory_clear"
	ToolMemoryAdd      = "memory_add"
	ToolMemorySubtract = "memory_subtract"
	ToolPressKeys      = "press_keys"
	ToolGetDisplay     = "get_display"
	ToolClearSession   = "clear_session"
	ToolListSessions   = "list_sessions"
)

const sessionDescription = "Calculator session name; omit to use the default session"

// getNumber extracts a required numeric argument from an MCP request
func getNumber(req mcp.CallToolRequest, name string) (float64, error) {
	raw, ok := req.GetArguments()[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%s parameter is required", name)
	}

	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%s parameter must be a number: %v", name, err)
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%s parameter must be a finite number", name)
	}
	return value, nil
}

// getBool extracts an optional boolean argument; missing or malformed values are false
func getBool(req mcp.CallToolRequest, name string) bool {
	return cast.ToBool(req.GetArguments()[name])
}

// getSession extracts the optional session argument from an MCP request
func getSession(req mcp.CallToolRequest) string {
	return mcp.ParseString(req, "session", "")
}

// newJSONResult marshals a result struct into a text tool result
func newJSONResult(result any, isError bool) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}

	toolResult := mcp.NewToolResultText(string(jsonBytes))
	toolResult.IsError = isError
	return toolResult, nil
}
