package results

import (
	"math"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// MemoryToolResult represents the result of a memory register tool
type MemoryToolResult struct {
	Message   string         `json:"message"`
	Arguments MemoryToolArgs `json:"arguments"`
	Memory    MemoryValue    `json:"memory"`
}

// MemoryToolArgs represents the input arguments for a memory register tool
type MemoryToolArgs struct {
	Value *float64 `json:"value,omitempty"`
}

// MemoryValue represents the register contents. JSON has no encoding for
// infinities or NaN, so Value is omitted when the register is not finite.
type MemoryValue struct {
	Value   *float64 `json:"value,omitempty"`
	Display string   `json:"display"`
}

// NewMemoryValue converts a register value
func NewMemoryValue(v float64) MemoryValue {
	memory := MemoryValue{Display: calculator.FormatNumber(v)}
	if !math.IsInf(v, 0) && !math.IsNaN(v) {
		memory.Value = &v
	}
	return memory
}
