package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculateTool handles two-operand arithmetic requests
type CalculateTool struct{}

// NewCalculateTool creates a new calculate tool
func NewCalculateTool() *CalculateTool {
	return &CalculateTool{}
}

// GetTool returns the MCP tool definition
func (t *CalculateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolCalculate,
		mcp.WithDescription("Perform a calculation with two numbers"),
		mcp.WithNumber("num1", mcp.Required(), mcp.Description("The first number in the calculation")),
		mcp.WithNumber("num2", mcp.Required(), mcp.Description("The second number in the calculation")),
		mcp.WithString("operation", mcp.Required(),
			mcp.Enum("add", "subtract", "multiply", "divide"),
			mcp.Description("The operation to perform"),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	num1, err := getNumber(req, "num1")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	num2, err := getNumber(req, "num2")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opName := mcp.ParseString(req, "operation", "")
	if opName == "" {
		return mcp.NewToolResultError("operation parameter is required"), nil
	}

	op, err := calculator.ParseOperation(opName)
	if err != nil || op == calculator.OperationNone {
		return mcp.NewToolResultError(fmt.Sprintf("Unsupported operation: %s", opName)), nil
	}

	toolResult := results.CalculateToolResult{
		Arguments: results.CalculateToolArgs{
			Num1:      num1,
			Num2:      num2,
			Operation: op.String(),
		},
	}

	value, calcErr := evaluate(op, num1, num2)
	if calcErr != nil {
		slog.Debug("Calculation failed", "operation", op.String(), "num1", num1, "num2", num2, "error", calcErr)
		toolResult.Message = calculator.MessageForKind(calcErr.Kind, calcErr.Message)
		toolResult.Error = results.NewErrorInfo(calcErr)
		return newJSONResult(toolResult, true)
	}

	toolResult.Result = &value
	toolResult.Display = calculator.FormatNumber(value)
	toolResult.Message = fmt.Sprintf("%s %s %s = %s",
		calculator.FormatNumber(num1), op.String(), calculator.FormatNumber(num2), toolResult.Display)

	return newJSONResult(toolResult, false)
}

// evaluate applies op and classifies results that cannot be shown as a number.
// A nonzero product or quotient that rounds to zero is reported as underflow.
func evaluate(op calculator.Operation, a, b float64) (float64, *calculator.Error) {
	value, err := op.Apply(a, b)
	if err != nil {
		var calcErr *calculator.Error
		if errors.As(err, &calcErr) {
			return 0, calcErr
		}
		return 0, calculator.CalculationError(err.Error())
	}

	switch {
	case math.IsInf(value, 0):
		return 0, calculator.Overflow()
	case math.IsNaN(value):
		return 0, calculator.CalculationError("Invalid operation")
	case value == 0 && a != 0 && ((op == calculator.OperationMultiply && b != 0) || op == calculator.OperationDivide):
		return 0, calculator.Underflow()
	}

	return value, nil
}
