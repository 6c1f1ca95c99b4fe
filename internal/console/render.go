package console

import (
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

const displayWidth = 24

// Render draws the calculator display for a terminal
func Render(snap calculator.Snapshot, memory float64) string {
	var b strings.Builder

	value := snap.Display
	if len(value) < displayWidth {
		value = strings.Repeat(" ", displayWidth-len(value)) + value
	}
	fmt.Fprintf(&b, "[ %s ]", value)

	if memory != 0 {
		b.WriteString("  M")
	}
	if snap.FirstOperand != nil && snap.Operation != calculator.OperationNone {
		fmt.Fprintf(&b, "  %s %s", calculator.FormatNumber(*snap.FirstOperand), operationSymbol(snap.Operation))
	}
	if snap.Err != nil {
		fmt.Fprintf(&b, "  (%s)", snap.Err.Kind)
	}

	return b.String()
}

func operationSymbol(op calculator.Operation) string {
	switch op {
	case calculator.OperationAdd:
		return "+"
	case calculator.OperationSubtract:
		return "-"
	case calculator.OperationMultiply:
		return "×"
	case calculator.OperationDivide:
		return "÷"
	default:
		return ""
	}
}
