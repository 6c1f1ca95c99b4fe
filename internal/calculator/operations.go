package calculator

import (
	"fmt"
	"strings"
)

// Operation is a pending binary operator
type Operation int

const (
	OperationNone Operation = iota
	OperationAdd
	OperationSubtract
	OperationMultiply
	OperationDivide
)

var operationNames = map[Operation]string{
	OperationNone:     "none",
	OperationAdd:      "add",
	OperationSubtract: "subtract",
	OperationMultiply: "multiply",
	OperationDivide:   "divide",
}

var operationAliases = map[string]Operation{
	"none":     OperationNone,
	"add":      OperationAdd,
	"+":        OperationAdd,
	"subtract": OperationSubtract,
	"-":        OperationSubtract,
	"multiply": OperationMultiply,
	"*":        OperationMultiply,
	"×":        OperationMultiply,
	"x":        OperationMultiply,
	"divide":   OperationDivide,
	"/":        OperationDivide,
	"÷":        OperationDivide,
}

func (o Operation) String() string {
	name, ok := operationNames[o]
	if !ok {
		return fmt.Sprintf("Operation(%d)", int(o))
	}
	return name
}

// ParseOperation accepts an operation name ("add") or symbol ("+")
func ParseOperation(s string) (Operation, error) {
	op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return OperationNone, InvalidInput(fmt.Sprintf("unknown operation %q", s))
	}
	return op, nil
}

// Apply evaluates the operation; OperationNone passes b through
func (o Operation) Apply(a, b float64) (float64, error) {
	switch o {
	case OperationAdd:
		return Add(a, b), nil
	case OperationSubtract:
		return Subtract(a, b), nil
	case OperationMultiply:
		return Multiply(a, b), nil
	case OperationDivide:
		return Divide(a, b)
	case OperationNone:
		return b, nil
	default:
		return 0, CalculationError(fmt.Sprintf("unsupported operation %s", o))
	}
}

func Add(a, b float64) float64 {
	return a + b
}

func Subtract(a, b float64) float64 {
	return a - b
}

func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a/b, or a division by zero error when b is zero (either sign)
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, DivisionByZero()
	}
	return a / b, nil
}
