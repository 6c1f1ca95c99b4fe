package results

import "github.com/averycrespi/calc-mcp/internal/calculator"

// ErrorInfo carries a classified calculator error so clients can branch on the kind
type ErrorInfo struct {
	Kind    calculator.ErrorKind `json:"kind"`
	Message string               `json:"message"`
}

// NewErrorInfo converts a calculator error, returning nil for nil
func NewErrorInfo(err *calculator.Error) *ErrorInfo {
	if err == nil {
		return nil
	}
	return &ErrorInfo{
		Kind:    err.Kind,
		Message: err.Message,
	}
}
