package calculator

import "fmt"

// ErrorKind classifies a calculator failure
type ErrorKind string

const (
	ErrorKindDivisionByZero   ErrorKind = "division_by_zero"
	ErrorKindInvalidInput     ErrorKind = "invalid_input"
	ErrorKindOverflow         ErrorKind = "overflow"
	ErrorKindUnderflow        ErrorKind = "underflow"
	ErrorKindCalculationError ErrorKind = "calculation_error"
)

// Messages returned by the arithmetic layer
const (
	MessageDivisionByZero = "Division by zero is not allowed"
	MessageInvalidInput   = "Invalid input"
	MessageOverflow       = "Result is too large to represent"
	MessageUnderflow      = "Result is too small to represent"
)

var errorKinds = map[string]ErrorKind{
	string(ErrorKindDivisionByZero):   ErrorKindDivisionByZero,
	string(ErrorKindInvalidInput):     ErrorKindInvalidInput,
	string(ErrorKindOverflow):         ErrorKindOverflow,
	string(ErrorKindUnderflow):        ErrorKindUnderflow,
	string(ErrorKindCalculationError): ErrorKindCalculationError,
}

// NewErrorKind returns the ErrorKind with the given name, falling back to calculation_error
func NewErrorKind(name string) ErrorKind {
	kind, ok := errorKinds[name]
	if !ok {
		return ErrorKindCalculationError
	}
	return kind
}

// UnmarshalText decodes a kind name; unknown names become calculation_error
func (k *ErrorKind) UnmarshalText(text []byte) error {
	*k = NewErrorKind(string(text))
	return nil
}

// Error is a classified calculator failure with a human-readable message
type Error struct {
	Kind    ErrorKind
	Message string
}

// NewError creates a new calculator error
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// DivisionByZero creates a division by zero error
func DivisionByZero() *Error {
	return NewError(ErrorKindDivisionByZero, MessageDivisionByZero)
}

// InvalidInput creates an invalid input error, optionally carrying details
func InvalidInput(details string) *Error {
	if details == "" {
		return NewError(ErrorKindInvalidInput, MessageInvalidInput)
	}
	return NewError(ErrorKindInvalidInput, MessageInvalidInput+": "+details)
}

// Overflow creates an overflow error
func Overflow() *Error {
	return NewError(ErrorKindOverflow, MessageOverflow)
}

// Underflow creates an underflow error
func Underflow() *Error {
	return NewError(ErrorKindUnderflow, MessageUnderflow)
}

// CalculationError creates a generic calculation error
func CalculationError(message string) *Error {
	return NewError(ErrorKindCalculationError, message)
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is a calculator error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// MessageForKind renders the host-facing message for an error kind
func MessageForKind(kind ErrorKind, details string) string {
	switch kind {
	case ErrorKindDivisionByZero:
		return MessageDivisionByZero
	case ErrorKindInvalidInput:
		return InvalidInput(details).Message
	case ErrorKindOverflow:
		return MessageOverflow
	case ErrorKindUnderflow:
		return MessageUnderflow
	default:
		return fmt.Sprintf("Calculation error: %s", details)
	}
}
