package calculator

import (
	"fmt"
	"math"
	"strings"
)

// Display text written when the state machine latches an error
const (
	DisplayError                 = "Error"
	DisplayErrorInvalidInput     = "Error: Invalid input"
	DisplayErrorOverflow         = "Error: Overflow"
	DisplayErrorInvalidOperation = "Error: Invalid operation"
	DisplayErrorDivisionByZero   = "Error: Division by zero"
)

const initialDisplay = "0"

// State is the input/display state machine behind a calculator keypad.
// A State is not safe for concurrent use.
type State struct {
	display              string
	firstOperand         *float64
	operation            Operation
	clearOnNextInput     bool
	lastPressedOperation bool
	err                  *Error
}

// Snapshot is a read-only copy of every field of a State
type Snapshot struct {
	Display              string
	FirstOperand         *float64
	Operation            Operation
	ClearOnNextInput     bool
	LastPressedOperation bool
	Err                  *Error
}

// NewState creates a calculator showing "0" with nothing pending
func NewState() *State {
	return &State{display: initialDisplay}
}

// DisplayValue returns the text currently shown
func (s *State) DisplayValue() string {
	return s.display
}

// InError reports whether the machine is latched in an error
func (s *State) InError() bool {
	return s.err != nil
}

// Err returns the latched error, or nil
func (s *State) Err() *Error {
	return s.err
}

// Snapshot copies the current state
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Display:              s.display,
		Operation:            s.operation,
		ClearOnNextInput:     s.clearOnNextInput,
		LastPressedOperation: s.lastPressedOperation,
	}
	if s.firstOperand != nil {
		v := *s.firstOperand
		snap.FirstOperand = &v
	}
	if s.err != nil {
		e := *s.err
		snap.Err = &e
	}
	return snap
}

// Clear resets everything, including a latched error
func (s *State) Clear() {
	s.display = initialDisplay
	s.firstOperand = nil
	s.operation = OperationNone
	s.clearOnNextInput = false
	s.lastPressedOperation = false
	s.err = nil
}

// ClearEntry blanks the display and the error flag but keeps the pending operation
func (s *State) ClearEntry() {
	s.display = initialDisplay
	s.clearOnNextInput = false
	s.err = nil
}

// InputDigit types a digit. Digits above 9 are ignored.
func (s *State) InputDigit(digit uint8) {
	if s.InError() || digit > 9 {
		return
	}

	d := string(rune('0' + digit))
	switch {
	case s.clearOnNextInput:
		s.display = d
		s.clearOnNextInput = false
	case s.display == "0":
		s.display = d
	default:
		s.display += d
	}

	s.lastPressedOperation = false
}

// InputDecimal types a decimal point; a second point in the same entry is ignored
func (s *State) InputDecimal() {
	if s.InError() {
		return
	}

	if s.clearOnNextInput {
		s.display = "0."
		s.clearOnNextInput = false
	} else if !strings.Contains(s.display, ".") {
		s.display += "."
	}

	s.lastPressedOperation = false
}

// ToggleSign flips a leading minus. "0" is left alone.
func (s *State) ToggleSign() {
	if s.InError() || s.display == "0" {
		return
	}

	if strings.HasPrefix(s.display, "-") {
		s.display = s.display[1:]
	} else {
		s.display = "-" + s.display
	}
}

// Backspace drops the last character, collapsing to "0"
func (s *State) Backspace() {
	if s.InError() {
		return
	}

	if s.clearOnNextInput {
		s.ClearEntry()
		return
	}

	if len(s.display) > 1 {
		s.display = s.display[:len(s.display)-1]
	} else {
		s.display = initialDisplay
	}
}

// SetOperation captures the display as the first operand of op. A pending operation
// is resolved first unless the previous key was also an operator, in which case op
// simply replaces it.
func (s *State) SetOperation(op Operation) {
	if s.InError() {
		return
	}

	if s.firstOperand != nil && !s.lastPressedOperation {
		s.Calculate()
		if s.InError() {
			// error text never parses as an operand
			s.display = DisplayError
			return
		}
	}

	value, err := parseDisplay(s.display)
	if err != nil {
		s.latch(DisplayError, InvalidInput(fmt.Sprintf("cannot parse %q", s.display)))
		return
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		s.latch(DisplayError, Overflow())
		return
	}

	s.firstOperand = &value
	s.operation = op
	s.clearOnNextInput = true
	s.lastPressedOperation = true
}

// Calculate applies the pending operation to the first operand and the display.
// With no first operand it only resets the pending flags.
func (s *State) Calculate() {
	if s.InError() {
		return
	}

	if s.firstOperand != nil {
		s.evaluate(*s.firstOperand)
	}

	s.operation = OperationNone
	s.clearOnNextInput = true
	s.lastPressedOperation = false
}

func (s *State) evaluate(first float64) {
	second, err := parseDisplay(s.display)
	if err != nil {
		s.latch(DisplayErrorInvalidInput, InvalidInput(fmt.Sprintf("cannot parse %q", s.display)))
		return
	}

	result, err := s.operation.Apply(first, second)
	if err != nil {
		if s.operation == OperationDivide {
			s.latch(DisplayErrorDivisionByZero, NewError(ErrorKindDivisionByZero, "Division by zero"))
			return
		}
		s.latch(DisplayError, CalculationError(err.Error()))
		return
	}

	switch {
	case math.IsInf(result, 0):
		s.latch(DisplayErrorOverflow, Overflow())
	case math.IsNaN(result):
		s.latch(DisplayErrorInvalidOperation, CalculationError("Invalid operation"))
	default:
		s.display = FormatNumber(result)
		s.firstOperand = &result
	}
}

// EnterValue loads a number into the display as a finished entry, the way a
// memory-recall key does
func (s *State) EnterValue(v float64) {
	if s.InError() {
		return
	}

	switch {
	case math.IsInf(v, 0):
		s.latch(DisplayErrorOverflow, Overflow())
		return
	case math.IsNaN(v):
		s.latch(DisplayErrorInvalidOperation, CalculationError("Invalid operation"))
		return
	}

	s.display = FormatNumber(v)
	s.clearOnNextInput = true
	s.lastPressedOperation = false
}

func (s *State) latch(display string, err *Error) {
	s.display = display
	s.err = err
}

// Value parses the display as a number. It fails while an error is latched or when
// the display holds an unfinished literal such as "-".
func (s *State) Value() (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	v, err := parseDisplay(s.display)
	if err != nil {
		return 0, InvalidInput(fmt.Sprintf("cannot parse %q", s.display))
	}
	return v, nil
}
