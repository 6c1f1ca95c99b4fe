package calculator

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	state := NewState()

	snap := state.Snapshot()
	assert.Equal(t, "0", snap.Display)
	assert.Nil(t, snap.FirstOperand)
	assert.Equal(t, OperationNone, snap.Operation)
	assert.False(t, snap.ClearOnNextInput)
	assert.False(t, snap.LastPressedOperation)
	assert.Nil(t, snap.Err)
	assert.False(t, state.InError())
}

func TestClear(t *testing.T) {
	state := NewState()
	state.InputDigit(5)
	state.SetOperation(OperationAdd)
	state.InputDigit(3)

	state.Clear()

	assert.Equal(t, Snapshot{Display: "0"}, state.Snapshot())
}

func TestClearEntry(t *testing.T) {
	state := NewState()
	state.InputDigit(5)
	state.SetOperation(OperationAdd)
	state.InputDigit(3)

	state.ClearEntry()

	snap := state.Snapshot()
	assert.Equal(t, "0", snap.Display)
	assert.Equal(t, OperationAdd, snap.Operation, "pending operation survives clear entry")
	require.NotNil(t, snap.FirstOperand)
	assert.Equal(t, 5.0, *snap.FirstOperand)

	state.InputDigit(4)
	state.Calculate()
	assert.Equal(t, "9", state.DisplayValue())
}

func TestInputDigit(t *testing.T) {
	tests := []struct {
		name     string
		digits   []uint8
		expected string
	}{
		{name: "Single digit", digits: []uint8{5}, expected: "5"},
		{name: "Digits append", digits: []uint8{5, 3}, expected: "53"},
		{name: "Inner zeros kept", digits: []uint8{5, 3, 0, 1}, expected: "5301"},
		{name: "Leading zero replaced", digits: []uint8{0, 7}, expected: "7"},
		{name: "Repeated zero stays zero", digits: []uint8{0, 0, 0}, expected: "0"},
		{name: "Out of range ignored", digits: []uint8{4, 10, 255, 2}, expected: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			for _, d := range tt.digits {
				state.InputDigit(d)
			}
			assert.Equal(t, tt.expected, state.DisplayValue())
		})
	}
}

func TestInputDigitAfterOperation(t *testing.T) {
	state := NewState()
	state.InputDigit(5)
	state.SetOperation(OperationAdd)
	assert.Equal(t, "5", state.DisplayValue())

	state.InputDigit(3)
	assert.Equal(t, "3", state.DisplayValue(), "operand entry starts fresh")
	assert.False(t, state.Snapshot().LastPressedOperation)
}

func TestInputDecimal(t *testing.T) {
	state := NewState()

	state.InputDecimal()
	assert.Equal(t, "0.", state.DisplayValue())

	state.InputDecimal()
	assert.Equal(t, "0.", state.DisplayValue(), "second point is ignored")

	state.InputDigit(5)
	state.InputDigit(2)
	state.InputDigit(3)
	assert.Equal(t, "0.523", state.DisplayValue())

	state.InputDecimal()
	assert.Equal(t, "0.523", state.DisplayValue())
}

func TestInputDecimalAfterOperation(t *testing.T) {
	state := NewState()
	state.InputDigit(1)
	state.InputDecimal()
	state.InputDigit(5)
	state.SetOperation(OperationMultiply)

	state.InputDecimal()
	assert.Equal(t, "0.", state.DisplayValue())
	state.InputDigit(5)
	state.Calculate()
	assert.Equal(t, "0.75", state.DisplayValue())
}

func TestToggleSign(t *testing.T) {
	state := NewState()

	state.ToggleSign()
	assert.Equal(t, "0", state.DisplayValue(), "zero has no sign")

	state.InputDigit(5)
	state.ToggleSign()
	assert.Equal(t, "-5", state.DisplayValue())
	state.ToggleSign()
	assert.Equal(t, "5", state.DisplayValue())

	state.Clear()
	state.InputDigit(1)
	state.InputDecimal()
	state.InputDigit(5)
	state.ToggleSign()
	assert.Equal(t, "-1.5", state.DisplayValue())
}

func TestBackspace(t *testing.T) {
	state := NewState()
	state.InputDigit(1)
	state.InputDigit(2)
	state.InputDigit(3)

	state.Backspace()
	assert.Equal(t, "12", state.DisplayValue())
	state.Backspace()
	assert.Equal(t, "1", state.DisplayValue())
	state.Backspace()
	assert.Equal(t, "0", state.DisplayValue())
	state.Backspace()
	assert.Equal(t, "0", state.DisplayValue(), "never collapses to empty")
}

func TestBackspaceAfterOperationClearsEntry(t *testing.T) {
	state := NewState()
	state.InputDigit(4)
	state.InputDigit(2)
	state.SetOperation(OperationSubtract)

	state.Backspace()

	snap := state.Snapshot()
	assert.Equal(t, "0", snap.Display)
	assert.False(t, snap.ClearOnNextInput)
	assert.Equal(t, OperationSubtract, snap.Operation)
}

func TestBackspaceLeavingSignOnlyLatchesOnOperation(t *testing.T) {
	state := NewState()
	state.InputDigit(7)
	state.ToggleSign()
	state.Backspace()
	assert.Equal(t, "-", state.DisplayValue())

	state.SetOperation(OperationAdd)
	assert.True(t, state.InError())
	assert.Equal(t, DisplayError, state.DisplayValue())
	assert.Equal(t, ErrorKindInvalidInput, state.Err().Kind)
}

func TestSetOperation(t *testing.T) {
	state := NewState()
	state.InputDigit(5)
	state.SetOperation(OperationAdd)

	snap := state.Snapshot()
	require.NotNil(t, snap.FirstOperand)
	assert.Equal(t, 5.0, *snap.FirstOperand)
	assert.Equal(t, OperationAdd, snap.Operation)
	assert.True(t, snap.ClearOnNextInput)
	assert.True(t, snap.LastPressedOperation)
}

func TestOperatorSubstitution(t *testing.T) {
	state := NewState()
	state.InputDigit(6)
	state.SetOperation(OperationAdd)
	state.SetOperation(OperationMultiply)

	snap := state.Snapshot()
	assert.Equal(t, "6", snap.Display, "no intermediate calculation")
	assert.Equal(t, OperationMultiply, snap.Operation)

	state.InputDigit(7)
	state.Calculate()
	assert.Equal(t, "42", state.DisplayValue())
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		first    []uint8
		op       Operation
		second   []uint8
		expected string
	}{
		{name: "Add", first: []uint8{5}, op: OperationAdd, second: []uint8{3}, expected: "8"},
		{name: "Subtract", first: []uint8{5}, op: OperationSubtract, second: []uint8{8}, expected: "-3"},
		{name: "Multiply", first: []uint8{1, 2}, op: OperationMultiply, second: []uint8{1, 2}, expected: "144"},
		{name: "Divide integral", first: []uint8{8}, op: OperationDivide, second: []uint8{2}, expected: "4"},
		{name: "Divide fractional", first: []uint8{1}, op: OperationDivide, second: []uint8{4}, expected: "0.25"},
		{name: "Divide repeating", first: []uint8{1}, op: OperationDivide, second: []uint8{3}, expected: "0.3333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			for _, d := range tt.first {
				state.InputDigit(d)
			}
			state.SetOperation(tt.op)
			for _, d := range tt.second {
				state.InputDigit(d)
			}
			state.Calculate()

			snap := state.Snapshot()
			assert.Equal(t, tt.expected, snap.Display)
			assert.Equal(t, OperationNone, snap.Operation)
			assert.True(t, snap.ClearOnNextInput)
			assert.False(t, snap.LastPressedOperation)
			require.NotNil(t, snap.FirstOperand, "result becomes the next first operand")
		})
	}
}

func TestCalculateWithNothingPending(t *testing.T) {
	state := NewState()
	state.InputDigit(9)

	state.Calculate()

	snap := state.Snapshot()
	assert.Equal(t, "9", snap.Display)
	assert.Nil(t, snap.FirstOperand)
	assert.False(t, state.InError())
	assert.True(t, snap.ClearOnNextInput)
}

func TestChainedCalculation(t *testing.T) {
	state := NewState()
	state.InputDigit(5)
	state.SetOperation(OperationAdd)
	state.InputDigit(3)
	state.SetOperation(OperationMultiply)
	assert.Equal(t, "8", state.DisplayValue(), "pending addition resolves first")

	state.InputDigit(2)
	state.Calculate()
	assert.Equal(t, "16", state.DisplayValue())
}

func TestRepeatedEquals(t *testing.T) {
	state := NewState()
	state.InputDigit(2)
	state.SetOperation(OperationAdd)
	state.InputDigit(3)
	state.Calculate()
	assert.Equal(t, "5", state.DisplayValue())

	// The operation is consumed, so equals again passes the display through
	state.Calculate()
	assert.Equal(t, "5", state.DisplayValue())
	assert.False(t, state.InError())
}

func TestDivisionByZeroLatchesError(t *testing.T) {
	state := NewState()
	state.InputDigit(5)
	state.SetOperation(OperationDivide)
	state.InputDigit(0)
	state.Calculate()

	assert.True(t, state.InError())
	assert.True(t, strings.Contains(state.DisplayValue(), "Error"))
	assert.Equal(t, DisplayErrorDivisionByZero, state.DisplayValue())
	require.NotNil(t, state.Err())
	assert.Equal(t, ErrorKindDivisionByZero, state.Err().Kind)
	assert.Equal(t, "Division by zero", state.Err().Message)

	state.InputDigit(7)
	state.InputDecimal()
	state.ToggleSign()
	state.Backspace()
	state.SetOperation(OperationAdd)
	state.Calculate()
	state.EnterValue(3)
	assert.Equal(t, DisplayErrorDivisionByZero, state.DisplayValue(), "edits are ignored while latched")

	state.Clear()
	state.InputDigit(7)
	state.SetOperation(OperationAdd)
	state.InputDigit(3)
	state.Calculate()
	assert.Equal(t, "10", state.DisplayValue())
	assert.False(t, state.InError())
}

func TestDivisionByZeroDuringChaining(t *testing.T) {
	state := NewState()
	state.InputDigit(5)
	state.SetOperation(OperationDivide)
	state.InputDigit(0)
	state.SetOperation(OperationAdd)

	assert.True(t, state.InError())
	assert.Equal(t, DisplayError, state.DisplayValue())
	require.NotNil(t, state.Err())
	assert.Equal(t, ErrorKindDivisionByZero, state.Err().Kind, "the first failure stays classified")
}

func TestOverflowDuringChaining(t *testing.T) {
	state := NewState()
	for _, c := range "1" + strings.Repeat("0", 308) {
		state.InputDigit(uint8(c - '0'))
	}
	state.SetOperation(OperationMultiply)
	state.InputDigit(9)
	state.SetOperation(OperationSubtract)

	assert.Equal(t, DisplayError, state.DisplayValue())
	require.NotNil(t, state.Err())
	assert.Equal(t, ErrorKindOverflow, state.Err().Kind)
}

func TestClearEntryRecoversFromError(t *testing.T) {
	state := NewState()
	state.InputDigit(5)
	state.SetOperation(OperationDivide)
	state.InputDigit(0)
	state.Calculate()
	require.True(t, state.InError())

	state.ClearEntry()

	assert.False(t, state.InError())
	assert.Equal(t, "0", state.DisplayValue())
	state.InputDigit(4)
	assert.Equal(t, "4", state.DisplayValue())
}

func TestOverflowLatchesError(t *testing.T) {
	state := NewState()
	state.EnterValue(math.MaxFloat64)
	state.SetOperation(OperationMultiply)
	state.InputDigit(2)
	state.Calculate()

	assert.True(t, state.InError())
	assert.Equal(t, DisplayErrorOverflow, state.DisplayValue())
	assert.Equal(t, ErrorKindOverflow, state.Err().Kind)
}

func TestHugeLiteralOverflows(t *testing.T) {
	state := NewState()
	state.InputDigit(1)
	state.SetOperation(OperationAdd)
	state.InputDigit(1)
	for i := 0; i < 400; i++ {
		state.InputDigit(0)
	}
	state.Calculate()

	assert.Equal(t, DisplayErrorOverflow, state.DisplayValue())
}

func TestEnterValue(t *testing.T) {
	state := NewState()
	state.EnterValue(12.5)

	snap := state.Snapshot()
	assert.Equal(t, "12.5", snap.Display)
	assert.True(t, snap.ClearOnNextInput)

	state.InputDigit(3)
	assert.Equal(t, "3", state.DisplayValue(), "typing replaces a recalled value")

	state.SetOperation(OperationAdd)
	state.EnterValue(-2)
	state.Calculate()
	assert.Equal(t, "1", state.DisplayValue())
}

func TestEnterValueNotFinite(t *testing.T) {
	state := NewState()
	state.EnterValue(math.NaN())
	assert.Equal(t, DisplayErrorInvalidOperation, state.DisplayValue())
	assert.Equal(t, ErrorKindCalculationError, state.Err().Kind)

	state.Clear()
	state.EnterValue(math.Inf(-1))
	assert.Equal(t, DisplayErrorOverflow, state.DisplayValue())
}

func TestInstancesAreIsolated(t *testing.T) {
	a := NewState()
	b := NewState()

	a.InputDigit(1)
	b.InputDigit(2)
	a.SetOperation(OperationAdd)

	assert.Equal(t, "1", a.DisplayValue())
	assert.Equal(t, "2", b.DisplayValue())
	assert.Nil(t, b.Snapshot().FirstOperand)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 16, expected: "16"},
		{input: -3, expected: "-3"},
		{input: math.Copysign(0, -1), expected: "0"},
		{input: 0.5, expected: "0.5"},
		{input: 0.1 + 0.2, expected: "0.30000000000000004"},
		{input: 1e20, expected: "100000000000000000000"},
		{input: 1e-7, expected: "0.0000001"},
		{input: math.Inf(1), expected: "Infinity"},
		{input: math.Inf(-1), expected: "-Infinity"},
		{input: math.NaN(), expected: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.input))
		})
	}
}

func TestValue(t *testing.T) {
	state := NewState()
	state.InputDigit(2)
	state.InputDecimal()
	v, err := state.Value()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	state.Clear()
	state.InputDigit(3)
	state.ToggleSign()
	state.Backspace()
	_, err = state.Value()
	assert.ErrorIs(t, err, &Error{Kind: ErrorKindInvalidInput})

	state.Clear()
	state.SetOperation(OperationDivide)
	state.Calculate()
	_, err = state.Value()
	assert.ErrorIs(t, err, &Error{Kind: ErrorKindDivisionByZero})
}
