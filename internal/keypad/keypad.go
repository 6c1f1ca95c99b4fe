package keypad

import (
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

// Keypad routes key presses to a calculator state and the shared memory register
type Keypad struct {
	state  *calculator.State
	memory types.Memory
}

// New creates a keypad over a calculator state and memory register
func New(state *calculator.State, memory types.Memory) *Keypad {
	return &Keypad{
		state:  state,
		memory: memory,
	}
}

// State returns the calculator state behind the keypad
func (k *Keypad) State() *calculator.State {
	return k.state
}

// Press applies a single key
func (k *Keypad) Press(key Key) {
	slog.Debug("Pressing key", "key", key.String(), "display", k.state.DisplayValue())

	switch key.Kind {
	case KeyKindDigit:
		k.state.InputDigit(key.Digit)
	case KeyKindDecimal:
		k.state.InputDecimal()
	case KeyKindOperation:
		k.state.SetOperation(key.Operation)
	case KeyKindEquals:
		k.state.Calculate()
	case KeyKindClear:
		k.state.Clear()
	case KeyKindClearEntry:
		k.state.ClearEntry()
	case KeyKindBackspace:
		k.state.Backspace()
	case KeyKindToggleSign:
		k.state.ToggleSign()
	case KeyKindMemoryClear:
		k.memory.Clear()
	case KeyKindMemoryRecall:
		k.state.EnterValue(k.memory.Recall())
	case KeyKindMemoryStore, KeyKindMemoryAdd, KeyKindMemorySubtract:
		k.pressMemoryKey(key.Kind)
	default:
		slog.Warn("Ignoring unknown key", "kind", string(key.Kind))
	}
}

// pressMemoryKey feeds the displayed number into the register. A display that is
// not a number (latched error, lone "-") leaves memory untouched.
func (k *Keypad) pressMemoryKey(kind KeyKind) {
	value, err := k.state.Value()
	if err != nil {
		slog.Debug("Skipping memory key", "kind", string(kind), "error", err)
		return
	}

	switch kind {
	case KeyKindMemoryStore:
		k.memory.Store(value)
	case KeyKindMemoryAdd:
		k.memory.Add(value)
	case KeyKindMemorySubtract:
		k.memory.Subtract(value)
	}
}

// PressAll applies keys in order
func (k *Keypad) PressAll(keys []Key) {
	for _, key := range keys {
		k.Press(key)
	}
}

// Type parses a key sequence and applies it. Nothing is pressed if any token is invalid.
func (k *Keypad) Type(sequence string) ([]Key, error) {
	keys, err := ParseSequence(sequence)
	if err != nil {
		return nil, err
	}
	k.PressAll(keys)
	return keys, nil
}
