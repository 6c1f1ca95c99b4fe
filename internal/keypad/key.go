package keypad

import (
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// KeyKind represents the kind of a keypad key
type KeyKind string

const (
	KeyKindDigit          KeyKind = "digit"
	KeyKindDecimal        KeyKind = "decimal"
	KeyKindOperation      KeyKind = "operation"
	KeyKindEquals         KeyKind = "equals"
	KeyKindClear          KeyKind = "clear"
	KeyKindClearEntry     KeyKind = "clear_entry"
	KeyKindBackspace      KeyKind = "backspace"
	KeyKindToggleSign     KeyKind = "toggle_sign"
	KeyKindMemoryStore    KeyKind = "memory_store"
	KeyKindMemoryRecall   KeyKind = "memory_recall"
	KeyKindMemoryClear    KeyKind = "memory_clear"
	KeyKindMemoryAdd      KeyKind = "memory_add"
	KeyKindMemorySubtract KeyKind = "memory_subtract"
)

// Key is a single keypad press
type Key struct {
	Kind      KeyKind
	Digit     uint8
	Operation calculator.Operation
}

func (k Key) String() string {
	switch k.Kind {
	case KeyKindDigit:
		return fmt.Sprintf("%d", k.Digit)
	case KeyKindOperation:
		return k.Operation.String()
	default:
		return string(k.Kind)
	}
}

var namedKeys = map[string]KeyKind{
	".":         KeyKindDecimal,
	"=":         KeyKindEquals,
	"enter":     KeyKindEquals,
	"c":         KeyKindClear,
	"ac":        KeyKindClear,
	"esc":       KeyKindClear,
	"escape":    KeyKindClear,
	"ce":        KeyKindClearEntry,
	"bs":        KeyKindBackspace,
	"backspace": KeyKindBackspace,
	"⌫":         KeyKindBackspace,
	"±":         KeyKindToggleSign,
	"+/-":       KeyKindToggleSign,
	"neg":       KeyKindToggleSign,
	"ms":        KeyKindMemoryStore,
	"mr":        KeyKindMemoryRecall,
	"mc":        KeyKindMemoryClear,
	"m+":        KeyKindMemoryAdd,
	"m-":        KeyKindMemorySubtract,
}

// ParseKey parses a single key token such as "7", "+", "=", "ce" or "m+"
func ParseKey(token string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(token))

	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return Key{Kind: KeyKindDigit, Digit: name[0] - '0'}, nil
	}

	if kind, ok := namedKeys[name]; ok {
		return Key{Kind: kind}, nil
	}

	if op, err := calculator.ParseOperation(name); err == nil && op != calculator.OperationNone {
		return Key{Kind: KeyKindOperation, Operation: op}, nil
	}

	return Key{}, calculator.InvalidInput(fmt.Sprintf("unknown key %q", token))
}

// ParseSequence parses whitespace-separated key tokens. A token that is not a key
// name is read one character at a time, so "12+3=" is five keys.
func ParseSequence(sequence string) ([]Key, error) {
	var keys []Key

	for _, token := range strings.Fields(sequence) {
		if key, err := ParseKey(token); err == nil {
			keys = append(keys, key)
			continue
		}

		for _, r := range token {
			key, err := ParseKey(string(r))
			if err != nil {
				return nil, calculator.InvalidInput(fmt.Sprintf("unknown key %q in %q", string(r), token))
			}
			keys = append(keys, key)
		}
	}

	return keys, nil
}
