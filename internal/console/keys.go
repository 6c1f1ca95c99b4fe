package console

import (
	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/keypad"
)

// Raw terminal bytes with special meaning
const (
	byteCtrlC     = 0x03
	byteCtrlD     = 0x04
	byteBackspace = 0x08
	byteEscape    = 0x1b
	byteDelete    = 0x7f
)

// HelpLine describes the single-keystroke bindings
const HelpLine = "0-9 . + - * / =  c:clear e:clear-entry n:± ⌫:back  s:MS r:MR z:MC p:M+ o:M-  q:quit"

var byteKeys = map[byte]keypad.Key{
	'.':           {Kind: keypad.KeyKindDecimal},
	'+':           {Kind: keypad.KeyKindOperation, Operation: calculator.OperationAdd},
	'-':           {Kind: keypad.KeyKindOperation, Operation: calculator.OperationSubtract},
	'*':           {Kind: keypad.KeyKindOperation, Operation: calculator.OperationMultiply},
	'x':           {Kind: keypad.KeyKindOperation, Operation: calculator.OperationMultiply},
	'/':           {Kind: keypad.KeyKindOperation, Operation: calculator.OperationDivide},
	'=':           {Kind: keypad.KeyKindEquals},
	'\r':          {Kind: keypad.KeyKindEquals},
	'\n':          {Kind: keypad.KeyKindEquals},
	'c':           {Kind: keypad.KeyKindClear},
	byteEscape:    {Kind: keypad.KeyKindClear},
	'e':           {Kind: keypad.KeyKindClearEntry},
	'n':           {Kind: keypad.KeyKindToggleSign},
	byteBackspace: {Kind: keypad.KeyKindBackspace},
	byteDelete:    {Kind: keypad.KeyKindBackspace},
	's':           {Kind: keypad.KeyKindMemoryStore},
	'r':           {Kind: keypad.KeyKindMemoryRecall},
	'z':           {Kind: keypad.KeyKindMemoryClear},
	'p':           {Kind: keypad.KeyKindMemoryAdd},
	'o':           {Kind: keypad.KeyKindMemorySubtract},
}

// KeyForByte maps a raw keystroke to a keypad key
func KeyForByte(b byte) (keypad.Key, bool) {
	if b >= '0' && b <= '9' {
		return keypad.Key{Kind: keypad.KeyKindDigit, Digit: b - '0'}, true
	}
	key, ok := byteKeys[b]
	return key, ok
}

// isQuit reports whether a raw keystroke ends the session
func isQuit(b byte) bool {
	return b == 'q' || b == byteCtrlC || b == byteCtrlD
}
