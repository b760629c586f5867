package key

import (
	"fmt"
	"strings"
)

// Code is a virtual key code as delivered by the host. Letters and digits
// use their uppercase ASCII values; other keys use the conventional
// browser/Windows virtual key numbering.
type Code uint16

// Key codes for the keys the host layer can produce.
const (
	CodeNone      Code = 0
	CodeBackspace Code = 8
	CodeTab       Code = 9
	CodeEnter     Code = 13
	CodeShift     Code = 16
	CodeControl   Code = 17
	CodeAlt       Code = 18
	CodePause     Code = 19
	CodeCapsLock  Code = 20
	CodeEscape    Code = 27
	CodeSpace     Code = 32
	CodePageUp    Code = 33
	CodePageDown  Code = 34
	CodeEnd       Code = 35
	CodeHome      Code = 36
	CodeLeft      Code = 37
	CodeUp        Code = 38
	CodeRight     Code = 39
	CodeDown      Code = 40
	CodeInsert    Code = 45
	CodeDelete    Code = 46
	Code0         Code = 48
	Code9         Code = 57
	CodeA         Code = 65
	CodeC         Code = 67
	CodeV         Code = 86
	CodeX         Code = 88
	CodeZ         Code = 90
	CodeMeta      Code = 91
	CodeF1        Code = 112
	CodeF12       Code = 123
)

var codeNames = map[Code]string{
	CodeBackspace: "Backspace",
	CodeTab:       "Tab",
	CodeEnter:     "Enter",
	CodeShift:     "Shift",
	CodeControl:   "Control",
	CodeAlt:       "Alt",
	CodePause:     "Pause",
	CodeCapsLock:  "CapsLock",
	CodeEscape:    "Escape",
	CodeSpace:     "Space",
	CodePageUp:    "PageUp",
	CodePageDown:  "PageDown",
	CodeEnd:       "End",
	CodeHome:      "Home",
	CodeLeft:      "Left",
	CodeUp:        "Up",
	CodeRight:     "Right",
	CodeDown:      "Down",
	CodeInsert:    "Insert",
	CodeDelete:    "Delete",
	CodeMeta:      "Meta",
}

// nameAliases maps lowercase names to codes for parsing.
var nameAliases = map[string]Code{
	"bs":     CodeBackspace,
	"return": CodeEnter,
	"cr":     CodeEnter,
	"esc":    CodeEscape,
	"pgup":   CodePageUp,
	"pgdn":   CodePageDown,
	"ins":    CodeInsert,
	"del":    CodeDelete,
}

// LetterCode returns the key code of an ASCII letter (either case) or digit.
// ok is false for any other rune.
func LetterCode(r rune) (Code, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Code(r - 'a' + 'A'), true
	case r >= 'A' && r <= 'Z':
		return Code(r), true
	case r >= '0' && r <= '9':
		return Code(r), true
	}
	return CodeNone, false
}

// FunctionCode returns the code of function key Fn (1-12).
func FunctionCode(n int) (Code, bool) {
	if n < 1 || n > 12 {
		return CodeNone, false
	}
	return CodeF1 + Code(n-1), true
}

// IsLetter returns true for A-Z.
func (c Code) IsLetter() bool {
	return c >= CodeA && c <= CodeZ
}

// IsDigit returns true for 0-9 on the main row.
func (c Code) IsDigit() bool {
	return c >= Code0 && c <= Code9
}

// IsFunction returns true for F1-F12.
func (c Code) IsFunction() bool {
	return c >= CodeF1 && c <= CodeF12
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch {
	case c == CodeNone:
		return "None"
	case c.IsLetter(), c.IsDigit():
		return string(rune(c))
	case c.IsFunction():
		return fmt.Sprintf("F%d", c-CodeF1+1)
	}
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}

// CodeFromName returns the code for a key name such as "C", "Enter" or
// "F5" (case-insensitive). Returns CodeNone if the name is not recognized.
func CodeFromName(name string) Code {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) == 1 {
		if c, ok := LetterCode(r[0]); ok {
			return c
		}
		if r[0] == ' ' {
			return CodeSpace
		}
		return CodeNone
	}

	lower := strings.ToLower(name)
	if c, ok := nameAliases[lower]; ok {
		return c
	}
	if strings.HasPrefix(lower, "f") {
		var n int
		if _, err := fmt.Sscanf(lower[1:], "%d", &n); err == nil && fmt.Sprint(n) == lower[1:] {
			if c, ok := FunctionCode(n); ok {
				return c
			}
		}
	}
	for c, n := range codeNames {
		if strings.ToLower(n) == lower {
			return c
		}
	}
	return CodeNone
}
