package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty shortcut specification")
	ErrInvalidSpec = errors.New("invalid shortcut specification")
)

// ParseShortcut parses a specification such as "Ctrl+C", "cmd+v" or
// "Ctrl+Shift+F5". The last "+"-separated part names the key; every other
// part must be a modifier name.
func ParseShortcut(spec string) (Shortcut, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Shortcut{}, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Shortcut{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, strings.TrimSpace(p))
		}
		mods = mods.With(mod)
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	if keyPart == "" {
		return Shortcut{}, fmt.Errorf("%w: missing key in %q", ErrInvalidSpec, spec)
	}
	code := CodeFromName(keyPart)
	if code == CodeNone {
		return Shortcut{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}

	return Shortcut{Code: code, Modifiers: mods}, nil
}

// MustParseShortcut parses a specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParseShortcut(spec string) Shortcut {
	s, err := ParseShortcut(spec)
	if err != nil {
		panic("invalid shortcut specification: " + spec + ": " + err.Error())
	}
	return s
}
