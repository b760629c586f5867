// Package host defines the raw input events delivered by the embedding host
// before normalization. Positions and wheel deltas are in device pixels
// (or cells, for terminal hosts); modifier masks carry every bit the host
// reports, including button and lock state.
package host

import (
	"fmt"

	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/input/mouse"
)

// Type identifies a raw host event.
type Type uint8

const (
	// Undefined is never dispatched.
	Undefined Type = iota
	// MouseDown is a button press.
	MouseDown
	// MouseUp is a button release.
	MouseUp
	// MouseMove is pointer motion, with or without a button held.
	MouseMove
	// Wheel is a scroll wheel or trackpad scroll.
	Wheel
	// KeyDown is a key press.
	KeyDown
	// KeyUp is a key release.
	KeyUp
	// Char is decoded character input.
	Char
	// Clipboard carries clipboard contents requested by a paste.
	Clipboard
	// Focus reports the surface gaining or losing focus.
	Focus
)

// String returns a string representation of the type.
func (t Type) String() string {
	switch t {
	case MouseDown:
		return "mousedown"
	case MouseUp:
		return "mouseup"
	case MouseMove:
		return "mousemove"
	case Wheel:
		return "wheel"
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case Char:
		return "char"
	case Clipboard:
		return "clipboard"
	case Focus:
		return "focus"
	default:
		return "undefined"
	}
}

// Modifiers is the host's modifier bit set.
type Modifiers uint32

// Host modifier bits.
const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
	ModIsKeypad
	ModIsAutoRepeat
	ModLeftButtonDown
	ModMiddleButtonDown
	ModRightButtonDown
	ModCapsLock
	ModNumLock
	ModIsLeft
	ModIsRight
)

// KeyboardMask covers the bits that survive into normalized events.
const KeyboardMask = ModShift | ModControl | ModAlt | ModMeta

// Has returns true if m contains every bit of mod.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// Keyboard masks m to the keyboard modifiers and converts it to the
// normalized representation.
func (m Modifiers) Keyboard() key.Modifier {
	var out key.Modifier
	if m&ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if m&ModControl != 0 {
		out = out.With(key.ModCtrl)
	}
	if m&ModAlt != 0 {
		out = out.With(key.ModAlt)
	}
	if m&ModMeta != 0 {
		out = out.With(key.ModMeta)
	}
	return out
}

// FromKeyboard converts normalized modifiers back to host bits.
func FromKeyboard(m key.Modifier) Modifiers {
	var out Modifiers
	if m.HasShift() {
		out |= ModShift
	}
	if m.HasCtrl() {
		out |= ModControl
	}
	if m.HasAlt() {
		out |= ModAlt
	}
	if m.HasMeta() {
		out |= ModMeta
	}
	return out
}

// Event is a raw host input event. Only the fields relevant to Type are set.
type Event struct {
	Type      Type
	Modifiers Modifiers

	// Pointer fields, device coordinates.
	X, Y       int
	Button     mouse.Button
	ClickCount int

	// Wheel fields, device units.
	DeltaX, DeltaY float64

	// Keyboard fields.
	KeyCode key.Code
	Text    string

	// Focus field.
	Focused bool
}

func (e Event) String() string {
	switch e.Type {
	case MouseDown, MouseUp, MouseMove:
		return fmt.Sprintf("%s %s (%d,%d) x%d mods=%#x", e.Type, e.Button, e.X, e.Y, e.ClickCount, uint32(e.Modifiers))
	case Wheel:
		return fmt.Sprintf("%s (%g,%g)", e.Type, e.DeltaX, e.DeltaY)
	case KeyDown, KeyUp:
		return fmt.Sprintf("%s %s mods=%#x", e.Type, e.KeyCode, uint32(e.Modifiers))
	case Char, Clipboard:
		return fmt.Sprintf("%s %q", e.Type, e.Text)
	default:
		return e.Type.String()
	}
}
