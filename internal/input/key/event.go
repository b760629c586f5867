package key

import (
	"fmt"
	"time"

	"github.com/dshills/pdfsketch/internal/input"
)

// Type distinguishes the keyboard event variants.
type Type uint8

const (
	// TypeDown is a key press.
	TypeDown Type = iota
	// TypeUp is a key release.
	TypeUp
	// TypeText carries decoded character input.
	TypeText
)

// String returns a string representation of the type.
func (t Type) String() string {
	switch t {
	case TypeDown:
		return "down"
	case TypeUp:
		return "up"
	case TypeText:
		return "text"
	default:
		return "unknown"
	}
}

// Event is a normalized keyboard event.
type Event struct {
	// Type is the event variant.
	Type Type

	// Code is the virtual key code for down and up events.
	Code Code

	// Text is the decoded character string for text events.
	Text string

	// Modifiers contains the active modifier keys, already masked.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewDown creates a key-down event. mods is masked to ModMask.
func NewDown(code Code, mods Modifier) Event {
	return Event{
		Type:      TypeDown,
		Code:      code,
		Modifiers: mods.Masked(),
		Timestamp: time.Now(),
	}
}

// NewUp creates a key-up event. mods is masked to ModMask.
func NewUp(code Code, mods Modifier) Event {
	return Event{
		Type:      TypeUp,
		Code:      code,
		Modifiers: mods.Masked(),
		Timestamp: time.Now(),
	}
}

// NewText creates a text-input event. mods is masked to ModMask.
func NewText(text string, mods Modifier) Event {
	return Event{
		Type:      TypeText,
		Text:      text,
		Modifiers: mods.Masked(),
		Timestamp: time.Now(),
	}
}

// Kind implements input.Event.
func (e Event) Kind() input.Kind {
	switch e.Type {
	case TypeDown:
		return input.KindKeyDown
	case TypeUp:
		return input.KindKeyUp
	case TypeText:
		return input.KindText
	default:
		return input.KindNone
	}
}

// IsModified returns true if any modifier is pressed.
func (e Event) IsModified() bool {
	return e.Modifiers != ModNone
}

// String returns a readable representation like "down Ctrl+C" or
// "text \"a\"".
func (e Event) String() string {
	if e.Type == TypeText {
		return fmt.Sprintf("text %q", e.Text)
	}
	if e.Modifiers.IsEmpty() {
		return fmt.Sprintf("%s %s", e.Type, e.Code)
	}
	return fmt.Sprintf("%s %s+%s", e.Type, e.Modifiers, e.Code)
}
