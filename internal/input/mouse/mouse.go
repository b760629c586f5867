package mouse

import (
	"fmt"
	"time"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/input"
	"github.com/dshills/pdfsketch/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Type is the pointer event variant.
type Type uint8

const (
	// TypeDown indicates a button press.
	TypeDown Type = iota
	// TypeUp indicates a button release.
	TypeUp
	// TypeDrag indicates movement with the primary button held.
	TypeDrag
	// TypeMove indicates movement with no button held.
	TypeMove
)

// String returns a string representation of the type.
func (t Type) String() string {
	switch t {
	case TypeDown:
		return "down"
	case TypeUp:
		return "up"
	case TypeDrag:
		return "drag"
	case TypeMove:
		return "move"
	default:
		return "unknown"
	}
}

// Event represents a normalized pointer event.
type Event struct {
	// Type is the event variant.
	Type Type

	// Position is in logical coordinates of the view the event is addressed to.
	Position geom.Point

	// Button is the mouse button involved.
	Button Button

	// ClickCount is 1 for a single click, 2 for a double click and so on.
	ClickCount int

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a pointer event with the current timestamp.
func NewEvent(t Type, pos geom.Point, button Button, clicks int, mods key.Modifier) Event {
	return Event{
		Type:       t,
		Position:   pos,
		Button:     button,
		ClickCount: clicks,
		Modifiers:  mods,
		Timestamp:  time.Now(),
	}
}

// Kind implements input.Event.
func (e Event) Kind() input.Kind {
	switch e.Type {
	case TypeDown:
		return input.KindPointerDown
	case TypeUp:
		return input.KindPointerUp
	case TypeDrag:
		return input.KindPointerDrag
	case TypeMove:
		return input.KindPointerMove
	default:
		return input.KindNone
	}
}

// At returns a copy of e positioned at p.
func (e Event) At(p geom.Point) Event {
	e.Position = p
	return e
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s at %s x%d", e.Type, e.Button, e.Position, e.ClickCount)
}
