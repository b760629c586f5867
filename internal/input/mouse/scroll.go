package mouse

import (
	"fmt"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/input"
	"github.com/dshills/pdfsketch/internal/input/key"
)

// ScrollEvent is a wheel or trackpad scroll. Delta is in logical units;
// positive Y scrolls content toward the bottom of the document.
type ScrollEvent struct {
	Delta     geom.Point
	Modifiers key.Modifier
}

// NewScrollEvent creates a scroll event from a device delta and the
// device-to-logical scale.
func NewScrollEvent(dx, dy, scale float64, mods key.Modifier) ScrollEvent {
	return ScrollEvent{
		Delta:     geom.Pt(dx*scale, dy*scale),
		Modifiers: mods,
	}
}

// Kind implements input.Event.
func (e ScrollEvent) Kind() input.Kind {
	return input.KindScroll
}

// IsZero returns true if the event scrolls nowhere.
func (e ScrollEvent) IsZero() bool {
	return e.Delta.X == 0 && e.Delta.Y == 0
}

func (e ScrollEvent) String() string {
	return fmt.Sprintf("scroll %s", e.Delta)
}
