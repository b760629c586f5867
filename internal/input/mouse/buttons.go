package mouse

import "github.com/dshills/pdfsketch/internal/geom"

// Transition is the change derived from two successive button snapshots.
type Transition uint8

const (
	// TransitionMove means no button changed state.
	TransitionMove Transition = iota
	// TransitionPress means a button went down.
	TransitionPress
	// TransitionRelease means the held button came up.
	TransitionRelease
)

// ButtonTracker derives press/release transitions from hosts that only
// report which button is currently held. Only one button is tracked at a
// time; a second button pressed while one is held is ignored until release.
type ButtonTracker struct {
	held     Button
	pressPos geom.Point
	lastPos  geom.Point
}

// NewButtonTracker creates a tracker with no button held.
func NewButtonTracker() *ButtonTracker {
	return &ButtonTracker{}
}

// Update feeds the current snapshot and returns the transition plus the
// button it applies to. For TransitionMove the returned button is the held
// one (ButtonNone when hovering).
func (t *ButtonTracker) Update(pos geom.Point, current Button) (Transition, Button) {
	t.lastPos = pos

	switch {
	case t.held == ButtonNone && current != ButtonNone:
		t.held = current
		t.pressPos = pos
		return TransitionPress, current
	case t.held != ButtonNone && current == ButtonNone:
		released := t.held
		t.held = ButtonNone
		return TransitionRelease, released
	default:
		return TransitionMove, t.held
	}
}

// Held returns the button currently held.
func (t *ButtonTracker) Held() Button {
	return t.held
}

// PressPosition returns where the held button went down.
func (t *ButtonTracker) PressPosition() geom.Point {
	return t.pressPos
}

// Delta returns the distance moved since the press.
func (t *ButtonTracker) Delta() geom.Point {
	if t.held == ButtonNone {
		return geom.Point{}
	}
	return t.lastPos.Sub(t.pressPos)
}

// Reset forgets the held button.
func (t *ButtonTracker) Reset() {
	*t = ButtonTracker{}
}
