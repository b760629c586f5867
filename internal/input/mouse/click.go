package mouse

import (
	"math"
	"time"

	"github.com/dshills/pdfsketch/internal/geom"
)

// ClickTracker tracks click patterns for double/triple click detection.
// It is not safe for concurrent use.
type ClickTracker struct {
	maxTime     time.Duration
	maxDistance float64

	lastPos   geom.Point
	lastTime  time.Time
	lastCount int
}

// NewClickTracker creates a tracker. Presses count as part of a sequence if
// they land within maxTime of the previous press and within maxDistance
// (Manhattan) of it.
func NewClickTracker(maxTime time.Duration, maxDistance float64) *ClickTracker {
	return &ClickTracker{
		maxTime:     maxTime,
		maxDistance: maxDistance,
	}
}

// Record records a press and returns the click count (1, 2, or 3).
// Click count wraps back to 1 after 3 (quad-click = single click).
// If timestamp is zero, time.Now() is used.
func (t *ClickTracker) Record(pos geom.Point, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.isPartOfSequence(pos, timestamp) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastPos = pos
	t.lastTime = timestamp

	return t.lastCount
}

// Count returns the last recorded click count, 0 before the first press.
func (t *ClickTracker) Count() int {
	return t.lastCount
}

// Reset clears the tracking state.
func (t *ClickTracker) Reset() {
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastPos = geom.Point{}
}

func (t *ClickTracker) isPartOfSequence(pos geom.Point, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}

	// Clock skew: a negative interval starts a new sequence.
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}

	dist := math.Abs(pos.X-t.lastPos.X) + math.Abs(pos.Y-t.lastPos.Y)
	return dist <= t.maxDistance
}
