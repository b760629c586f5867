package root

import (
	"time"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/view"
)

// State is the paint pipeline state. At most one paint is ever in flight.
type State uint8

const (
	// StateIdle means no paint is queued or in flight.
	StateIdle State = iota
	// StateScheduled means a paint callback is queued on the poster.
	StateScheduled
	// StatePainting means the view tree is drawing into a surface.
	StatePainting
	// StateFlushing means a presented surface is waiting for its flush.
	StateFlushing
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheduled:
		return "scheduled"
	case StatePainting:
		return "painting"
	case StateFlushing:
		return "flushing"
	default:
		return "unknown"
	}
}

// PaintState returns the current paint pipeline state.
func (c *Coordinator) PaintState() State {
	return c.state
}

// RedrawOwed reports whether a redraw has been requested since the last
// paint started. Requests for empty or off-surface areas still count.
func (c *Coordinator) RedrawOwed() bool {
	return c.owed
}

// SetNeedsDisplayInRect requests a repaint of r, in root coordinates.
// Requests made while a paint is queued, running or flushing are merged
// into the next paint.
func (c *Coordinator) SetNeedsDisplayInRect(r geom.Rect) {
	if !c.request(r) {
		return
	}
	c.tracker.MarkRect(r)
	c.enqueue()
}

// SetNeedsDisplay requests a repaint of the whole root.
func (c *Coordinator) SetNeedsDisplay() {
	if !c.request(c.root.Bounds()) {
		return
	}
	c.tracker.MarkFullRedraw()
	c.enqueue()
}

// request counts a redraw request and records that a paint is owed. It
// returns false if there is no delegate to paint for.
func (c *Coordinator) request(r geom.Rect) bool {
	c.stats.Requests++
	if c.delegate == nil {
		c.stats.Skipped++
		c.log.Debug("redraw of %s skipped: %v", r, ErrNoDelegate)
		return false
	}
	c.owed = true
	return true
}

// enqueue schedules a paint, or merges the request into the outstanding one.
func (c *Coordinator) enqueue() {
	if c.state != StateIdle {
		c.stats.Coalesced++
		return
	}
	c.schedule()
}

func (c *Coordinator) schedule() {
	c.state = StateScheduled
	c.poster.Post(c.runScheduledPaint)
}

// runScheduledPaint is the queued paint callback.
func (c *Coordinator) runScheduledPaint() {
	if c.state != StateScheduled {
		return
	}
	c.paint()
}

func (c *Coordinator) paint() {
	if c.delegate == nil {
		c.state = StateIdle
		c.log.Debug("paint skipped: %v", ErrNoDelegate)
		return
	}

	surface, ok := c.delegate.AllocateSurface()
	if !ok || surface == nil {
		// Keep the pending region; the next request retries.
		c.state = StateIdle
		c.stats.AbortedPaints++
		c.log.Debug("paint abandoned: %v", ErrNoSurface)
		return
	}

	regions := c.tracker.Take()
	c.owed = false
	c.state = StatePainting
	start := time.Now()

	bounds := c.root.Bounds()
	if c.partial {
		for _, r := range regions {
			view.DrawTree(c.root, surface, r.Intersect(bounds))
		}
	} else {
		view.DrawTree(c.root, surface, bounds)
	}

	c.stats.Paints++
	if c.observer != nil {
		c.observer(time.Since(start))
	}

	c.state = StateFlushing
	if c.delegate.Present(surface, c.flushComplete) {
		c.stats.AsyncFlushes++
		return
	}

	c.state = StateIdle
	if c.owed {
		// Invalidated while painting.
		c.schedule()
	}
}

// flushComplete is called by the delegate once an asynchronous flush has
// finished. Work that arrived during the flush is painted right away.
func (c *Coordinator) flushComplete() {
	if c.state != StateFlushing {
		c.stats.IgnoredFlushes++
		c.log.Warn("flush completion in state %s ignored", c.state)
		return
	}

	c.state = StateIdle
	if c.owed {
		c.stats.ImmediateRepaints++
		c.paint()
	}
}
