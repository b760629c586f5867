// Package root implements the root of a view tree embedded in a host
// surface. The Coordinator owns the two host-facing entry points: redraw
// requests, which it coalesces into at most one paint in flight, and raw
// input events, which it normalizes and routes into the tree with mouse
// capture.
//
// A Coordinator is not safe for concurrent use. Every method must run on
// the goroutine that drives its Poster; the paint callback is itself posted
// there.
package root

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/logging"
	"github.com/dshills/pdfsketch/internal/renderer/core"
	"github.com/dshills/pdfsketch/internal/renderer/dirty"
	"github.com/dshills/pdfsketch/internal/view"
)

// Delegate provides the surface and clipboard for a Coordinator. The
// coordinator does not own the delegate.
type Delegate interface {
	// AllocateSurface returns a canvas covering the whole surface, or false
	// if none is available right now.
	AllocateSurface() (view.Canvas, bool)

	// Present flushes a painted surface to the display. It returns true if
	// the flush completes asynchronously, in which case done must be called
	// from a later task once the flush has finished. A false return means
	// the flush already completed and done is never called.
	Present(surface view.Canvas, done func()) bool

	// CopyToClipboard stores text on the system clipboard.
	CopyToClipboard(text string)

	// RequestPaste asks for the clipboard contents. They arrive later
	// through Coordinator.Paste.
	RequestPaste()
}

// Poster schedules work on the host task queue.
type Poster interface {
	Post(fn func())
}

// Stats counts scheduler activity.
type Stats struct {
	Requests          uint64 // redraw requests received
	Coalesced         uint64 // requests merged into an outstanding paint
	Skipped           uint64 // requests dropped for lack of a delegate
	Paints            uint64 // paints that reached the view tree
	AbortedPaints     uint64 // paints abandoned for lack of a surface
	AsyncFlushes      uint64 // presents that completed asynchronously
	ImmediateRepaints uint64 // repaints issued straight from a flush completion
	IgnoredFlushes    uint64 // flush completions that arrived with no flush outstanding
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// WithShortcuts replaces the copy and paste shortcuts.
func WithShortcuts(s key.Shortcuts) Option {
	return func(c *Coordinator) { c.shortcuts = s }
}

// WithPartialRedraw paints only the invalidated rectangles instead of the
// full bounds.
func WithPartialRedraw(enabled bool) Option {
	return func(c *Coordinator) { c.partial = enabled }
}

// WithUnscaledHover delivers hover moves in raw device coordinates.
func WithUnscaledHover(enabled bool) Option {
	return func(c *Coordinator) { c.unscaledHover = enabled }
}

// WithMaxDirtyRegions sets how many separate rectangles are tracked before
// a paint covers the whole surface.
func WithMaxDirtyRegions(n int) Option {
	return func(c *Coordinator) { c.tracker.SetMaxRegions(n) }
}

// WithCoalesceThreshold sets the fraction of the surface that, once
// invalidated, is painted as a whole.
func WithCoalesceThreshold(f float64) Option {
	return func(c *Coordinator) { c.tracker.SetCoalesceThreshold(f) }
}

// WithPaintObserver registers fn to receive the duration of every paint.
func WithPaintObserver(fn func(time.Duration)) Option {
	return func(c *Coordinator) { c.observer = fn }
}

// Coordinator is the root of a view tree: it schedules paints and
// dispatches input.
type Coordinator struct {
	id     string
	poster Poster
	log    *logging.Logger

	delegate Delegate
	state    State
	owed     bool
	tracker  *dirty.Tracker

	root    *rootView
	content view.View
	focus   view.View
	capture view.View

	shortcuts     key.Shortcuts
	partial       bool
	unscaledHover bool
	observer      func(time.Duration)

	stats Stats
}

// New creates a coordinator that posts its paint callbacks to poster.
func New(poster Poster, opts ...Option) *Coordinator {
	c := &Coordinator{
		id:        uuid.NewString(),
		poster:    poster,
		log:       logging.NullLogger,
		tracker:   dirty.NewTracker(geom.Size{}),
		shortcuts: key.DefaultShortcuts(),
	}
	c.root = &rootView{coord: c}

	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent("root").WithField("instance", c.id[:8])
	return c
}

// ID returns the coordinator's instance id.
func (c *Coordinator) ID() string {
	return c.id
}

// Root returns the root view. Overlays may be added as its subviews.
func (c *Coordinator) Root() view.View {
	return c.root
}

// Bounds returns the root's extent in logical coordinates.
func (c *Coordinator) Bounds() geom.Rect {
	return c.root.Bounds()
}

// Delegate returns the attached delegate, or nil.
func (c *Coordinator) Delegate() Delegate {
	return c.delegate
}

// SetDelegate attaches or detaches the surface provider. Attaching
// requests a full redraw.
func (c *Coordinator) SetDelegate(d Delegate) {
	c.delegate = d
	if d == nil {
		c.tracker.Clear()
		c.owed = false
		c.log.Debug("delegate detached")
		return
	}
	c.log.Debug("delegate attached")
	c.SetNeedsDisplay()
}

// Content returns the content view, or nil.
func (c *Coordinator) Content() view.View {
	return c.content
}

// SetContent replaces the view filling the root. The new content takes
// keyboard focus if the old content had it.
func (c *Coordinator) SetContent(v view.View) {
	old := c.content
	if old != nil {
		view.RemoveFromParent(old)
	}
	c.content = v
	if v != nil {
		view.AddSubview(c.root, v)
		v.SetFrame(c.root.Bounds())
	}
	if c.focus == nil || c.focus == old {
		c.focus = v
	}
	c.SetNeedsDisplay()
}

// Focus returns the view receiving keyboard, scroll and clipboard events.
// It falls back to the content view when the focused view has left the tree.
func (c *Coordinator) Focus() view.View {
	if c.focus != nil && view.IsDescendant(c.focus, c.root) {
		return c.focus
	}
	return c.content
}

// SetFocus moves keyboard focus to v. It returns false, leaving focus
// unchanged, if v is not part of the tree.
func (c *Coordinator) SetFocus(v view.View) bool {
	if v == nil || !view.IsDescendant(v, c.root) {
		return false
	}
	c.focus = v
	return true
}

// Capture returns the current mouse capture target, or nil.
func (c *Coordinator) Capture() view.View {
	return c.captureTarget()
}

// SetShortcuts replaces the copy and paste shortcuts.
func (c *Coordinator) SetShortcuts(s key.Shortcuts) {
	c.shortcuts = s
}

// Shortcuts returns the active copy and paste shortcuts.
func (c *Coordinator) Shortcuts() key.Shortcuts {
	return c.shortcuts
}

// SetPartialRedraw toggles painting only invalidated rectangles.
func (c *Coordinator) SetPartialRedraw(enabled bool) {
	c.partial = enabled
}

// SetCoalesceThreshold sets the fraction of the surface that, once
// invalidated, is painted as a whole. It is clamped to [0, 1].
func (c *Coordinator) SetCoalesceThreshold(f float64) {
	c.tracker.SetCoalesceThreshold(f)
}

// SetUnscaledHover toggles raw device coordinates for hover moves.
func (c *Coordinator) SetUnscaledHover(enabled bool) {
	c.unscaledHover = enabled
}

// Resize sets the root's logical size, stretches the content view to fill
// it, and requests a full redraw.
func (c *Coordinator) Resize(size geom.Size) {
	bounds := geom.RectFromSize(size)
	c.root.SetFrame(bounds)
	c.tracker.SetScreenSize(bounds.Size)
	if c.content != nil {
		c.content.SetFrame(bounds)
	}
	c.log.Debug("resized to %s", bounds.Size)
	c.SetNeedsDisplay()
}

// Stats returns a snapshot of the scheduler counters.
func (c *Coordinator) Stats() Stats {
	return c.stats
}

// DirtyStats returns the state of the pending invalidation regions.
func (c *Coordinator) DirtyStats() dirty.TrackerStats {
	return c.tracker.Stats()
}

// rootView is the top of the tree. It clears damaged areas before the
// content paints and forwards invalidations to the scheduler.
type rootView struct {
	view.Base
	coord *Coordinator
}

func (r *rootView) Draw(cv view.Canvas, area geom.Rect) {
	cv.Fill(area, core.EmptyCell())
}

func (r *rootView) SetNeedsDisplayInRect(rect geom.Rect) {
	r.coord.SetNeedsDisplayInRect(rect)
}
