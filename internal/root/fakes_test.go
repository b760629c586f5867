package root

import (
	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/input/mouse"
	"github.com/dshills/pdfsketch/internal/renderer/core"
	"github.com/dshills/pdfsketch/internal/view"
)

// fakeCanvas counts drawing calls.
type fakeCanvas struct {
	size  geom.Size
	fills int
	cells int
}

func (c *fakeCanvas) Size() geom.Size               { return c.size }
func (c *fakeCanvas) CellSize() geom.Size           { return geom.Sz(1, 1) }
func (c *fakeCanvas) SetCell(geom.Point, core.Cell) { c.cells++ }
func (c *fakeCanvas) Fill(geom.Rect, core.Cell)     { c.fills++ }

// fakeDelegate records every call. With async set, Present keeps the done
// callbacks for the test to complete.
type fakeDelegate struct {
	async     bool
	noSurface bool

	allocs   int
	presents int
	pending  []func()
	copied   []string
	pastes   int
}

func (d *fakeDelegate) AllocateSurface() (view.Canvas, bool) {
	d.allocs++
	if d.noSurface {
		return nil, false
	}
	return &fakeCanvas{size: geom.Sz(200, 200)}, true
}

func (d *fakeDelegate) Present(_ view.Canvas, done func()) bool {
	d.presents++
	if d.async {
		d.pending = append(d.pending, done)
	}
	return d.async
}

func (d *fakeDelegate) CopyToClipboard(text string) { d.copied = append(d.copied, text) }
func (d *fakeDelegate) RequestPaste()               { d.pastes++ }

// completeFlush runs the oldest outstanding flush completion.
func (d *fakeDelegate) completeFlush() bool {
	if len(d.pending) == 0 {
		return false
	}
	done := d.pending[0]
	d.pending = d.pending[1:]
	done()
	return true
}

// recorder is a view that records what it receives.
type recorder struct {
	view.Base
	accept    bool
	focusable bool
	copyText  string
	onDraw    func(v *recorder)

	draws  []geom.Rect
	downs  []mouse.Event
	ups    []mouse.Event
	drags  []mouse.Event
	moves  []mouse.Event
	scroll []mouse.ScrollEvent
	keys   []key.Event
	texts  []key.Event
	pasted []string
}

func newRecorder(frame geom.Rect, accept bool) *recorder {
	r := &recorder{accept: accept}
	r.SetFrame(frame)
	return r
}

func (r *recorder) Draw(_ view.Canvas, dirty geom.Rect) {
	r.draws = append(r.draws, dirty)
	if r.onDraw != nil {
		r.onDraw(r)
	}
}

func (r *recorder) MouseDown(ev mouse.Event) bool {
	r.downs = append(r.downs, ev)
	return r.accept
}

func (r *recorder) MouseUp(ev mouse.Event)      { r.ups = append(r.ups, ev) }
func (r *recorder) MouseDrag(ev mouse.Event)    { r.drags = append(r.drags, ev) }
func (r *recorder) MouseMove(ev mouse.Event)    { r.moves = append(r.moves, ev) }
func (r *recorder) Scroll(ev mouse.ScrollEvent) { r.scroll = append(r.scroll, ev) }
func (r *recorder) KeyDown(ev key.Event)        { r.keys = append(r.keys, ev) }
func (r *recorder) KeyUp(ev key.Event)          { r.keys = append(r.keys, ev) }
func (r *recorder) KeyText(ev key.Event)        { r.texts = append(r.texts, ev) }
func (r *recorder) Copy() string                { return r.copyText }
func (r *recorder) Paste(text string)           { r.pasted = append(r.pasted, text) }
func (r *recorder) AcceptsFocus() bool          { return r.focusable }
