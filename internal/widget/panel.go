package widget

import (
	"math"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/input/mouse"
	"github.com/dshills/pdfsketch/internal/view"
)

// Panel stacks a main view above a fixed-height status view and keeps
// both sized to its frame. Pointer input reaches the subviews through
// routing; keyboard, scroll and clipboard events sent to the panel are
// forwarded to the main view.
type Panel struct {
	view.Base

	main         view.View
	status       view.View
	statusHeight float64
}

// NewPanel creates a panel. status may be nil.
func NewPanel(main, status view.View, statusHeight float64) *Panel {
	p := &Panel{main: main, status: status, statusHeight: statusHeight}
	if main != nil {
		view.AddSubview(p, main)
	}
	if status != nil {
		view.AddSubview(p, status)
	}
	return p
}

// Main returns the main view.
func (p *Panel) Main() view.View { return p.main }

// Status returns the status view, or nil.
func (p *Panel) Status() view.View { return p.status }

// SetStatusHeight changes the status row height and relayouts.
func (p *Panel) SetStatusHeight(h float64) {
	p.statusHeight = h
	p.layout()
	view.SetNeedsDisplay(p)
}

// SetFrame sets the frame and relayouts the subviews.
func (p *Panel) SetFrame(r geom.Rect) {
	p.Base.SetFrame(r)
	p.layout()
}

func (p *Panel) layout() {
	size := p.Bounds().Size
	sh := 0.0
	if p.status != nil {
		sh = math.Max(0, math.Min(p.statusHeight, size.Height))
		p.status.SetFrame(geom.R(0, size.Height-sh, size.Width, sh))
	}
	if p.main != nil {
		p.main.SetFrame(geom.R(0, 0, size.Width, size.Height-sh))
	}
}

// Copy delegates to the main view.
func (p *Panel) Copy() string {
	if p.main == nil {
		return ""
	}
	return p.main.Copy()
}

// Paste delegates to the main view.
func (p *Panel) Paste(text string) {
	if p.main != nil {
		p.main.Paste(text)
	}
}

// Scroll delegates to the main view.
func (p *Panel) Scroll(ev mouse.ScrollEvent) {
	if p.main != nil {
		p.main.Scroll(ev)
	}
}

// KeyDown delegates to the main view.
func (p *Panel) KeyDown(ev key.Event) {
	if p.main != nil {
		p.main.KeyDown(ev)
	}
}

// KeyUp delegates to the main view.
func (p *Panel) KeyUp(ev key.Event) {
	if p.main != nil {
		p.main.KeyUp(ev)
	}
}

// KeyText delegates to the main view.
func (p *Panel) KeyText(ev key.Event) {
	if p.main != nil {
		p.main.KeyText(ev)
	}
}
