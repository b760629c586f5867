// Package widget provides the stock content views: a freehand Scribble
// surface, a one-line Label and a Panel that stacks content above a status
// row.
package widget

import (
	"math"
	"strconv"
	"strings"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/input/mouse"
	"github.com/dshills/pdfsketch/internal/renderer/core"
	"github.com/dshills/pdfsketch/internal/view"
)

// DefaultBrush is the rune used to plot ink.
const DefaultBrush = '*'

// Stroke is one continuous ink path in the scribble's coordinates.
type Stroke []geom.Point

// Bounds returns the smallest rect containing every point.
func (s Stroke) Bounds() geom.Rect {
	if len(s) == 0 {
		return geom.Rect{}
	}
	minX, minY := s[0].X, s[0].Y
	maxX, maxY := minX, minY
	for _, p := range s[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return geom.R(minX, minY, maxX-minX, maxY-minY)
}

// Scribble is a freehand drawing surface. A left press starts a stroke,
// drags extend it and the release ends it. Backspace removes the last
// stroke and Escape clears everything. Copy and Paste exchange strokes as
// text, one stroke per line of space-separated "x,y" pairs.
type Scribble struct {
	view.Base

	// Brush is the rune plotted along strokes.
	Brush rune

	// Ink is the style of plotted cells.
	Ink core.Style

	strokes []Stroke
	active  bool

	hover    geom.Point
	hovering bool

	// cell is the last canvas cell size seen by Draw; it sizes invalidations.
	cell geom.Size
}

// NewScribble creates an empty scribble.
func NewScribble() *Scribble {
	return &Scribble{
		Brush: DefaultBrush,
		Ink:   core.DefaultStyle().Bold(),
		cell:  geom.Sz(1, 1),
	}
}

// Strokes returns a copy of the finished and in-progress strokes.
func (s *Scribble) Strokes() []Stroke {
	out := make([]Stroke, len(s.strokes))
	for i, st := range s.strokes {
		out[i] = append(Stroke(nil), st...)
	}
	return out
}

// Drawing reports whether a stroke is in progress.
func (s *Scribble) Drawing() bool {
	return s.active
}

// Clear removes every stroke.
func (s *Scribble) Clear() {
	s.strokes = nil
	s.active = false
	view.SetNeedsDisplay(s)
}

// Undo removes the most recent stroke.
func (s *Scribble) Undo() bool {
	if len(s.strokes) == 0 {
		return false
	}
	last := s.strokes[len(s.strokes)-1]
	s.strokes = s.strokes[:len(s.strokes)-1]
	s.active = false
	s.invalidate(last.Bounds())
	return true
}

// AcceptsFocus makes the scribble a keyboard focus target.
func (s *Scribble) AcceptsFocus() bool { return true }

// MouseDown starts a stroke on a left press.
func (s *Scribble) MouseDown(ev mouse.Event) bool {
	if ev.Button != mouse.ButtonLeft {
		return false
	}
	s.strokes = append(s.strokes, Stroke{ev.Position})
	s.active = true
	s.invalidate(geom.Rect{Origin: ev.Position})
	return true
}

// MouseDrag extends the active stroke.
func (s *Scribble) MouseDrag(ev mouse.Event) {
	if !s.active {
		return
	}
	i := len(s.strokes) - 1
	prev := s.strokes[i][len(s.strokes[i])-1]
	s.strokes[i] = append(s.strokes[i], ev.Position)
	s.invalidate(Stroke{prev, ev.Position}.Bounds())
}

// MouseUp finishes the active stroke.
func (s *Scribble) MouseUp(ev mouse.Event) {
	if !s.active {
		return
	}
	s.MouseDrag(ev)
	s.active = false
}

// MouseMove tracks the hover cursor.
func (s *Scribble) MouseMove(ev mouse.Event) {
	if s.hovering {
		s.invalidate(geom.Rect{Origin: s.hover})
	}
	s.hover = ev.Position
	s.hovering = s.Bounds().Contains(ev.Position)
	if s.hovering {
		s.invalidate(geom.Rect{Origin: s.hover})
	}
}

// KeyDown handles Backspace/Delete (undo) and Escape (clear).
func (s *Scribble) KeyDown(ev key.Event) {
	if !ev.Modifiers.IsEmpty() {
		return
	}
	switch ev.Code {
	case key.CodeBackspace, key.CodeDelete:
		s.Undo()
	case key.CodeEscape:
		s.Clear()
	}
}

// KeyText switches the brush to the typed rune.
func (s *Scribble) KeyText(ev key.Event) {
	for _, r := range ev.Text {
		if core.RuneWidth(r) == 1 && r != ' ' {
			s.Brush = r
			view.SetNeedsDisplay(s)
		}
		return
	}
}

// Copy serializes the strokes.
func (s *Scribble) Copy() string {
	return FormatStrokes(s.strokes)
}

// Paste appends the strokes parsed from text.
func (s *Scribble) Paste(text string) {
	added := ParseStrokes(text)
	if len(added) == 0 {
		return
	}
	s.strokes = append(s.strokes, added...)
	for _, st := range added {
		s.invalidate(st.Bounds())
	}
}

// Draw plots every stroke and the hover cursor.
func (s *Scribble) Draw(c view.Canvas, dirty geom.Rect) {
	if cs := c.CellSize(); !cs.IsEmpty() {
		s.cell = cs
	}
	step := math.Min(s.cell.Width, s.cell.Height)
	ink := core.NewStyledCell(s.Brush, s.Ink)

	for _, st := range s.strokes {
		if !grow(st.Bounds(), s.cell).Intersects(dirty) {
			continue
		}
		if len(st) == 1 {
			c.SetCell(st[0], ink)
			continue
		}
		for i := 1; i < len(st); i++ {
			plotLine(c, st[i-1], st[i], step, ink)
		}
	}

	if s.hovering && !s.active {
		c.SetCell(s.hover, core.NewStyledCell('+', core.DefaultStyle().WithForeground(core.ColorGray)))
	}
}

// invalidate requests a repaint of r grown by one cell on every side.
func (s *Scribble) invalidate(r geom.Rect) {
	view.SetNeedsDisplayInRect(s, grow(r, s.cell))
}

func grow(r geom.Rect, by geom.Size) geom.Rect {
	return geom.R(
		r.Origin.X-by.Width,
		r.Origin.Y-by.Height,
		r.Size.Width+2*by.Width,
		r.Size.Height+2*by.Height,
	)
}

// plotLine sets a cell every step along a→b, both ends included.
func plotLine(c view.Canvas, a, b geom.Point, step float64, cell core.Cell) {
	if step <= 0 {
		step = 1
	}
	d := b.Sub(a)
	n := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y)) / step))
	if n == 0 {
		c.SetCell(a, cell)
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		c.SetCell(a.Add(d.Scale(t)), cell)
	}
}

// FormatStrokes renders strokes as one line per stroke.
func FormatStrokes(strokes []Stroke) string {
	var b strings.Builder
	for i, st := range strokes {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, p := range st {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
			b.WriteByte(',')
			b.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		}
	}
	return b.String()
}

// ParseStrokes parses text written by FormatStrokes. Malformed points are
// skipped; lines without any valid point are dropped.
func ParseStrokes(text string) []Stroke {
	var strokes []Stroke
	for _, line := range strings.Split(text, "\n") {
		var st Stroke
		for _, field := range strings.Fields(line) {
			xs, ys, ok := strings.Cut(field, ",")
			if !ok {
				continue
			}
			x, errX := strconv.ParseFloat(xs, 64)
			y, errY := strconv.ParseFloat(ys, 64)
			if errX != nil || errY != nil {
				continue
			}
			st = append(st, geom.Pt(x, y))
		}
		if len(st) > 0 {
			strokes = append(strokes, st)
		}
	}
	return strokes
}
