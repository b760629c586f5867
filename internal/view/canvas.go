package view

import (
	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/renderer/core"
)

// Canvas is a drawable surface in logical coordinates. Drawing outside the
// canvas is silently clipped.
type Canvas interface {
	// Size returns the logical extent of the canvas.
	Size() geom.Size

	// CellSize returns the logical size of one addressable cell.
	CellSize() geom.Size

	// SetCell sets the cell covering p.
	SetCell(p geom.Point, cell core.Cell)

	// Fill fills every cell covered by r.
	Fill(r geom.Rect, cell core.Cell)
}

// Sub returns a canvas covering frame (in c's coordinates) whose origin is
// frame's origin. Drawing is clipped to frame.
func Sub(c Canvas, frame geom.Rect) Canvas {
	return &subCanvas{parent: c, frame: frame}
}

type subCanvas struct {
	parent Canvas
	frame  geom.Rect
}

func (s *subCanvas) Size() geom.Size {
	return s.frame.Size
}

func (s *subCanvas) CellSize() geom.Size {
	return s.parent.CellSize()
}

func (s *subCanvas) SetCell(p geom.Point, cell core.Cell) {
	if !geom.RectFromSize(s.frame.Size).Contains(p) {
		return
	}
	s.parent.SetCell(p.Add(s.frame.Origin), cell)
}

func (s *subCanvas) Fill(r geom.Rect, cell core.Cell) {
	r = r.Intersect(geom.RectFromSize(s.frame.Size))
	if r.IsEmpty() {
		return
	}
	s.parent.Fill(r.Offset(s.frame.Origin), cell)
}

// DrawText writes s starting at p, one rune per cell, and returns the
// position after the last rune. Wide runes take two cells.
func DrawText(c Canvas, p geom.Point, s string, style core.Style) geom.Point {
	cw := c.CellSize().Width
	if cw <= 0 {
		cw = 1
	}
	for _, r := range s {
		w := core.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.SetCell(p, core.NewStyledCell(r, style))
		p.X += cw * float64(w)
	}
	return p
}
