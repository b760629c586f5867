package backend

import (
	"math"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/renderer/core"
)

// Surface adapts a Backend to the logical coordinate space views draw in.
// One device cell covers scale x scale logical units.
type Surface struct {
	backend       Backend
	scale         float64
	width, height int
}

// NewSurface creates a surface over b sized to its current dimensions.
// Non-positive scales are treated as 1.
func NewSurface(b Backend, scale float64) *Surface {
	if scale <= 0 {
		scale = 1
	}
	w, h := b.Size()
	return &Surface{backend: b, scale: scale, width: w, height: h}
}

// Backend returns the backend the surface draws into.
func (s *Surface) Backend() Backend {
	return s.backend
}

// Scale returns the logical size of one device cell.
func (s *Surface) Scale() float64 {
	return s.scale
}

// Size returns the logical extent of the surface.
func (s *Surface) Size() geom.Size {
	return geom.Sz(float64(s.width)*s.scale, float64(s.height)*s.scale)
}

// CellSize returns the logical size of one cell.
func (s *Surface) CellSize() geom.Size {
	return geom.Sz(s.scale, s.scale)
}

// SetCell sets the device cell covering p.
func (s *Surface) SetCell(p geom.Point, cell core.Cell) {
	x := int(math.Floor(p.X / s.scale))
	y := int(math.Floor(p.Y / s.scale))
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.backend.SetCell(x, y, cell)
}

// Fill fills every device cell r touches.
func (s *Surface) Fill(r geom.Rect, cell core.Cell) {
	sr := s.DeviceRect(r)
	if sr.IsEmpty() {
		return
	}
	s.backend.Fill(sr, cell)
}

// DeviceRect converts a logical rectangle to the device cells it touches,
// clipped to the surface.
func (s *Surface) DeviceRect(r geom.Rect) core.ScreenRect {
	if r.IsEmpty() {
		return core.ScreenRect{}
	}
	return core.ScreenRect{
		Left:   max(int(math.Floor(r.MinX()/s.scale)), 0),
		Top:    max(int(math.Floor(r.MinY()/s.scale)), 0),
		Right:  min(int(math.Ceil(r.MaxX()/s.scale)), s.width),
		Bottom: min(int(math.Ceil(r.MaxY()/s.scale)), s.height),
	}
}
