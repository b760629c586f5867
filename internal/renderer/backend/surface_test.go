package backend

import (
	"testing"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/renderer/core"
)

func TestSurfaceSize(t *testing.T) {
	b := NewNullBackend(40, 10)
	_ = b.Init()
	s := NewSurface(b, 2)

	if s.Size() != geom.Sz(80, 20) {
		t.Errorf("Size() = %v, want 80x20", s.Size())
	}
	if s.CellSize() != geom.Sz(2, 2) {
		t.Errorf("CellSize() = %v", s.CellSize())
	}
	if NewSurface(b, 0).Scale() != 1 {
		t.Error("non-positive scale should become 1")
	}
}

func TestSurfaceSetCell(t *testing.T) {
	b := NewNullBackend(10, 10)
	_ = b.Init()
	s := NewSurface(b, 2)

	s.SetCell(geom.Pt(5, 3.9), core.NewCell('x'))
	if got := b.GetCell(2, 1); got.Rune != 'x' {
		t.Errorf("cell (2,1) = %q, want 'x'", got.Rune)
	}

	// Outside the surface.
	s.SetCell(geom.Pt(-1, 0), core.NewCell('y'))
	s.SetCell(geom.Pt(20, 0), core.NewCell('y'))
	for x := 0; x < 10; x++ {
		if b.GetCell(x, 0).Rune == 'y' {
			t.Errorf("cell (%d,0) written from out-of-range point", x)
		}
	}
}

func TestSurfaceDeviceRect(t *testing.T) {
	b := NewNullBackend(10, 10)
	_ = b.Init()
	s := NewSurface(b, 2)

	tests := []struct {
		name string
		r    geom.Rect
		want core.ScreenRect
	}{
		{"aligned", geom.R(0, 0, 4, 4), core.ScreenRect{Top: 0, Left: 0, Bottom: 2, Right: 2}},
		{"partial cells", geom.R(1, 1, 2, 2), core.ScreenRect{Top: 0, Left: 0, Bottom: 2, Right: 2}},
		{"clipped", geom.R(-4, 16, 100, 100), core.ScreenRect{Top: 8, Left: 0, Bottom: 10, Right: 10}},
		{"empty", geom.Rect{}, core.ScreenRect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.DeviceRect(tt.r); got != tt.want {
				t.Errorf("DeviceRect(%v) = %+v, want %+v", tt.r, got, tt.want)
			}
		})
	}
}

func TestSurfaceFill(t *testing.T) {
	b := NewNullBackend(4, 2)
	_ = b.Init()
	s := NewSurface(b, 1)

	s.Fill(geom.R(1, 0, 2, 1), core.NewCell('#'))

	if got := b.Text(0); got != " ## " {
		t.Errorf("row 0 = %q", got)
	}
	if got := b.Text(1); got != "    " {
		t.Errorf("row 1 = %q", got)
	}
}
