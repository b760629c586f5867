// Package geom provides the value types used for layout, hit-testing and
// invalidation. All coordinates are logical (device coordinates multiplied by
// the device-to-logical scale factor).
package geom

import (
	"fmt"
	"math"
)

// Point is a position in logical coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p translated by -o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Equal returns true if two points are equal.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Size is a non-negative extent.
type Size struct {
	Width, Height float64
}

// Sz returns a Size, clamping negative extents to zero.
func Sz(w, h float64) Size {
	return Size{Width: math.Max(w, 0), Height: math.Max(h, 0)}
}

// IsEmpty returns true if the size covers no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	Origin Point
	Size   Size
}

// R returns a rectangle at (x, y) with the given extent.
// Negative extents are clamped to zero.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Sz(w, h)}
}

// RectFromSize returns a rectangle at the origin covering s.
func RectFromSize(s Size) Rect {
	return Rect{Size: Sz(s.Width, s.Height)}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.Origin.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxX returns the right edge (exclusive).
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge (exclusive).
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// IsEmpty returns true if the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	if o.IsEmpty() {
		return true
	}
	return o.MinX() >= r.MinX() && o.MaxX() <= r.MaxX() &&
		o.MinY() >= r.MinY() && o.MaxY() <= r.MaxY()
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.MinX() < o.MaxX() && o.MinX() < r.MaxX() &&
		r.MinY() < o.MaxY() && o.MinY() < r.MaxY()
}

// Intersect returns the overlapping area of r and o, or an empty rectangle.
func (r Rect) Intersect(o Rect) Rect {
	if !r.Intersects(o) {
		return Rect{}
	}
	x0 := math.Max(r.MinX(), o.MinX())
	y0 := math.Max(r.MinY(), o.MinY())
	x1 := math.Min(r.MaxX(), o.MaxX())
	y1 := math.Min(r.MaxY(), o.MaxY())
	return R(x0, y0, x1-x0, y1-y0)
}

// Union returns the smallest rectangle containing both r and o.
// Empty rectangles do not contribute.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := math.Min(r.MinX(), o.MinX())
	y0 := math.Min(r.MinY(), o.MinY())
	x1 := math.Max(r.MaxX(), o.MaxX())
	y1 := math.Max(r.MaxY(), o.MaxY())
	return R(x0, y0, x1-x0, y1-y0)
}

// Offset returns r translated by d.
func (r Rect) Offset(d Point) Rect {
	return Rect{Origin: r.Origin.Add(d), Size: r.Size}
}

// Area returns the covered area.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Size.Width * r.Size.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s %s]", r.Origin, r.Size)
}
