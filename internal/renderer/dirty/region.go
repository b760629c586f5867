// Package dirty tracks the parts of a surface that need repainting. It
// collects invalidated rectangles in logical coordinates and coalesces
// overlapping or touching ones so a paint covers each area once.
package dirty

import "github.com/dshills/pdfsketch/internal/geom"

// Touches reports whether a and b overlap or share an edge.
func Touches(a, b geom.Rect) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return a.MinX() <= b.MaxX() && b.MinX() <= a.MaxX() &&
		a.MinY() <= b.MaxY() && b.MinY() <= a.MaxY()
}

// Merge returns the union of a and b if they touch.
func Merge(a, b geom.Rect) (geom.Rect, bool) {
	if !Touches(a, b) {
		return geom.Rect{}, false
	}
	return a.Union(b), true
}

// Bounding returns the smallest rectangle covering all of rects.
func Bounding(rects []geom.Rect) geom.Rect {
	var u geom.Rect
	for _, r := range rects {
		u = u.Union(r)
	}
	return u
}
