package view

import "github.com/dshills/pdfsketch/internal/geom"

// DrawTree paints v and its visible subviews that intersect dirty (in v's
// coordinates) onto c, whose origin is v's origin.
func DrawTree(v View, c Canvas, dirty geom.Rect) {
	if v.Hidden() {
		return
	}
	dirty = dirty.Intersect(v.Bounds())
	if dirty.IsEmpty() {
		return
	}

	v.Draw(c, dirty)

	for _, s := range v.Subviews() {
		f := s.Frame()
		if s.Hidden() || !f.Intersects(dirty) {
			continue
		}
		local := dirty.Intersect(f).Offset(geom.Point{}.Sub(f.Origin))
		DrawTree(s, Sub(c, f), local)
	}
}

// SetNeedsDisplayInRect marks r (in v's coordinates) as needing a repaint.
// The request bubbles to the nearest Invalidator ancestor; it is dropped if
// v is not attached to one.
func SetNeedsDisplayInRect(v View, r geom.Rect) {
	for cur := v; cur != nil; cur = cur.Parent() {
		if inv, ok := cur.(Invalidator); ok {
			rr, _ := ConvertRect(r, v, cur)
			inv.SetNeedsDisplayInRect(rr)
			return
		}
	}
}

// SetNeedsDisplay marks all of v as needing a repaint.
func SetNeedsDisplay(v View) {
	SetNeedsDisplayInRect(v, v.Bounds())
}
