package view

import (
	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/input/mouse"
)

// RouteMouseDown hit-tests ev (in v's coordinates) against v's subtree,
// front-most subview first, and offers the press to each view under the
// point from the deepest outward. It returns the view that accepted, or
// nil if none did.
func RouteMouseDown(v View, ev mouse.Event) View {
	if v.Hidden() || !v.Bounds().Contains(ev.Position) {
		return nil
	}

	subs := v.Subviews()
	for i := len(subs) - 1; i >= 0; i-- {
		s := subs[i]
		if s.Hidden() || !s.Frame().Contains(ev.Position) {
			continue
		}
		if target := RouteMouseDown(s, ev.At(ev.Position.Sub(s.Frame().Origin))); target != nil {
			return target
		}
	}

	if v.MouseDown(ev) {
		return v
	}
	return nil
}

// HitTest returns the deepest visible view under p (in v's coordinates)
// together with p converted into that view's space.
func HitTest(v View, p geom.Point) (View, geom.Point) {
	if v.Hidden() || !v.Bounds().Contains(p) {
		return nil, p
	}
	subs := v.Subviews()
	for i := len(subs) - 1; i >= 0; i-- {
		s := subs[i]
		if s.Hidden() || !s.Frame().Contains(p) {
			continue
		}
		if hit, local := HitTest(s, p.Sub(s.Frame().Origin)); hit != nil {
			return hit, local
		}
	}
	return v, p
}

// RouteMouseMove delivers a hover event (in v's coordinates) to the deepest
// view under the pointer and returns it. Nothing is delivered when the
// pointer is outside v.
func RouteMouseMove(v View, ev mouse.Event) View {
	hit, local := HitTest(v, ev.Position)
	if hit == nil {
		return nil
	}
	hit.MouseMove(ev.At(local))
	return hit
}

// originInRoot returns v's origin expressed in its root's coordinates.
func originInRoot(v View) geom.Point {
	var o geom.Point
	for ; v != nil; v = v.Parent() {
		if v.Parent() == nil {
			break
		}
		o = o.Add(v.Frame().Origin)
	}
	return o
}

// ConvertPoint maps p from from's coordinates to to's coordinates. ok is
// false if the views do not share a root, in which case p is returned
// unchanged.
func ConvertPoint(p geom.Point, from, to View) (geom.Point, bool) {
	if from == to {
		return p, true
	}
	if Root(from) != Root(to) {
		return p, false
	}
	return p.Add(originInRoot(from)).Sub(originInRoot(to)), true
}

// ConvertRect maps r from from's coordinates to to's coordinates.
func ConvertRect(r geom.Rect, from, to View) (geom.Rect, bool) {
	o, ok := ConvertPoint(r.Origin, from, to)
	return geom.Rect{Origin: o, Size: r.Size}, ok
}

// RebaseMouse rewrites ev, expressed in from's coordinates, into target's
// local coordinates.
func RebaseMouse(ev mouse.Event, target, from View) mouse.Event {
	p, _ := ConvertPoint(ev.Position, from, target)
	return ev.At(p)
}
