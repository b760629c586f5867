// Package view provides the view tree that the root coordinator routes input
// to and paints.
//
// A view's Frame is expressed in its parent's coordinate space; its Bounds
// always start at the origin. Concrete views embed Base and override the
// handlers they care about:
//
//	type Button struct {
//	    view.Base
//	    pressed bool
//	}
//
//	func (b *Button) MouseDown(ev mouse.Event) bool {
//	    b.pressed = true
//	    view.SetNeedsDisplay(b)
//	    return true
//	}
//
// Tree-wide operations (hit-testing, hover routing, coordinate conversion,
// painting and invalidation) are package functions that take the View
// interface, so overridden methods are always the ones called.
package view
