// Package mouse provides the normalized pointer and scroll events delivered
// to the view tree.
//
// # Core Types
//
// Event is a pointer event in logical coordinates:
//
//	ev := mouse.Event{
//	    Type:       mouse.TypeDown,
//	    Position:   geom.Pt(20, 20),
//	    Button:     mouse.ButtonLeft,
//	    ClickCount: 1,
//	    Modifiers:  key.ModNone,
//	}
//
// Pointer-down, pointer-up and pointer-drag events are addressed to a single
// view; the dispatcher rewrites Position into that view's local frame before
// delivery. Pointer-move events carry root coordinates until the hover router
// rebases them.
//
// ScrollEvent carries a wheel delta that has already been multiplied by the
// device-to-logical scale.
//
// # Click Detection
//
// Hosts that do not report click counts (terminals) use ClickTracker, which
// counts presses that land close together in time and space:
//
//	tracker := mouse.NewClickTracker(400*time.Millisecond, 4)
//	count := tracker.Record(pos, time.Now()) // 1, 2 or 3
//
// # Button State
//
// Hosts that report the set of held buttons rather than press/release
// transitions use ButtonTracker to derive the transitions.
package mouse
