// Package input defines the normalized, device-independent input model that
// host events are translated into before they reach the view tree.
//
// Concrete event values live in the key and mouse subpackages; this package
// only carries the tag shared by all of them.
package input

// Kind identifies the variant of a normalized input event.
type Kind uint8

const (
	// KindNone is the zero value and never produced by the dispatcher.
	KindNone Kind = iota
	// KindPointerDown is a pointer button press.
	KindPointerDown
	// KindPointerUp is a pointer button release.
	KindPointerUp
	// KindPointerDrag is pointer motion with the primary button held.
	KindPointerDrag
	// KindPointerMove is pointer motion with no button held.
	KindPointerMove
	// KindScroll is a wheel or trackpad scroll.
	KindScroll
	// KindKeyDown is a key press.
	KindKeyDown
	// KindKeyUp is a key release.
	KindKeyUp
	// KindText is decoded character input.
	KindText
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPointerDown:
		return "pointer-down"
	case KindPointerUp:
		return "pointer-up"
	case KindPointerDrag:
		return "pointer-drag"
	case KindPointerMove:
		return "pointer-move"
	case KindScroll:
		return "scroll"
	case KindKeyDown:
		return "key-down"
	case KindKeyUp:
		return "key-up"
	case KindText:
		return "text"
	default:
		return "none"
	}
}

// IsPointer returns true for the pointer variants that carry a position.
func (k Kind) IsPointer() bool {
	return k >= KindPointerDown && k <= KindPointerMove
}

// IsKeyboard returns true for the keyboard variants.
func (k Kind) IsKeyboard() bool {
	return k >= KindKeyDown && k <= KindText
}

// Event is implemented by every normalized input event.
type Event interface {
	Kind() Kind
}
