package view

import (
	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/input/mouse"
)

// View is a node of the view tree. Positions in events are local to the
// receiving view.
type View interface {
	Frame() geom.Rect
	SetFrame(r geom.Rect)
	Bounds() geom.Rect
	Parent() View
	Subviews() []View
	Hidden() bool

	// Draw paints the view's own content. dirty is the local area that
	// needs repainting; subviews are painted afterwards by DrawTree.
	Draw(c Canvas, dirty geom.Rect)

	// MouseDown returns true to accept the press. The accepting view
	// receives the matching drags and release.
	MouseDown(ev mouse.Event) bool
	MouseUp(ev mouse.Event)
	MouseDrag(ev mouse.Event)
	MouseMove(ev mouse.Event)
	Scroll(ev mouse.ScrollEvent)

	KeyDown(ev key.Event)
	KeyUp(ev key.Event)
	KeyText(ev key.Event)

	// Copy returns the clipboard payload for the current selection.
	Copy() string
	// Paste receives clipboard contents after a paste request completes.
	Paste(text string)

	node() *Base
}

// Focusable is implemented by views that take keyboard focus when they
// accept a mouse-down.
type Focusable interface {
	AcceptsFocus() bool
}

// Invalidator is implemented by the root of a tree. Rectangles are in the
// implementor's coordinate space.
type Invalidator interface {
	SetNeedsDisplayInRect(r geom.Rect)
}

// Base carries the tree bookkeeping and no-op handlers. Embed it in
// concrete views.
type Base struct {
	frame    geom.Rect
	parent   View
	subviews []View
	hidden   bool
}

// Frame returns the view's rectangle in its parent's coordinates.
func (b *Base) Frame() geom.Rect { return b.frame }

// SetFrame moves or resizes the view. Callers should invalidate.
func (b *Base) SetFrame(r geom.Rect) { b.frame = r }

// Bounds returns the view's rectangle in its own coordinates.
func (b *Base) Bounds() geom.Rect { return geom.RectFromSize(b.frame.Size) }

// Parent returns the superview, or nil.
func (b *Base) Parent() View { return b.parent }

// Subviews returns the children, back to front.
func (b *Base) Subviews() []View { return b.subviews }

// Hidden reports whether the view is skipped by painting and hit-testing.
func (b *Base) Hidden() bool { return b.hidden }

// SetHidden hides or shows the view.
func (b *Base) SetHidden(hidden bool) { b.hidden = hidden }

func (b *Base) Draw(Canvas, geom.Rect)     {}
func (b *Base) MouseDown(mouse.Event) bool { return false }
func (b *Base) MouseUp(mouse.Event)        {}
func (b *Base) MouseDrag(mouse.Event)      {}
func (b *Base) MouseMove(mouse.Event)      {}
func (b *Base) Scroll(mouse.ScrollEvent)   {}
func (b *Base) KeyDown(key.Event)          {}
func (b *Base) KeyUp(key.Event)            {}
func (b *Base) KeyText(key.Event)          {}
func (b *Base) Copy() string               { return "" }
func (b *Base) Paste(string)               {}
func (b *Base) node() *Base                { return b }

// AddSubview appends child as the front-most subview of parent, removing
// it from any previous parent first.
func AddSubview(parent, child View) {
	RemoveFromParent(child)
	child.node().parent = parent
	pn := parent.node()
	pn.subviews = append(pn.subviews, child)
}

// RemoveFromParent detaches v from its parent. It is a no-op for roots.
func RemoveFromParent(v View) {
	n := v.node()
	if n.parent == nil {
		return
	}
	pn := n.parent.node()
	for i, s := range pn.subviews {
		if s == v {
			pn.subviews = append(pn.subviews[:i], pn.subviews[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Root returns the top-most ancestor of v.
func Root(v View) View {
	for v.Parent() != nil {
		v = v.Parent()
	}
	return v
}

// IsDescendant reports whether v is ancestor or lies below it.
func IsDescendant(v, ancestor View) bool {
	for ; v != nil; v = v.Parent() {
		if v == ancestor {
			return true
		}
	}
	return false
}
