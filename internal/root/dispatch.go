package root

import (
	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/host"
	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/input/mouse"
	"github.com/dshills/pdfsketch/internal/view"
)

// HandleInputEvent normalizes a raw host event and routes it into the
// tree. scale converts device coordinates to logical ones (logical =
// device * scale); values <= 0 are treated as 1. It returns true if the
// event reached a view or was consumed as a shortcut.
func (c *Coordinator) HandleInputEvent(ev host.Event, scale float64) bool {
	if scale <= 0 {
		scale = 1
	}
	mods := ev.Modifiers.Keyboard()

	switch ev.Type {
	case host.MouseDown:
		return c.mouseDown(ev, scale, mods)
	case host.MouseUp:
		return c.mouseUp(ev, scale, mods)
	case host.MouseMove:
		if ev.Button == mouse.ButtonLeft || ev.Modifiers.Has(host.ModLeftButtonDown) {
			return c.mouseDrag(ev, scale, mods)
		}
		return c.mouseMove(ev, scale, mods)
	case host.Char:
		return c.keyText(ev, mods)
	case host.KeyDown:
		return c.keyDown(key.NewDown(ev.KeyCode, mods))
	case host.KeyUp:
		return c.keyUp(key.NewUp(ev.KeyCode, mods))
	case host.Wheel:
		return c.scroll(ev, scale, mods)
	default:
		return false
	}
}

// Paste delivers clipboard contents fetched after a paste request.
func (c *Coordinator) Paste(text string) {
	target := c.Focus()
	if target == nil {
		c.log.Debug("paste dropped: no focus view")
		return
	}
	target.Paste(text)
}

func scaled(ev host.Event, scale float64) geom.Point {
	return geom.Pt(float64(ev.X), float64(ev.Y)).Scale(scale)
}

// captureTarget returns the capture target, releasing it first if it has
// been removed from the tree.
func (c *Coordinator) captureTarget() view.View {
	if c.capture != nil && !view.IsDescendant(c.capture, c.root) {
		c.log.Debug("capture target detached, releasing")
		c.capture = nil
	}
	return c.capture
}

func (c *Coordinator) mouseDown(ev host.Event, scale float64, mods key.Modifier) bool {
	down := mouse.NewEvent(mouse.TypeDown, scaled(ev, scale), ev.Button, ev.ClickCount, mods)
	target := view.RouteMouseDown(c.root, down)
	c.capture = target
	if target == nil {
		return false
	}
	if f, ok := target.(view.Focusable); ok && f.AcceptsFocus() {
		c.focus = target
	}
	return true
}

func (c *Coordinator) mouseUp(ev host.Event, scale float64, mods key.Modifier) bool {
	target := c.captureTarget()
	c.capture = nil
	if target == nil {
		return false
	}
	up := mouse.NewEvent(mouse.TypeUp, scaled(ev, scale), ev.Button, ev.ClickCount, mods)
	target.MouseUp(view.RebaseMouse(up, target, c.root))
	return true
}

func (c *Coordinator) mouseDrag(ev host.Event, scale float64, mods key.Modifier) bool {
	target := c.captureTarget()
	if target == nil {
		return false
	}
	drag := mouse.NewEvent(mouse.TypeDrag, scaled(ev, scale), mouse.ButtonLeft, ev.ClickCount, mods)
	target.MouseDrag(view.RebaseMouse(drag, target, c.root))
	return true
}

func (c *Coordinator) mouseMove(ev host.Event, scale float64, mods key.Modifier) bool {
	pos := scaled(ev, scale)
	if c.unscaledHover {
		pos = geom.Pt(float64(ev.X), float64(ev.Y))
	}
	move := mouse.NewEvent(mouse.TypeMove, pos, mouse.ButtonNone, ev.ClickCount, mods)
	return view.RouteMouseMove(c.root, move) != nil
}

func (c *Coordinator) keyText(ev host.Event, mods key.Modifier) bool {
	target := c.Focus()
	if target == nil || ev.Text == "" {
		return false
	}
	target.KeyText(key.NewText(ev.Text, mods))
	return true
}

func (c *Coordinator) keyDown(ev key.Event) bool {
	if c.shortcuts.IsCopy(ev) {
		if c.delegate != nil {
			if target := c.Focus(); target != nil {
				c.delegate.CopyToClipboard(target.Copy())
			}
		}
		return true
	}
	if c.shortcuts.IsPaste(ev) && c.delegate != nil {
		c.delegate.RequestPaste()
	}

	target := c.Focus()
	if target == nil {
		return false
	}
	target.KeyDown(ev)
	return true
}

func (c *Coordinator) keyUp(ev key.Event) bool {
	if c.shortcuts.IsShortcut(ev) {
		return true
	}
	target := c.Focus()
	if target == nil {
		return false
	}
	target.KeyUp(ev)
	return true
}

func (c *Coordinator) scroll(ev host.Event, scale float64, mods key.Modifier) bool {
	target := c.Focus()
	if target == nil {
		return false
	}
	target.Scroll(mouse.NewScrollEvent(ev.DeltaX, ev.DeltaY, scale, mods))
	return true
}
