package script

import (
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/input/mouse"
	"github.com/dshills/pdfsketch/internal/renderer/core"
	"github.com/dshills/pdfsketch/internal/view"
)

// canvasGlobal is the hidden global holding the canvas table passed to draw.
const canvasGlobal = "__canvas"

// installAPI registers the globals scripts can call.
func (v *View) installAPI() {
	L := v.L

	L.SetGlobal("redraw", L.NewFunction(v.luaRedraw))
	L.SetGlobal("size", L.NewFunction(v.luaSize))
	L.SetGlobal("log", L.NewFunction(v.luaLog))
	L.SetGlobal("print", L.NewFunction(v.luaPrint))

	canvas := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"set":       v.luaCanvasSet,
		"fill":      v.luaCanvasFill,
		"text":      v.luaCanvasText,
		"size":      v.luaCanvasSize,
		"cell_size": v.luaCanvasCellSize,
	})
	L.SetGlobal(canvasGlobal, canvas)
}

// redraw() or redraw(x, y, w, h)
func (v *View) luaRedraw(L *lua.LState) int {
	if L.GetTop() == 0 {
		view.SetNeedsDisplay(v)
		return 0
	}
	r := geom.R(
		float64(L.CheckNumber(1)),
		float64(L.CheckNumber(2)),
		float64(L.CheckNumber(3)),
		float64(L.CheckNumber(4)),
	)
	view.SetNeedsDisplayInRect(v, r)
	return 0
}

func (v *View) luaSize(L *lua.LState) int {
	s := v.Bounds().Size
	L.Push(lua.LNumber(s.Width))
	L.Push(lua.LNumber(s.Height))
	return 2
}

func (v *View) luaLog(L *lua.LState) int {
	v.logger.Info("%s", L.CheckString(1))
	return 0
}

func (v *View) luaPrint(L *lua.LState) int {
	parts := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	v.logger.Debug("%v", parts)
	return 0
}

// activeCanvas returns the canvas for the running draw or raises.
func (v *View) activeCanvas(L *lua.LState) view.Canvas {
	if v.canvas == nil {
		L.RaiseError("%s", ErrNoCanvas.Error())
	}
	return v.canvas
}

// canvas:set(x, y, ch [, fg [, bg]])
func (v *View) luaCanvasSet(L *lua.LState) int {
	c := v.activeCanvas(L)
	p := geom.Pt(float64(L.CheckNumber(2)), float64(L.CheckNumber(3)))
	r, _ := utf8.DecodeRuneInString(L.CheckString(4))
	c.SetCell(p, core.NewStyledCell(r, styleArgs(L, 5)))
	return 0
}

// canvas:fill(x, y, w, h [, ch [, fg [, bg]]])
func (v *View) luaCanvasFill(L *lua.LState) int {
	c := v.activeCanvas(L)
	rect := geom.R(
		float64(L.CheckNumber(2)),
		float64(L.CheckNumber(3)),
		float64(L.CheckNumber(4)),
		float64(L.CheckNumber(5)),
	)
	r, _ := utf8.DecodeRuneInString(L.OptString(6, " "))
	c.Fill(rect, core.NewStyledCell(r, styleArgs(L, 7)))
	return 0
}

// canvas:text(x, y, s [, fg [, bg]]) returns the x after the last rune.
func (v *View) luaCanvasText(L *lua.LState) int {
	c := v.activeCanvas(L)
	p := geom.Pt(float64(L.CheckNumber(2)), float64(L.CheckNumber(3)))
	end := view.DrawText(c, p, L.CheckString(4), styleArgs(L, 5))
	L.Push(lua.LNumber(end.X))
	return 1
}

func (v *View) luaCanvasSize(L *lua.LState) int {
	s := v.activeCanvas(L).Size()
	L.Push(lua.LNumber(s.Width))
	L.Push(lua.LNumber(s.Height))
	return 2
}

func (v *View) luaCanvasCellSize(L *lua.LState) int {
	s := v.activeCanvas(L).CellSize()
	L.Push(lua.LNumber(s.Width))
	L.Push(lua.LNumber(s.Height))
	return 2
}

// styleArgs reads optional foreground and background "#rrggbb" strings
// starting at stack index n.
func styleArgs(L *lua.LState, n int) core.Style {
	style := core.DefaultStyle()
	if fg := L.OptString(n, ""); fg != "" {
		c, err := core.ColorFromHex(fg)
		if err != nil {
			L.ArgError(n, "invalid color "+fg)
		}
		style = style.WithForeground(c)
	}
	if bg := L.OptString(n+1, ""); bg != "" {
		c, err := core.ColorFromHex(bg)
		if err != nil {
			L.ArgError(n+1, "invalid color "+bg)
		}
		style = style.WithBackground(c)
	}
	return style
}

func rectTable(L *lua.LState, r geom.Rect) *lua.LTable {
	t := L.CreateTable(0, 4)
	t.RawSetString("x", lua.LNumber(r.Origin.X))
	t.RawSetString("y", lua.LNumber(r.Origin.Y))
	t.RawSetString("w", lua.LNumber(r.Size.Width))
	t.RawSetString("h", lua.LNumber(r.Size.Height))
	return t
}

func setModifiers(t *lua.LTable, m key.Modifier) {
	t.RawSetString("ctrl", lua.LBool(m.HasCtrl()))
	t.RawSetString("shift", lua.LBool(m.HasShift()))
	t.RawSetString("alt", lua.LBool(m.HasAlt()))
	t.RawSetString("meta", lua.LBool(m.HasMeta()))
}

func mouseTable(L *lua.LState, ev mouse.Event) *lua.LTable {
	t := L.CreateTable(0, 8)
	t.RawSetString("x", lua.LNumber(ev.Position.X))
	t.RawSetString("y", lua.LNumber(ev.Position.Y))
	t.RawSetString("button", lua.LString(ev.Button.String()))
	t.RawSetString("clicks", lua.LNumber(ev.ClickCount))
	setModifiers(t, ev.Modifiers)
	return t
}

func scrollTable(L *lua.LState, ev mouse.ScrollEvent) *lua.LTable {
	t := L.CreateTable(0, 6)
	t.RawSetString("dx", lua.LNumber(ev.Delta.X))
	t.RawSetString("dy", lua.LNumber(ev.Delta.Y))
	setModifiers(t, ev.Modifiers)
	return t
}

func keyTable(L *lua.LState, ev key.Event) *lua.LTable {
	t := L.CreateTable(0, 7)
	t.RawSetString("code", lua.LNumber(ev.Code))
	t.RawSetString("name", lua.LString(ev.Code.String()))
	t.RawSetString("text", lua.LString(ev.Text))
	setModifiers(t, ev.Modifiers)
	return t
}
