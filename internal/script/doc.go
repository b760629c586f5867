// Package script provides views whose behavior is written in Lua.
//
// A script defines any of the following globals; missing callbacks are
// treated as "not handled":
//
//	draw(canvas, dirty)     paint; dirty is {x, y, w, h}
//	on_mouse_down(ev)       return true to accept the press and capture the pointer
//	on_mouse_drag(ev)       pointer moved with the button held
//	on_mouse_up(ev)         button released
//	on_mouse_move(ev)       hover
//	on_scroll(ev)           wheel; ev.dx, ev.dy
//	on_key_down(ev)         ev.code, ev.name
//	on_key_up(ev)
//	on_text(ev)             ev.text
//	on_copy()               return the text to place on the clipboard
//	on_paste(text)
//	on_resize(w, h)
//	accepts_focus           boolean, defaults to true
//
// Pointer events carry x, y, button, clicks and the modifier booleans
// ctrl, shift, alt and meta.
//
// The canvas table offers canvas:set(x, y, ch [, fg [, bg]]),
// canvas:fill(x, y, w, h [, ch [, fg [, bg]]]), canvas:text(x, y, s [, fg [, bg]]),
// canvas:size() and canvas:cell_size(). Colors are "#rrggbb" strings.
//
// Scripts may call redraw() or redraw(x, y, w, h) to request a repaint,
// size() for the view's size and log(msg) to write to the application log.
//
// Only the base, table, string and math libraries are available. Each
// callback runs under a timeout; a callback that fails or times out is
// logged and treated as not handled.
package script
