package script

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/input/mouse"
	"github.com/dshills/pdfsketch/internal/logging"
	"github.com/dshills/pdfsketch/internal/view"
)

// DefaultTimeout bounds a single callback.
const DefaultTimeout = 250 * time.Millisecond

// Option configures a View.
type Option func(*View)

// WithTimeout sets the per-callback execution limit.
func WithTimeout(d time.Duration) Option {
	return func(v *View) {
		if d > 0 {
			v.timeout = d
		}
	}
}

// WithLogger sets the logger for script errors and log() output.
func WithLogger(l *logging.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// View is a view driven by a Lua script.
//
// gopher-lua states are not goroutine-safe; the mutex serializes Go-side
// access, and callbacks are expected to arrive from a single task queue.
type View struct {
	view.Base

	L    *lua.LState
	name string

	mu      sync.Mutex
	timeout time.Duration
	logger  *logging.Logger
	closed  bool

	// canvas is only set while draw runs.
	canvas view.Canvas

	failures int
	lastErr  error
}

// Load creates a view from the script file at path.
func Load(path string, opts ...Option) (*View, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return New(string(src), path, opts...)
}

// New creates a view from Lua source. name identifies the chunk in errors.
// The script body runs once under the callback timeout.
func New(source, name string, opts ...Option) (*View, error) {
	v := &View{
		name:    name,
		timeout: DefaultTimeout,
		logger:  logging.NullLogger,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.WithComponent("script").WithField("script", name)

	v.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	if err := openSafeLibraries(v.L); err != nil {
		v.L.Close()
		return nil, err
	}
	v.installAPI()

	fn, err := v.L.Load(strings.NewReader(source), name)
	if err != nil {
		v.L.Close()
		return nil, &Error{Callback: "chunk", Err: err}
	}
	if err := v.protectedCall(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
		v.L.Close()
		return nil, &Error{Callback: "chunk", Err: err}
	}
	return v, nil
}

// openSafeLibraries opens base, table, string and math and removes the
// base functions that load code from outside the script.
func openSafeLibraries(L *lua.LState) error {
	libs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			return fmt.Errorf("open lua library %q: %w", lib.name, err)
		}
	}

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
	return nil
}

// Name returns the chunk name given at creation.
func (v *View) Name() string {
	return v.name
}

// Failures returns how many callbacks have failed.
func (v *View) Failures() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failures
}

// LastError returns the most recent callback failure.
func (v *View) LastError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

// Close releases the Lua state. Later callbacks are ignored.
func (v *View) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	v.closed = true
	v.L.Close()
	return nil
}

// protectedCall runs p under the callback timeout.
func (v *View) protectedCall(p lua.P, args ...lua.LValue) error {
	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()
	v.L.SetContext(ctx)
	defer v.L.RemoveContext()
	return v.L.CallByParam(p, args...)
}

// call invokes the global callback name with args. ok is false when the
// callback is missing, the view is closed or the call failed. Must be
// called with mu held.
func (v *View) call(name string, args ...lua.LValue) (ret lua.LValue, ok bool) {
	if v.closed {
		return lua.LNil, false
	}
	fn, isFn := v.L.GetGlobal(name).(*lua.LFunction)
	if !isFn {
		return lua.LNil, false
	}

	if err := v.protectedCall(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		v.failures++
		v.lastErr = &Error{Callback: name, Err: err}
		v.logger.Warn("%v", v.lastErr)
		return lua.LNil, false
	}
	ret = v.L.Get(-1)
	v.L.Pop(1)
	return ret, true
}

// SetFrame sets the frame and notifies on_resize when the size changes.
func (v *View) SetFrame(r geom.Rect) {
	old := v.Frame().Size
	v.Base.SetFrame(r)
	if old == r.Size {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.call("on_resize", lua.LNumber(r.Size.Width), lua.LNumber(r.Size.Height))
}

// AcceptsFocus reports the script's accepts_focus global, true when unset.
func (v *View) AcceptsFocus() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false
	}
	val := v.L.GetGlobal("accepts_focus")
	if val == lua.LNil {
		return true
	}
	return lua.LVAsBool(val)
}

// Draw runs the script's draw callback.
func (v *View) Draw(c view.Canvas, dirty geom.Rect) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.canvas = c
	defer func() { v.canvas = nil }()
	v.call("draw", v.L.GetGlobal(canvasGlobal), rectTable(v.L, dirty))
}

// MouseDown accepts the press when on_mouse_down returns a truthy value.
func (v *View) MouseDown(ev mouse.Event) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	ret, ok := v.call("on_mouse_down", mouseTable(v.L, ev))
	return ok && lua.LVAsBool(ret)
}

// MouseUp forwards to on_mouse_up.
func (v *View) MouseUp(ev mouse.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.call("on_mouse_up", mouseTable(v.L, ev))
}

// MouseDrag forwards to on_mouse_drag.
func (v *View) MouseDrag(ev mouse.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.call("on_mouse_drag", mouseTable(v.L, ev))
}

// MouseMove forwards to on_mouse_move.
func (v *View) MouseMove(ev mouse.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.call("on_mouse_move", mouseTable(v.L, ev))
}

// Scroll forwards to on_scroll.
func (v *View) Scroll(ev mouse.ScrollEvent) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.call("on_scroll", scrollTable(v.L, ev))
}

// KeyDown forwards to on_key_down.
func (v *View) KeyDown(ev key.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.call("on_key_down", keyTable(v.L, ev))
}

// KeyUp forwards to on_key_up.
func (v *View) KeyUp(ev key.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.call("on_key_up", keyTable(v.L, ev))
}

// KeyText forwards to on_text.
func (v *View) KeyText(ev key.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.call("on_text", keyTable(v.L, ev))
}

// Copy returns on_copy's result when it is a string or number.
func (v *View) Copy() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	ret, ok := v.call("on_copy")
	if !ok || !lua.LVCanConvToString(ret) {
		return ""
	}
	return lua.LVAsString(ret)
}

// Paste forwards to on_paste.
func (v *View) Paste(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.call("on_paste", lua.LString(text))
}
