package backend

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/host"
	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/input/mouse"
)

// Translator turns tcell events into host events. Terminals report the
// set of buttons currently held rather than presses and releases, so the
// translator diffs successive snapshots and counts clicks itself.
//
// A Translator is not safe for concurrent use; the poll goroutine owns it.
type Translator struct {
	buttons     *mouse.ButtonTracker
	clicks      *mouse.ClickTracker
	scrollLines float64

	pasting bool
	paste   strings.Builder
}

// TranslatorConfig configures click counting and wheel scaling.
type TranslatorConfig struct {
	DoubleClickTime     time.Duration
	DoubleClickDistance float64
	ScrollLines         int
}

// DefaultTranslatorConfig returns the default translator settings.
func DefaultTranslatorConfig() TranslatorConfig {
	return TranslatorConfig{
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 4,
		ScrollLines:         3,
	}
}

// NewTranslator creates a translator.
func NewTranslator(cfg TranslatorConfig) *Translator {
	if cfg.ScrollLines < 1 {
		cfg.ScrollLines = 1
	}
	return &Translator{
		buttons:     mouse.NewButtonTracker(),
		clicks:      mouse.NewClickTracker(cfg.DoubleClickTime, cfg.DoubleClickDistance),
		scrollLines: float64(cfg.ScrollLines),
	}
}

// Translate converts one tcell event.
func (t *Translator) Translate(ev tcell.Event) Event {
	switch e := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		return input(t.translateKey(e))
	case *tcell.EventMouse:
		return input(t.translateMouse(e))
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventPaste:
		return input(t.translatePaste(e))
	case *tcell.EventClipboard:
		return input([]host.Event{{Type: host.Clipboard, Text: string(e.Data())}})
	case *tcell.EventFocus:
		return input([]host.Event{{Type: host.Focus, Focused: e.Focused}})
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}
	default:
		return Event{Type: EventNone}
	}
}

func input(events []host.Event) Event {
	if len(events) == 0 {
		return Event{Type: EventNone}
	}
	return Event{Type: EventInput, Input: events}
}

// translatePaste collects bracketed paste content and emits it as a single
// clipboard event when the paste ends.
func (t *Translator) translatePaste(e *tcell.EventPaste) []host.Event {
	if e.Start() {
		t.pasting = true
		t.paste.Reset()
		return nil
	}
	if !t.pasting {
		return nil
	}
	t.pasting = false
	text := t.paste.String()
	t.paste.Reset()
	return []host.Event{{Type: host.Clipboard, Text: text}}
}

func (t *Translator) translateKey(e *tcell.EventKey) []host.Event {
	if t.pasting {
		switch e.Key() {
		case tcell.KeyRune:
			t.paste.WriteRune(e.Rune())
		case tcell.KeyEnter:
			t.paste.WriteByte('\n')
		case tcell.KeyTab:
			t.paste.WriteByte('\t')
		}
		return nil
	}

	mods := convertMod(e.Modifiers())
	code, text := keyCode(e, &mods)
	if code == key.CodeNone && text == "" {
		return nil
	}

	hm := host.FromKeyboard(mods)
	var out []host.Event
	if code != key.CodeNone {
		out = append(out, host.Event{Type: host.KeyDown, KeyCode: code, Modifiers: hm})
	}
	if text != "" {
		out = append(out, host.Event{Type: host.Char, Text: text, Modifiers: hm})
	}
	if code != key.CodeNone {
		out = append(out, host.Event{Type: host.KeyUp, KeyCode: code, Modifiers: hm})
	}
	return out
}

// ctrlKeys maps tcell control keys to the letter pressed with Ctrl.
var ctrlKeys = map[tcell.Key]rune{
	tcell.KeyCtrlA: 'A', tcell.KeyCtrlB: 'B', tcell.KeyCtrlC: 'C', tcell.KeyCtrlD: 'D',
	tcell.KeyCtrlE: 'E', tcell.KeyCtrlF: 'F', tcell.KeyCtrlG: 'G', tcell.KeyCtrlH: 'H',
	tcell.KeyCtrlI: 'I', tcell.KeyCtrlJ: 'J', tcell.KeyCtrlK: 'K', tcell.KeyCtrlL: 'L',
	tcell.KeyCtrlM: 'M', tcell.KeyCtrlN: 'N', tcell.KeyCtrlO: 'O', tcell.KeyCtrlP: 'P',
	tcell.KeyCtrlQ: 'Q', tcell.KeyCtrlR: 'R', tcell.KeyCtrlS: 'S', tcell.KeyCtrlT: 'T',
	tcell.KeyCtrlU: 'U', tcell.KeyCtrlV: 'V', tcell.KeyCtrlW: 'W', tcell.KeyCtrlX: 'X',
	tcell.KeyCtrlY: 'Y', tcell.KeyCtrlZ: 'Z',
}

// keyCode returns the virtual key code and the text a key event produces.
// Control-letter keys gain the Ctrl modifier.
func keyCode(e *tcell.EventKey, mods *key.Modifier) (key.Code, string) {
	switch e.Key() {
	case tcell.KeyRune:
		r := e.Rune()
		code, _ := key.LetterCode(r)
		if r == ' ' {
			code = key.CodeSpace
		}
		if mods.HasCtrl() || mods.HasAlt() || mods.HasMeta() {
			return code, ""
		}
		return code, string(r)
	case tcell.KeyEnter:
		return key.CodeEnter, ""
	case tcell.KeyTab:
		return key.CodeTab, ""
	case tcell.KeyBacktab:
		*mods = mods.With(key.ModShift)
		return key.CodeTab, ""
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.CodeBackspace, ""
	case tcell.KeyEscape:
		return key.CodeEscape, ""
	case tcell.KeyDelete:
		return key.CodeDelete, ""
	case tcell.KeyInsert:
		return key.CodeInsert, ""
	case tcell.KeyHome:
		return key.CodeHome, ""
	case tcell.KeyEnd:
		return key.CodeEnd, ""
	case tcell.KeyPgUp:
		return key.CodePageUp, ""
	case tcell.KeyPgDn:
		return key.CodePageDown, ""
	case tcell.KeyUp:
		return key.CodeUp, ""
	case tcell.KeyDown:
		return key.CodeDown, ""
	case tcell.KeyLeft:
		return key.CodeLeft, ""
	case tcell.KeyRight:
		return key.CodeRight, ""
	}

	if k := e.Key(); k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		code, _ := key.FunctionCode(int(k-tcell.KeyF1) + 1)
		return code, ""
	}
	if r, ok := ctrlKeys[e.Key()]; ok {
		*mods = mods.With(key.ModCtrl)
		code, _ := key.LetterCode(r)
		return code, ""
	}
	return key.CodeNone, ""
}

func (t *Translator) translateMouse(e *tcell.EventMouse) []host.Event {
	x, y := e.Position()
	btns := e.Buttons()
	mods := host.FromKeyboard(convertMod(e.Modifiers()))
	pos := geom.Pt(float64(x), float64(y))

	var out []host.Event
	if dx, dy := wheelDelta(btns); dx != 0 || dy != 0 {
		out = append(out, host.Event{
			Type:      host.Wheel,
			X:         x,
			Y:         y,
			DeltaX:    dx * t.scrollLines,
			DeltaY:    dy * t.scrollLines,
			Modifiers: mods,
		})
	}

	transition, button := t.buttons.Update(pos, convertMouseButton(btns))
	switch transition {
	case mouse.TransitionPress:
		count := t.clicks.Record(pos, e.When())
		out = append(out, host.Event{
			Type:       host.MouseDown,
			X:          x,
			Y:          y,
			Button:     button,
			ClickCount: count,
			Modifiers:  mods | buttonModifier(button),
		})
	case mouse.TransitionRelease:
		out = append(out, host.Event{
			Type:       host.MouseUp,
			X:          x,
			Y:          y,
			Button:     button,
			ClickCount: t.clicks.Count(),
			Modifiers:  mods,
		})
	default:
		if len(out) > 0 && button == mouse.ButtonNone {
			// Wheel ticks report position but no motion.
			break
		}
		out = append(out, host.Event{
			Type:      host.MouseMove,
			X:         x,
			Y:         y,
			Button:    button,
			Modifiers: mods | buttonModifier(button),
		})
	}
	return out
}

// wheelDelta returns the scroll direction encoded in a button mask, one
// unit per axis. Positive Y scrolls toward the end of the content.
func wheelDelta(b tcell.ButtonMask) (dx, dy float64) {
	if b&tcell.WheelUp != 0 {
		dy--
	}
	if b&tcell.WheelDown != 0 {
		dy++
	}
	if b&tcell.WheelLeft != 0 {
		dx--
	}
	if b&tcell.WheelRight != 0 {
		dx++
	}
	return dx, dy
}

// convertMouseButton converts a tcell button mask to the single button the
// tracker follows. Wheel bits are ignored.
func convertMouseButton(b tcell.ButtonMask) mouse.Button {
	switch {
	case b&tcell.ButtonPrimary != 0:
		return mouse.ButtonLeft
	case b&tcell.ButtonMiddle != 0:
		return mouse.ButtonMiddle
	case b&tcell.ButtonSecondary != 0:
		return mouse.ButtonRight
	default:
		return mouse.ButtonNone
	}
}

func buttonModifier(b mouse.Button) host.Modifiers {
	switch b {
	case mouse.ButtonLeft:
		return host.ModLeftButtonDown
	case mouse.ButtonMiddle:
		return host.ModMiddleButtonDown
	case mouse.ButtonRight:
		return host.ModRightButtonDown
	default:
		return 0
	}
}

// convertMod converts a tcell modifier mask to normalized modifiers.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}
