package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/pdfsketch/internal/renderer/core"
)

func newSimTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(sim, DefaultTranslatorConfig())
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	t.Cleanup(term.Shutdown)
	sim.SetSize(w, h)
	return term, sim
}

func TestTerminalSetAndGetCell(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 5)

	style := core.DefaultStyle().WithForeground(core.ColorRed).Bold()
	term.SetCell(2, 1, core.NewStyledCell('Z', style))
	term.Show()

	got := term.GetCell(2, 1)
	if got.Rune != 'Z' {
		t.Errorf("rune = %q, want 'Z'", got.Rune)
	}
	if got.Style.Foreground != core.ColorRed {
		t.Errorf("foreground = %v, want red", got.Style.Foreground)
	}
	if !got.Style.Attributes.Has(core.AttrBold) {
		t.Error("bold attribute lost")
	}
}

func TestTerminalFillClips(t *testing.T) {
	term, _ := newSimTerminal(t, 4, 2)

	term.Fill(core.ScreenRect{Top: -1, Left: -1, Bottom: 10, Right: 10}, core.NewCell('#'))

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if got := term.GetCell(x, y).Rune; got != '#' {
				t.Errorf("cell (%d,%d) = %q, want '#'", x, y, got)
			}
		}
	}
}

func TestTerminalSize(t *testing.T) {
	term, _ := newSimTerminal(t, 30, 12)

	if w, h := term.Size(); w != 30 || h != 12 {
		t.Errorf("Size() = %d, %d; want 30, 12", w, h)
	}
}

func TestTerminalPollTranslates(t *testing.T) {
	term, sim := newSimTerminal(t, 10, 10)

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	// Skip any startup resize events.
	for i := 0; i < 5; i++ {
		ev := term.PollEvent()
		if ev.Type == EventInput {
			if len(ev.Input) != 3 || ev.Input[1].Text != "a" {
				t.Errorf("input = %+v", ev.Input)
			}
			return
		}
	}
	t.Fatal("no input event polled")
}
