package backend

import (
	"testing"
	"time"

	"github.com/dshills/pdfsketch/internal/host"
	"github.com/dshills/pdfsketch/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	_ = b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().WithForeground(core.ColorRed))
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	if got := b.GetCell(-1, 0); got != core.EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFill(t *testing.T) {
	b := NewNullBackend(80, 24)
	_ = b.Init()

	cell := core.NewCell('.')
	b.Fill(core.ScreenRect{Top: 5, Left: 10, Bottom: 10, Right: 20}, cell)

	if got := b.GetCell(15, 7); got != cell {
		t.Error("cell inside rect should be filled")
	}
	if got := b.GetCell(0, 0); got == cell {
		t.Error("cell outside rect should not be filled")
	}

	// Negative origins are clipped.
	b.Fill(core.ScreenRect{Top: -5, Left: -5, Bottom: 1, Right: 1}, core.NewCell('#'))
	if got := b.GetCell(0, 0); got.Rune != '#' {
		t.Errorf("GetCell(0,0) = %q, want '#'", got.Rune)
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(80, 24)
	_ = b.Init()

	b.SetCell(10, 10, core.NewCell('X'))
	b.Clear()

	if got := b.GetCell(10, 10); got != core.EmptyCell() {
		t.Error("clear should reset all cells")
	}
}

func TestNullBackendText(t *testing.T) {
	b := NewNullBackend(5, 2)
	_ = b.Init()

	b.SetCell(0, 1, core.NewCell('h'))
	b.SetCell(1, 1, core.NewCell('i'))

	if got := b.Text(1); got != "hi   " {
		t.Errorf("Text(1) = %q", got)
	}
	if got := b.Text(9); got != "" {
		t.Errorf("Text(9) = %q, want empty", got)
	}
}

func TestNullBackendClipboard(t *testing.T) {
	b := NewNullBackend(10, 10)
	_ = b.Init()

	b.SetClipboard("stroke data")
	b.RequestClipboard()

	ev := b.PollEvent()
	if ev.Type != EventInput || len(ev.Input) != 1 {
		t.Fatalf("event = %+v", ev)
	}
	if in := ev.Input[0]; in.Type != host.Clipboard || in.Text != "stroke data" {
		t.Errorf("input = %+v", in)
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(10, 10)
	_ = b.Init()

	b.Resize(20, 5)

	if w, h := b.Size(); w != 20 || h != 5 {
		t.Errorf("Size() = %d, %d", w, h)
	}
	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 20 || ev.Height != 5 {
		t.Errorf("event = %+v", ev)
	}
}

func TestNullBackendShutdownUnblocksPoll(t *testing.T) {
	b := NewNullBackend(10, 10)
	_ = b.Init()

	done := make(chan Event, 1)
	go func() { done <- b.PollEvent() }()

	b.Shutdown()
	b.Shutdown()

	select {
	case ev := <-done:
		if ev.Type != EventClosed {
			t.Errorf("event = %s, want closed", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent did not return after Shutdown")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventNone, "none"},
		{EventInput, "input"},
		{EventResize, "resize"},
		{EventInterrupt, "interrupt"},
		{EventClosed, "closed"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
