// Package backend provides the display backends a surface paints into and
// the source of raw host input events.
package backend

import (
	"sync"

	"github.com/dshills/pdfsketch/internal/host"
	"github.com/dshills/pdfsketch/internal/renderer/core"
)

// EventType identifies the type of backend event.
type EventType int

const (
	// EventNone carries nothing and should be skipped.
	EventNone EventType = iota
	// EventInput carries one or more raw host input events.
	EventInput
	// EventResize reports new display dimensions in cells.
	EventResize
	// EventInterrupt wakes a poller without input.
	EventInterrupt
	// EventClosed means the backend has shut down; polling must stop.
	EventClosed
)

// String returns a string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventInput:
		return "input"
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	case EventClosed:
		return "closed"
	default:
		return "none"
	}
}

// Event is one backend event. A single terminal event may expand into
// several host events (a key press yields key-down, char and key-up).
type Event struct {
	Type EventType

	// Input holds the host events for EventInput.
	Input []host.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// Backend defines the interface for display backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	// A blocked PollEvent returns EventClosed.
	Shutdown()

	// Size returns the current dimensions in cells.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the display are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given position.
	// Returns an empty cell for positions outside the display.
	GetCell(x, y int) core.Cell

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire display with the default style.
	Clear()

	// Show flushes pending changes to the display. It is safe to call
	// from a goroutine other than the one drawing.
	Show()

	// PollEvent waits for and returns the next event.
	// This is a blocking call.
	PollEvent() Event

	// SetClipboard stores text on the system clipboard.
	SetClipboard(text string)

	// RequestClipboard asks for the clipboard contents, which arrive later
	// as a host.Clipboard input event.
	RequestClipboard()
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]core.Cell
	shows         int
	clipboard     string
	events        chan Event
	closed        chan struct{}
	closeOnce     sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
		closed: make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.allocate()
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() {
	b.closeOnce.Do(func() { close(b.closed) })
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x >= 0 && x < b.width && y >= 0 && y < b.height && b.cells != nil {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x >= 0 && x < b.width && y >= 0 && y < b.height && b.cells != nil {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cells == nil {
		return
	}
	for y := max(rect.Top, 0); y < rect.Bottom && y < b.height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < b.width; x++ {
			b.cells[y][x] = cell
		}
	}
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.shows++
}

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.shows
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.closed:
		return Event{Type: EventClosed}
	}
}

// PostEvent queues an event for PollEvent. It never blocks; events are
// dropped when the queue is full.
func (b *NullBackend) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
	}
}

// PostInput queues host input events as a single EventInput.
func (b *NullBackend) PostInput(events ...host.Event) {
	b.PostEvent(Event{Type: EventInput, Input: events})
}

func (b *NullBackend) SetClipboard(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clipboard = text
}

// Clipboard returns the stored clipboard text.
func (b *NullBackend) Clipboard() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.clipboard
}

func (b *NullBackend) RequestClipboard() {
	b.PostInput(host.Event{Type: host.Clipboard, Text: b.Clipboard()})
}

// Resize simulates a display resize, clearing its contents and queueing an
// EventResize.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.allocate()
	b.mu.Unlock()

	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// Text returns row y as a string, for assertions.
func (b *NullBackend) Text(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= len(b.cells) {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		runes = append(runes, c.Rune)
	}
	return string(runes)
}
