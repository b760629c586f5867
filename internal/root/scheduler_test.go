package root

import (
	"testing"
	"time"

	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/loop"
	"github.com/dshills/pdfsketch/internal/view"
)

// newAttached returns a 100x100 coordinator with a delegate attached and
// the attach-time paint already run.
func newAttached(t *testing.T, d *fakeDelegate, opts ...Option) (*Coordinator, *loop.Queue) {
	t.Helper()
	q := loop.New()
	c := New(q, opts...)
	c.Resize(geom.Sz(100, 100))
	c.SetDelegate(d)
	q.RunPending()
	if d.async {
		d.completeFlush()
	}
	d.allocs, d.presents = 0, 0
	c.stats = Stats{}
	if c.PaintState() != StateIdle {
		t.Fatalf("setup state = %s, want idle", c.PaintState())
	}
	return c, q
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateScheduled, "scheduled"},
		{StatePainting, "painting"},
		{StateFlushing, "flushing"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestRequestsCoalesceIntoOnePaint(t *testing.T) {
	d := &fakeDelegate{}
	c, q := newAttached(t, d)

	for i := 0; i < 5; i++ {
		c.SetNeedsDisplayInRect(geom.R(float64(i), 0, 1, 1))
	}

	if q.Len() != 1 {
		t.Fatalf("queued tasks = %d, want 1", q.Len())
	}
	if c.PaintState() != StateScheduled {
		t.Errorf("state = %s, want scheduled", c.PaintState())
	}

	q.RunPending()

	if d.allocs != 1 || d.presents != 1 {
		t.Errorf("allocs/presents = %d/%d, want 1/1", d.allocs, d.presents)
	}
	if c.PaintState() != StateIdle {
		t.Errorf("state = %s, want idle", c.PaintState())
	}
	if q.Len() != 0 {
		t.Errorf("queued tasks = %d, want 0", q.Len())
	}
	stats := c.Stats()
	if stats.Requests != 5 || stats.Coalesced != 4 || stats.Paints != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestNoPaintWhileFlushing(t *testing.T) {
	d := &fakeDelegate{async: true}
	c, q := newAttached(t, d)

	c.SetNeedsDisplay()
	q.RunPending()
	if c.PaintState() != StateFlushing {
		t.Fatalf("state = %s, want flushing", c.PaintState())
	}

	for i := 0; i < 3; i++ {
		c.SetNeedsDisplayInRect(geom.R(0, 0, 10, 10))
	}
	if q.Len() != 0 {
		t.Errorf("request during flush posted %d tasks", q.Len())
	}
	if d.allocs != 1 {
		t.Errorf("allocs = %d, want 1 while flushing", d.allocs)
	}

	// Completion repaints right away, without a queue turn.
	d.completeFlush()
	if d.allocs != 2 || d.presents != 2 {
		t.Errorf("allocs/presents = %d/%d, want 2/2", d.allocs, d.presents)
	}
	if c.PaintState() != StateFlushing {
		t.Errorf("state = %s, want flushing", c.PaintState())
	}
	if c.Stats().ImmediateRepaints != 1 {
		t.Errorf("ImmediateRepaints = %d, want 1", c.Stats().ImmediateRepaints)
	}

	d.completeFlush()
	if c.PaintState() != StateIdle {
		t.Errorf("state = %s, want idle", c.PaintState())
	}
	if d.allocs != 2 {
		t.Errorf("allocs = %d, want 2 after clean flush", d.allocs)
	}
}

// A request whose rect is empty or off the surface adds no dirty region but
// still owes a paint, whatever the pipeline is doing when it arrives.
func TestRequestOutsideSurfaceStillPaints(t *testing.T) {
	rects := []struct {
		name string
		r    geom.Rect
	}{
		{"offscreen", geom.R(500, 500, 10, 10)},
		{"empty", geom.Rect{}},
	}

	for _, rc := range rects {
		t.Run(rc.name+"/idle", func(t *testing.T) {
			d := &fakeDelegate{}
			c, q := newAttached(t, d)

			c.SetNeedsDisplayInRect(rc.r)
			if !c.RedrawOwed() {
				t.Error("request should owe a redraw")
			}
			q.RunPending()

			if d.presents != 1 {
				t.Errorf("presents = %d, want 1", d.presents)
			}
			if c.RedrawOwed() {
				t.Error("nothing should be owed after the paint")
			}
		})

		t.Run(rc.name+"/flushing", func(t *testing.T) {
			d := &fakeDelegate{async: true}
			c, q := newAttached(t, d)

			c.SetNeedsDisplay()
			q.RunPending()
			if c.PaintState() != StateFlushing {
				t.Fatalf("state = %s, want flushing", c.PaintState())
			}

			c.SetNeedsDisplayInRect(rc.r)
			if !c.RedrawOwed() {
				t.Error("request during flush should owe a redraw")
			}
			d.completeFlush()

			if d.presents != 2 {
				t.Errorf("presents = %d, want 2", d.presents)
			}
			if c.Stats().ImmediateRepaints != 1 {
				t.Errorf("ImmediateRepaints = %d, want 1", c.Stats().ImmediateRepaints)
			}
			d.completeFlush()
			if c.PaintState() != StateIdle || c.RedrawOwed() {
				t.Errorf("state = %s, owed = %v; want idle, false", c.PaintState(), c.RedrawOwed())
			}
		})

		t.Run(rc.name+"/painting", func(t *testing.T) {
			d := &fakeDelegate{}
			c, q := newAttached(t, d)

			content := newRecorder(geom.Rect{}, false)
			fired := false
			content.onDraw = func(*recorder) {
				if !fired {
					fired = true
					c.SetNeedsDisplayInRect(rc.r)
				}
			}
			c.SetContent(content)
			q.RunPending()

			if c.PaintState() != StateScheduled {
				t.Fatalf("state = %s, want scheduled", c.PaintState())
			}
			q.RunPending()
			if d.presents != 2 {
				t.Errorf("presents = %d, want 2", d.presents)
			}
		})
	}
}

func TestFlushCompleteOutsideFlushIgnored(t *testing.T) {
	d := &fakeDelegate{}
	c, _ := newAttached(t, d)

	c.flushComplete()

	if c.PaintState() != StateIdle {
		t.Errorf("state = %s, want idle", c.PaintState())
	}
	if c.Stats().IgnoredFlushes != 1 {
		t.Errorf("IgnoredFlushes = %d, want 1", c.Stats().IgnoredFlushes)
	}
	if d.allocs != 0 {
		t.Errorf("allocs = %d, want 0", d.allocs)
	}
}

func TestRequestWithoutDelegate(t *testing.T) {
	q := loop.New()
	c := New(q)
	c.Resize(geom.Sz(100, 100))

	c.SetNeedsDisplayInRect(geom.R(0, 0, 10, 10))

	if q.Len() != 0 {
		t.Errorf("queued tasks = %d, want 0", q.Len())
	}
	if c.PaintState() != StateIdle {
		t.Errorf("state = %s, want idle", c.PaintState())
	}
	if c.Stats().Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", c.Stats().Skipped)
	}
}

func TestAttachRequestsRedraw(t *testing.T) {
	q := loop.New()
	c := New(q)
	c.Resize(geom.Sz(50, 50))
	d := &fakeDelegate{}

	c.SetDelegate(d)
	if c.PaintState() != StateScheduled {
		t.Fatalf("state = %s, want scheduled", c.PaintState())
	}
	q.RunPending()
	if d.presents != 1 {
		t.Errorf("presents = %d, want 1", d.presents)
	}
}

func TestNoSurfaceKeepsRegionAndRetries(t *testing.T) {
	d := &fakeDelegate{}
	c, q := newAttached(t, d)

	d.noSurface = true
	c.SetNeedsDisplayInRect(geom.R(0, 0, 10, 10))
	q.RunPending()

	if c.PaintState() != StateIdle {
		t.Errorf("state = %s, want idle", c.PaintState())
	}
	if !c.RedrawOwed() {
		t.Error("region should be kept after an abandoned paint")
	}
	if d.presents != 0 {
		t.Errorf("presents = %d, want 0", d.presents)
	}
	if c.Stats().AbortedPaints != 1 {
		t.Errorf("AbortedPaints = %d, want 1", c.Stats().AbortedPaints)
	}

	d.noSurface = false
	c.SetNeedsDisplayInRect(geom.R(50, 50, 1, 1))
	q.RunPending()

	if d.presents != 1 {
		t.Errorf("presents = %d, want 1 after retry", d.presents)
	}
	if c.RedrawOwed() {
		t.Error("nothing should be owed after a successful paint")
	}
}

func TestDetachWhileScheduled(t *testing.T) {
	d := &fakeDelegate{}
	c, q := newAttached(t, d)

	c.SetNeedsDisplay()
	c.SetDelegate(nil)
	q.RunPending()

	if d.allocs != 0 {
		t.Errorf("allocs = %d, want 0 after detach", d.allocs)
	}
	if c.PaintState() != StateIdle {
		t.Errorf("state = %s, want idle", c.PaintState())
	}
}

func TestDetachDropsPendingRegions(t *testing.T) {
	d := &fakeDelegate{noSurface: true}
	c, q := newAttached(t, d)

	c.SetNeedsDisplayInRect(geom.R(0, 0, 10, 10))
	q.RunPending()
	if !c.RedrawOwed() {
		t.Fatal("abandoned paint should keep the redraw owed")
	}

	c.SetDelegate(nil)

	if c.RedrawOwed() {
		t.Error("detach should drop the owed redraw")
	}
	if stats := c.DirtyStats(); stats.RegionCount != 0 || stats.FullRedraw {
		t.Errorf("DirtyStats() = %+v, want clean", stats)
	}
}

func TestCoalesceThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		want      geom.Rect
	}{
		{"below threshold paints the rect", 0.5, geom.R(0, 0, 40, 40)},
		{"above threshold paints everything", 0.1, geom.R(0, 0, 100, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDelegate{}
			c, q := newAttached(t, d, WithPartialRedraw(true), WithCoalesceThreshold(tt.threshold))
			content := newRecorder(geom.Rect{}, false)
			c.SetContent(content)
			q.RunPending()
			content.draws = nil

			// 16% of the surface.
			c.SetNeedsDisplayInRect(geom.R(0, 0, 40, 40))
			if got := c.DirtyStats().CoalThreshold; got != tt.threshold {
				t.Errorf("CoalThreshold = %v, want %v", got, tt.threshold)
			}
			q.RunPending()

			if len(content.draws) != 1 || content.draws[0] != tt.want {
				t.Errorf("draws = %v, want [%v]", content.draws, tt.want)
			}
		})
	}
}

func TestSetCoalesceThreshold(t *testing.T) {
	c, _ := newAttached(t, &fakeDelegate{})

	c.SetCoalesceThreshold(0.25)
	if got := c.DirtyStats().CoalThreshold; got != 0.25 {
		t.Errorf("CoalThreshold = %v, want 0.25", got)
	}
	c.SetCoalesceThreshold(3)
	if got := c.DirtyStats().CoalThreshold; got != 1 {
		t.Errorf("CoalThreshold = %v, want 1", got)
	}
}

func TestInvalidateDuringDrawSync(t *testing.T) {
	d := &fakeDelegate{}
	c, q := newAttached(t, d)

	content := newRecorder(geom.Rect{}, false)
	fired := false
	content.onDraw = func(v *recorder) {
		if !fired {
			fired = true
			view.SetNeedsDisplay(v)
		}
	}
	c.SetContent(content)
	q.RunPending()

	if d.presents != 1 {
		t.Fatalf("presents = %d, want 1", d.presents)
	}
	if c.PaintState() != StateScheduled || q.Len() != 1 {
		t.Fatalf("state = %s, queued = %d; want scheduled, 1", c.PaintState(), q.Len())
	}

	q.RunPending()
	if d.presents != 2 {
		t.Errorf("presents = %d, want 2", d.presents)
	}
	if c.PaintState() != StateIdle {
		t.Errorf("state = %s, want idle", c.PaintState())
	}
}

func TestInvalidateDuringDrawAsync(t *testing.T) {
	d := &fakeDelegate{async: true}
	c, q := newAttached(t, d)

	content := newRecorder(geom.Rect{}, false)
	fired := false
	content.onDraw = func(v *recorder) {
		if !fired {
			fired = true
			view.SetNeedsDisplay(v)
			if c.PaintState() != StatePainting {
				t.Errorf("state during draw = %s, want painting", c.PaintState())
			}
		}
	}
	c.SetContent(content)
	q.RunPending()

	if q.Len() != 0 {
		t.Errorf("request during draw posted %d tasks", q.Len())
	}
	if c.PaintState() != StateFlushing {
		t.Fatalf("state = %s, want flushing", c.PaintState())
	}

	d.completeFlush()
	if d.presents != 2 {
		t.Errorf("presents = %d, want 2", d.presents)
	}
}

func TestResizeFillsContent(t *testing.T) {
	d := &fakeDelegate{}
	c, q := newAttached(t, d)
	content := newRecorder(geom.Rect{}, false)
	c.SetContent(content)

	c.Resize(geom.Sz(300, 120))

	if content.Frame() != geom.R(0, 0, 300, 120) {
		t.Errorf("content frame = %v", content.Frame())
	}
	if c.Bounds() != geom.R(0, 0, 300, 120) {
		t.Errorf("bounds = %v", c.Bounds())
	}
	q.RunPending()
	if n := len(content.draws); n != 1 || content.draws[0] != geom.R(0, 0, 300, 120) {
		t.Errorf("draws = %v", content.draws)
	}
}

func TestPartialRedraw(t *testing.T) {
	d := &fakeDelegate{}
	c, q := newAttached(t, d, WithPartialRedraw(true))
	content := newRecorder(geom.Rect{}, false)
	c.SetContent(content)
	q.RunPending()
	content.draws = nil

	c.SetNeedsDisplayInRect(geom.R(10, 10, 5, 5))
	q.RunPending()

	if len(content.draws) != 1 || content.draws[0] != geom.R(10, 10, 5, 5) {
		t.Errorf("draws = %v, want only the invalidated rect", content.draws)
	}
}

func TestPaintObserver(t *testing.T) {
	d := &fakeDelegate{}
	var observed []time.Duration
	c, q := newAttached(t, d, WithPaintObserver(func(dur time.Duration) {
		observed = append(observed, dur)
	}))
	observed = nil

	c.SetNeedsDisplay()
	q.RunPending()

	if len(observed) != 1 {
		t.Errorf("observer calls = %d, want 1", len(observed))
	}
}

func TestCoordinatorID(t *testing.T) {
	a := New(loop.New())
	b := New(loop.New())
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("ids = %q, %q; want distinct non-empty", a.ID(), b.ID())
	}
}
