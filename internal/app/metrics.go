package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks paint, flush and input timing. All methods are safe for
// concurrent use; flushes are recorded from flush goroutines.
type Metrics struct {
	// Paint timing (view tree drawing)
	paintCount   atomic.Uint64
	paintTotalNs atomic.Int64
	paintMinNs   atomic.Int64
	paintMaxNs   atomic.Int64
	lastPaintNs  atomic.Int64

	// Flush timing (surface presented to the display)
	flushCount   atomic.Uint64
	flushTotalNs atomic.Int64
	asyncFlushes atomic.Uint64

	// Input handling
	inputCount   atomic.Uint64
	inputTotalNs atomic.Int64
	inputHandled atomic.Uint64

	// Config reloads
	reloads      atomic.Uint64
	reloadErrors atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),
	}
	// Initialize min to max int64 so the first paint is smaller
	m.paintMinNs.Store(1<<63 - 1)
	return m
}

// RecordPaint records how long one paint of the view tree took.
func (m *Metrics) RecordPaint(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.paintCount.Add(1)
	m.paintTotalNs.Add(ns)
	m.lastPaintNs.Store(ns)

	for {
		old := m.paintMinNs.Load()
		if ns >= old || m.paintMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.paintMaxNs.Load()
		if ns <= old || m.paintMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordFlush records a surface flush.
func (m *Metrics) RecordFlush(duration time.Duration, async bool) {
	m.flushCount.Add(1)
	m.flushTotalNs.Add(duration.Nanoseconds())
	if async {
		m.asyncFlushes.Add(1)
	}
}

// RecordInput records the dispatch of one host input event.
func (m *Metrics) RecordInput(duration time.Duration, handled bool) {
	m.inputCount.Add(1)
	m.inputTotalNs.Add(duration.Nanoseconds())
	if handled {
		m.inputHandled.Add(1)
	}
}

// RecordReload records a config reload attempt.
func (m *Metrics) RecordReload(err error) {
	m.reloads.Add(1)
	if err != nil {
		m.reloadErrors.Add(1)
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	paintCount := m.paintCount.Load()
	flushCount := m.flushCount.Load()
	inputCount := m.inputCount.Load()

	var avgPaintNs, avgFlushNs, avgInputNs int64
	if paintCount > 0 {
		avgPaintNs = m.paintTotalNs.Load() / int64(paintCount)
	}
	if flushCount > 0 {
		avgFlushNs = m.flushTotalNs.Load() / int64(flushCount)
	}
	if inputCount > 0 {
		avgInputNs = m.inputTotalNs.Load() / int64(inputCount)
	}

	minPaintNs := m.paintMinNs.Load()
	if minPaintNs == 1<<63-1 {
		minPaintNs = 0
	}

	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		PaintCount:   paintCount,
		AvgPaintNs:   avgPaintNs,
		MinPaintNs:   minPaintNs,
		MaxPaintNs:   m.paintMaxNs.Load(),
		LastPaintNs:  m.lastPaintNs.Load(),
		FlushCount:   flushCount,
		AsyncFlushes: m.asyncFlushes.Load(),
		AvgFlushNs:   avgFlushNs,
		InputCount:   inputCount,
		InputHandled: m.inputHandled.Load(),
		AvgInputNs:   avgInputNs,
		Reloads:      m.reloads.Load(),
		ReloadErrors: m.reloadErrors.Load(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.paintCount.Store(0)
	m.paintTotalNs.Store(0)
	m.paintMinNs.Store(1<<63 - 1)
	m.paintMaxNs.Store(0)
	m.lastPaintNs.Store(0)
	m.flushCount.Store(0)
	m.flushTotalNs.Store(0)
	m.asyncFlushes.Store(0)
	m.inputCount.Store(0)
	m.inputTotalNs.Store(0)
	m.inputHandled.Store(0)
	m.reloads.Store(0)
	m.reloadErrors.Store(0)
	m.startTime = time.Now()
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	PaintCount   uint64
	AvgPaintNs   int64
	MinPaintNs   int64
	MaxPaintNs   int64
	LastPaintNs  int64
	FlushCount   uint64
	AsyncFlushes uint64
	AvgFlushNs   int64
	InputCount   uint64
	InputHandled uint64
	AvgInputNs   int64
	Reloads      uint64
	ReloadErrors uint64
}

// PaintsPerSecond returns the paint rate over the uptime.
func (s MetricsSnapshot) PaintsPerSecond() float64 {
	if s.Uptime <= 0 {
		return 0
	}
	return float64(s.PaintCount) / s.Uptime.Seconds()
}

// HandledRate returns the percentage of input events a view consumed.
func (s MetricsSnapshot) HandledRate() float64 {
	if s.InputCount == 0 {
		return 0
	}
	return float64(s.InputHandled) / float64(s.InputCount) * 100
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
