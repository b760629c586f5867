package app

import (
	"errors"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	snapshot := m.Snapshot()
	if snapshot.PaintCount != 0 {
		t.Errorf("expected 0 paints, got %d", snapshot.PaintCount)
	}
	if snapshot.MinPaintNs != 0 {
		t.Errorf("expected 0 min paint time (sentinel handled), got %d", snapshot.MinPaintNs)
	}
}

func TestMetrics_RecordPaint(t *testing.T) {
	m := NewMetrics()

	m.RecordPaint(10 * time.Millisecond)
	m.RecordPaint(20 * time.Millisecond)
	m.RecordPaint(6 * time.Millisecond)

	s := m.Snapshot()
	if s.PaintCount != 3 {
		t.Errorf("expected 3 paints, got %d", s.PaintCount)
	}
	if s.MinPaintNs != int64(6*time.Millisecond) {
		t.Errorf("expected min 6ms, got %d ns", s.MinPaintNs)
	}
	if s.MaxPaintNs != int64(20*time.Millisecond) {
		t.Errorf("expected max 20ms, got %d ns", s.MaxPaintNs)
	}
	if s.LastPaintNs != int64(6*time.Millisecond) {
		t.Errorf("expected last 6ms, got %d ns", s.LastPaintNs)
	}
	if s.AvgPaintNs != int64(12*time.Millisecond) {
		t.Errorf("expected avg 12ms, got %d ns", s.AvgPaintNs)
	}
}

func TestMetrics_RecordFlush(t *testing.T) {
	m := NewMetrics()
	m.RecordFlush(2*time.Millisecond, false)
	m.RecordFlush(4*time.Millisecond, true)

	s := m.Snapshot()
	if s.FlushCount != 2 || s.AsyncFlushes != 1 {
		t.Errorf("flushes = %d (async %d), want 2 (1)", s.FlushCount, s.AsyncFlushes)
	}
	if s.AvgFlushNs != int64(3*time.Millisecond) {
		t.Errorf("expected avg 3ms, got %d ns", s.AvgFlushNs)
	}
}

func TestMetrics_RecordInput(t *testing.T) {
	m := NewMetrics()
	m.RecordInput(time.Millisecond, true)
	m.RecordInput(time.Millisecond, false)
	m.RecordInput(time.Millisecond, true)
	m.RecordInput(time.Millisecond, true)

	s := m.Snapshot()
	if s.InputCount != 4 || s.InputHandled != 3 {
		t.Errorf("inputs = %d handled %d", s.InputCount, s.InputHandled)
	}
	if got := s.HandledRate(); got != 75 {
		t.Errorf("HandledRate() = %v, want 75", got)
	}
}

func TestMetrics_RecordReload(t *testing.T) {
	m := NewMetrics()
	m.RecordReload(nil)
	m.RecordReload(errors.New("bad"))

	s := m.Snapshot()
	if s.Reloads != 2 || s.ReloadErrors != 1 {
		t.Errorf("reloads = %d errors %d", s.Reloads, s.ReloadErrors)
	}
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.RecordPaint(time.Millisecond)
	m.RecordInput(time.Millisecond, true)
	m.Reset()

	s := m.Snapshot()
	if s.PaintCount != 0 || s.InputCount != 0 || s.MinPaintNs != 0 {
		t.Errorf("Reset() left %+v", s)
	}
}

func TestMetricsSnapshot_Rates(t *testing.T) {
	var s MetricsSnapshot
	if s.PaintsPerSecond() != 0 || s.HandledRate() != 0 {
		t.Error("empty snapshot rates should be zero")
	}
	s = MetricsSnapshot{Uptime: 2 * time.Second, PaintCount: 10}
	if got := s.PaintsPerSecond(); got != 5 {
		t.Errorf("PaintsPerSecond() = %v, want 5", got)
	}
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				m.RecordPaint(time.Duration(j) * time.Microsecond)
				m.RecordFlush(time.Microsecond, true)
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
	if s := m.Snapshot(); s.PaintCount != 400 || s.FlushCount != 400 {
		t.Errorf("counts = %d/%d, want 400/400", s.PaintCount, s.FlushCount)
	}
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(time.Millisecond)
	if timer.Elapsed() < time.Millisecond {
		t.Error("Elapsed() shorter than sleep")
	}
}
