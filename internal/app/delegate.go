package app

import (
	"sync"

	"github.com/dshills/pdfsketch/internal/logging"
	"github.com/dshills/pdfsketch/internal/renderer/backend"
	"github.com/dshills/pdfsketch/internal/root"
	"github.com/dshills/pdfsketch/internal/view"
)

// surfaceDelegate provides the coordinator's surface and clipboard over a
// display backend. scale and async are only touched from queue tasks.
type surfaceDelegate struct {
	backend backend.Backend
	poster  root.Poster
	metrics *Metrics
	log     *logging.Logger

	scale float64
	async bool

	flushes sync.WaitGroup
}

func newSurfaceDelegate(b backend.Backend, poster root.Poster, metrics *Metrics, log *logging.Logger) *surfaceDelegate {
	return &surfaceDelegate{
		backend: b,
		poster:  poster,
		metrics: metrics,
		log:     log,
		scale:   1,
	}
}

// configure sets the logical size of a device cell and the flush mode.
func (d *surfaceDelegate) configure(scale float64, async bool) {
	if scale > 0 {
		d.scale = scale
	}
	d.async = async
}

// AllocateSurface returns a surface over the whole backend, or false while
// the backend has no area.
func (d *surfaceDelegate) AllocateSurface() (view.Canvas, bool) {
	w, h := d.backend.Size()
	if w <= 0 || h <= 0 {
		return nil, false
	}
	return backend.NewSurface(d.backend, d.scale), true
}

// Present shows the painted cells. In async mode Show runs on its own
// goroutine and done is posted back to the queue once it returns.
func (d *surfaceDelegate) Present(_ view.Canvas, done func()) bool {
	if !d.async {
		timer := StartTimer()
		d.backend.Show()
		d.metrics.RecordFlush(timer.Elapsed(), false)
		return false
	}

	d.flushes.Add(1)
	go func() {
		defer d.flushes.Done()
		timer := StartTimer()
		d.backend.Show()
		d.metrics.RecordFlush(timer.Elapsed(), true)
		d.poster.Post(done)
	}()
	return true
}

func (d *surfaceDelegate) CopyToClipboard(text string) {
	d.log.Debug("copy %d bytes", len(text))
	d.backend.SetClipboard(text)
}

func (d *surfaceDelegate) RequestPaste() {
	d.backend.RequestClipboard()
}

// wait blocks until every asynchronous flush has finished.
func (d *surfaceDelegate) wait() {
	d.flushes.Wait()
}
