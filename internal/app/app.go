// Package app provides the main application structure for pdfsketch. It
// wires a display backend, the host task queue and the root coordinator
// together and manages the application lifecycle.
package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dshills/pdfsketch/internal/config"
	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/logging"
	"github.com/dshills/pdfsketch/internal/loop"
	"github.com/dshills/pdfsketch/internal/renderer/backend"
	"github.com/dshills/pdfsketch/internal/root"
	"github.com/dshills/pdfsketch/internal/script"
	"github.com/dshills/pdfsketch/internal/view"
	"github.com/dshills/pdfsketch/internal/widget"
)

// Application is the central coordinator for all pdfsketch components.
// Everything except Run, Shutdown and the accessors runs on the task queue.
type Application struct {
	mu sync.Mutex

	// Core infrastructure
	config  *config.Config
	log     *logging.Logger
	metrics *Metrics
	watcher *config.Watcher

	// Host side
	backend  backend.Backend
	queue    *loop.Queue
	delegate *surfaceDelegate

	// View tree
	coord    *root.Coordinator
	panel    *widget.Panel
	status   *widget.Label
	main     view.View
	scribble *widget.Scribble
	script   *script.View

	scale   float64
	quitKey key.Shortcut

	// State
	running atomic.Bool
	cancel  context.CancelFunc

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// Config is the initial configuration. Nil means config.Default().
	Config *config.Config

	// ConfigPath is watched for changes when set.
	ConfigPath string

	// Overrides is reapplied to every reloaded configuration before it is
	// validated, so environment and flag settings keep precedence over
	// the file.
	Overrides func(*config.Config)

	// Backend is the display backend. Required.
	Backend backend.Backend

	// Logger receives application logs. Nil discards them.
	Logger *logging.Logger

	// Content replaces the default drawing view above the status row.
	Content view.View
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, &InitError{Component: "backend", Err: ErrNoBackend}
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NullLogger
	}

	app := &Application{
		opts:    opts,
		backend: opts.Backend,
		queue:   loop.New(),
		metrics: NewMetrics(),
		quitKey: key.MustParseShortcut("Ctrl+Q"),
	}

	if err := newBootstrapper(app, opts).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Run initializes the backend and processes events until Ctrl+Q, a closed
// backend, Shutdown, or cancellation of ctx. It returns nil on a normal
// exit.
func (app *Application) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.mu.Lock()
	if app.running.Load() {
		app.mu.Unlock()
		return ErrAlreadyRunning
	}
	app.running.Store(true)
	app.cancel = cancel
	app.mu.Unlock()

	defer func() {
		app.mu.Lock()
		app.running.Store(false)
		app.cancel = nil
		app.mu.Unlock()
	}()

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}

	app.queue.Post(app.attach)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.pollEvents(ctx)
	}()

	app.log.Info("running")
	err := app.queue.Run(ctx)

	// Shutdown unblocks PollEvent.
	app.backend.Shutdown()
	wg.Wait()
	app.delegate.wait()
	stats, pending := app.coord.Stats(), app.coord.DirtyStats()
	app.log.Info("stopped after %d paints, %d coalesced requests, %d aborted; %d regions pending (full=%v)",
		stats.Paints, stats.Coalesced, stats.AbortedPaints, pending.RegionCount, pending.FullRedraw)

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// pollEvents forwards backend events to the task queue until the backend
// closes or ctx is cancelled.
func (app *Application) pollEvents(ctx context.Context) {
	for {
		ev := app.backend.PollEvent()
		if ctx.Err() != nil {
			return
		}
		switch ev.Type {
		case backend.EventNone, backend.EventInterrupt:
			continue
		case backend.EventClosed:
			app.log.Debug("backend closed")
			app.quit()
			return
		}
		app.queue.Post(func() { app.handleBackendEvent(ev) })
	}
}

// attach sizes the tree to the backend and hands the coordinator its
// surface. It is the first task of every run.
func (app *Application) attach() {
	w, h := app.backend.Size()
	app.resize(w, h)
	app.coord.SetDelegate(app.delegate)
	app.updateStatus()
}

// resize maps a device size in cells to the logical root size.
func (app *Application) resize(width, height int) {
	app.panel.SetStatusHeight(app.scale)
	app.coord.Resize(geom.Sz(float64(width)*app.scale, float64(height)*app.scale))
}

// quit stops the run loop. It is safe to call from any goroutine.
func (app *Application) quit() {
	app.mu.Lock()
	cancel := app.cancel
	app.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Shutdown initiates graceful shutdown of a running application.
func (app *Application) Shutdown() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if !app.running.Load() {
		return ErrNotRunning
	}
	app.cancel()
	return nil
}

// Close releases resources held after Run has returned: the config
// watcher and the script interpreter.
func (app *Application) Close() error {
	var errs []error
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil && !errors.Is(err, config.ErrWatcherClosed) {
			errs = append(errs, NewComponentError("config", "close watcher", err))
		}
	}
	if app.script != nil {
		if err := app.script.Close(); err != nil && !errors.Is(err, script.ErrClosed) {
			errs = append(errs, NewComponentError("script", "close", err))
		}
	}
	return errors.Join(errs...)
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Post schedules fn on the application task queue.
func (app *Application) Post(fn func()) {
	app.queue.Post(fn)
}

// Config returns the active configuration. Only call it from a queued task.
func (app *Application) Config() *config.Config {
	return app.config
}

// Coordinator returns the root coordinator. Only use it from a queued task.
func (app *Application) Coordinator() *root.Coordinator {
	return app.coord
}

// Main returns the view above the status row.
func (app *Application) Main() view.View {
	return app.main
}

// Metrics returns the application metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
