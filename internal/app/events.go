package app

import (
	"fmt"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/dshills/pdfsketch/internal/config"
	"github.com/dshills/pdfsketch/internal/host"
	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/renderer/backend"
)

// handleBackendEvent runs one backend event on the task queue.
func (app *Application) handleBackendEvent(ev backend.Event) {
	defer app.recoverTask("backend event")

	switch ev.Type {
	case backend.EventInput:
		for _, in := range ev.Input {
			if !app.handleInput(in) {
				return
			}
		}
		app.updateStatus()
	case backend.EventResize:
		app.log.Debug("backend resized to %dx%d", ev.Width, ev.Height)
		app.resize(ev.Width, ev.Height)
	case backend.EventClosed:
		app.quit()
	}
}

// handleInput dispatches one host event. It returns false once the event
// has stopped the application.
func (app *Application) handleInput(ev host.Event) bool {
	switch ev.Type {
	case host.Clipboard:
		app.coord.Paste(ev.Text)
		return true
	case host.Focus:
		app.log.Debug("surface focus: %v", ev.Focused)
		return true
	case host.KeyDown:
		if app.quitKey.Matches(key.NewDown(ev.KeyCode, ev.Modifiers.Keyboard())) {
			app.log.Info("quit requested")
			app.quit()
			return false
		}
	}

	timer := StartTimer()
	handled := app.coord.HandleInputEvent(ev, app.scale)
	app.metrics.RecordInput(timer.Elapsed(), handled)
	return true
}

// updateStatus refreshes the status row.
func (app *Application) updateStatus() {
	parts := []string{"pdfsketch"}
	switch {
	case app.scribble != nil:
		parts = append(parts, fmt.Sprintf("strokes %d", len(app.scribble.Strokes())))
	case app.script != nil:
		s := "script " + filepath.Base(app.script.Name())
		if n := app.script.Failures(); n > 0 {
			s += fmt.Sprintf(" (%d errors)", n)
		}
		parts = append(parts, s)
	}
	parts = append(parts, fmt.Sprintf("scale %g", app.scale), app.config.Display.Flush, "Ctrl+Q quit")
	app.status.SetText(" " + strings.Join(parts, " | "))
}

// onConfigReload receives watcher results on the watcher goroutine.
func (app *Application) onConfigReload(cfg *config.Config, err error) {
	if err != nil {
		app.metrics.RecordReload(err)
		return
	}
	app.queue.Post(func() { app.applyConfig(cfg) })
}

// applyConfig makes cfg the active configuration. Overrides are reapplied
// first; an invalid result leaves the current configuration in place.
// max_dirty_regions and the script path only take effect on restart.
func (app *Application) applyConfig(cfg *config.Config) error {
	if app.opts.Overrides != nil {
		app.opts.Overrides(cfg)
	}
	if err := cfg.Validate(); err != nil {
		app.log.Warn("config rejected: %v", err)
		app.metrics.RecordReload(err)
		return NewComponentError("config", "reload", err)
	}

	app.config = cfg
	app.opts.Logger.SetLevel(cfg.LogLevel())
	app.coord.SetShortcuts(cfg.ParsedShortcuts())
	app.coord.SetPartialRedraw(cfg.Display.PartialRedraw)
	app.coord.SetCoalesceThreshold(cfg.Display.CoalesceThreshold)
	app.coord.SetUnscaledHover(cfg.Display.UnscaledHover)
	app.delegate.configure(cfg.Display.Scale, cfg.AsyncFlush())

	if cfg.Display.Scale != app.scale {
		app.scale = cfg.Display.Scale
		w, h := app.backend.Size()
		app.resize(w, h)
	}
	app.updateStatus()
	app.metrics.RecordReload(nil)
	app.log.Info("config applied")
	return nil
}

// recoverTask logs a panic raised by a queued task so the loop survives it.
func (app *Application) recoverTask(what string) {
	if r := recover(); r != nil {
		err := &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
		app.log.Error("%s: %v", what, err)
	}
}
