package app

import (
	"github.com/dshills/pdfsketch/internal/config"
	"github.com/dshills/pdfsketch/internal/renderer/core"
	"github.com/dshills/pdfsketch/internal/root"
	"github.com/dshills/pdfsketch/internal/script"
	"github.com/dshills/pdfsketch/internal/widget"
)

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	app       *Application
	opts      Options
	initOrder []string
}

// newBootstrapper creates a new bootstrapper for the application.
func newBootstrapper(app *Application, opts Options) *bootstrapper {
	return &bootstrapper{
		app:       app,
		opts:      opts,
		initOrder: make([]string, 0, 5),
	}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap() error {
	steps := []func() error{
		b.initConfig,      // 1. Validated configuration and logger
		b.initContent,     // 2. Drawing view (script or scribble)
		b.initTree,        // 3. Panel with status row
		b.initCoordinator, // 4. Root coordinator and surface delegate
		b.initWatcher,     // 5. Config live reload
	}
	for _, step := range steps {
		if err := step(); err != nil {
			b.cleanup()
			return err
		}
	}
	return nil
}

// initConfig validates the configuration and applies its log level.
func (b *bootstrapper) initConfig() error {
	cfg := b.opts.Config
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	b.app.config = cfg
	b.app.scale = cfg.Display.Scale
	b.app.log = b.opts.Logger.WithComponent("app")
	b.opts.Logger.SetLevel(cfg.LogLevel())
	b.initOrder = append(b.initOrder, "config")
	return nil
}

// initContent creates the view above the status row: the caller's content,
// a Lua script when one is configured, or a scribble pad.
func (b *bootstrapper) initContent() error {
	switch {
	case b.opts.Content != nil:
		b.app.main = b.opts.Content
	case b.app.config.Script.Path != "":
		v, err := script.Load(b.app.config.Script.Path,
			script.WithTimeout(b.app.config.ScriptTimeout()),
			script.WithLogger(b.opts.Logger.WithComponent("script")),
		)
		if err != nil {
			return &InitError{Component: "script", Err: err}
		}
		b.app.script = v
		b.app.main = v
		b.initOrder = append(b.initOrder, "script")
	default:
		b.app.scribble = widget.NewScribble()
		b.app.main = b.app.scribble
	}
	return nil
}

// initTree lays the content out above a one-row status label.
func (b *bootstrapper) initTree() error {
	style := core.DefaultStyle().Reverse()
	b.app.status = widget.NewLabel("", style)
	b.app.panel = widget.NewPanel(b.app.main, b.app.status, b.app.scale)
	return nil
}

// initCoordinator creates the root coordinator and its surface delegate.
func (b *bootstrapper) initCoordinator() error {
	cfg := b.app.config
	b.app.coord = root.New(b.app.queue,
		root.WithLogger(b.opts.Logger.WithComponent("root")),
		root.WithShortcuts(cfg.ParsedShortcuts()),
		root.WithPartialRedraw(cfg.Display.PartialRedraw),
		root.WithUnscaledHover(cfg.Display.UnscaledHover),
		root.WithMaxDirtyRegions(cfg.Display.MaxDirtyRegions),
		root.WithCoalesceThreshold(cfg.Display.CoalesceThreshold),
		root.WithPaintObserver(b.app.metrics.RecordPaint),
	)
	b.app.coord.SetContent(b.app.panel)

	b.app.delegate = newSurfaceDelegate(b.app.backend, b.app.queue, b.app.metrics,
		b.opts.Logger.WithComponent("surface"))
	b.app.delegate.configure(cfg.Display.Scale, cfg.AsyncFlush())
	b.initOrder = append(b.initOrder, "coordinator")
	return nil
}

// initWatcher starts watching the config file. A watcher that cannot be
// started only disables live reload.
func (b *bootstrapper) initWatcher() error {
	if b.opts.ConfigPath == "" {
		return nil
	}
	w, err := config.NewWatcher(b.opts.ConfigPath, b.app.onConfigReload,
		config.WithWatchLogger(b.opts.Logger.WithComponent("config")),
	)
	if err != nil {
		b.app.log.Warn("config watcher disabled: %v", err)
		return nil
	}
	b.app.watcher = w
	b.initOrder = append(b.initOrder, "watcher")
	return nil
}

// cleanup releases initialized components in reverse order.
func (b *bootstrapper) cleanup() {
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		switch b.initOrder[i] {
		case "watcher":
			if b.app.watcher != nil {
				_ = b.app.watcher.Close()
				b.app.watcher = nil
			}
		case "coordinator":
			b.app.coord.SetDelegate(nil)
		case "script":
			if b.app.script != nil {
				_ = b.app.script.Close()
				b.app.script = nil
			}
		}
	}
}
