// Package main is the entry point for pdfsketch.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dshills/pdfsketch/internal/app"
	"github.com/dshills/pdfsketch/internal/config"
	"github.com/dshills/pdfsketch/internal/logging"
	"github.com/dshills/pdfsketch/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// flags holds the command-line settings. Only flags given explicitly
// override the configuration file and environment.
type flags struct {
	configPath string
	logLevel   string
	logFile    string
	script     string
	scale      float64
	asyncFlush bool
	set        map[string]bool
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	overrides := func(cfg *config.Config) {
		if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		f.apply(cfg)
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	overrides(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration:\n%v\n", err)
		return 1
	}

	// The terminal owns stderr while running, so logs only go to a file.
	logger, err := logging.Open(logging.Config{
		Level:  cfg.LogLevel(),
		Output: io.Discard,
		File:   cfg.Logging.File,
		Prefix: "pdfsketch",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Close()
	logging.SetDefault(logger)

	term, err := backend.NewTerminal(backend.TranslatorConfig{
		DoubleClickTime:     cfg.DoubleClickTime(),
		DoubleClickDistance: float64(cfg.Input.DoubleClickDistance),
		ScrollLines:         cfg.Input.ScrollLines,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: f.configPath,
		Overrides:  overrides,
		Backend:    term,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// apply copies explicitly set flags into cfg.
func (f *flags) apply(cfg *config.Config) {
	if f.set["log-level"] {
		cfg.Logging.Level = f.logLevel
	}
	if f.set["log-file"] {
		cfg.Logging.File = f.logFile
	}
	if f.set["script"] {
		cfg.Script.Path = f.script
	}
	if f.set["scale"] {
		cfg.Display.Scale = f.scale
	}
	if f.set["async-flush"] {
		cfg.Display.Flush = config.FlushSync
		if f.asyncFlush {
			cfg.Display.Flush = config.FlushAsync
		}
	}
}

func parseFlags() *flags {
	f := &flags{set: make(map[string]bool)}
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&f.script, "script", "", "Lua script providing the content view")
	flag.Float64Var(&f.scale, "scale", 1, "Logical units per terminal cell")
	flag.BoolVar(&f.asyncFlush, "async-flush", true, "Flush the screen off the event loop")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdfsketch - scribble pad on a coalescing terminal surface\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pdfsketch [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		for _, name := range []string{config.EnvScale, config.EnvFlush, config.EnvLogLevel, config.EnvScript} {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdfsketch                        Draw with the mouse, Ctrl+Q to quit\n")
		fmt.Fprintf(os.Stderr, "  pdfsketch -scale 2               Two logical units per cell\n")
		fmt.Fprintf(os.Stderr, "  pdfsketch -script view.lua       Run a scripted view\n")
	}

	flag.Parse()
	flag.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	if f.set["c"] {
		f.set["config"] = true
	}

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("pdfsketch %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if _, ok := logging.ParseLevel(f.logLevel); !ok {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", f.logLevel)
		os.Exit(1)
	}
	if f.set["scale"] && f.scale <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid scale %s (must be positive)\n", strconv.FormatFloat(f.scale, 'g', -1, 64))
		os.Exit(1)
	}

	return f
}
