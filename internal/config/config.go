package config

import (
	"errors"
	"time"

	"github.com/dshills/pdfsketch/internal/input/key"
	"github.com/dshills/pdfsketch/internal/logging"
)

// Flush modes for Display.Flush.
const (
	FlushSync  = "sync"
	FlushAsync = "async"
)

// Config holds the complete pdfsketch configuration.
type Config struct {
	Display   DisplayConfig   `toml:"display" yaml:"display"`
	Shortcuts ShortcutsConfig `toml:"shortcuts" yaml:"shortcuts"`
	Input     InputConfig     `toml:"input" yaml:"input"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging"`
	Script    ScriptConfig    `toml:"script" yaml:"script"`
}

// DisplayConfig controls the surface and the redraw scheduler.
type DisplayConfig struct {
	// Scale is the device-to-logical scale factor. Must be positive.
	Scale float64 `toml:"scale" yaml:"scale"`

	// Flush is "sync" or "async".
	Flush string `toml:"flush" yaml:"flush"`

	// UnscaledHover delivers hover moves in raw device coordinates.
	UnscaledHover bool `toml:"unscaled_hover" yaml:"unscaled_hover"`

	// PartialRedraw paints only the pending rects instead of the full bounds.
	PartialRedraw bool `toml:"partial_redraw" yaml:"partial_redraw"`

	// MaxDirtyRegions caps the tracked rects before falling back to a full redraw.
	MaxDirtyRegions int `toml:"max_dirty_regions" yaml:"max_dirty_regions"`

	// CoalesceThreshold is the invalidated fraction of the surface, in
	// [0, 1], above which a paint covers the whole surface.
	CoalesceThreshold float64 `toml:"coalesce_threshold" yaml:"coalesce_threshold"`
}

// ShortcutsConfig holds the clipboard shortcut specifications.
type ShortcutsConfig struct {
	Copy  string `toml:"copy" yaml:"copy"`
	Paste string `toml:"paste" yaml:"paste"`
}

// InputConfig tunes terminal input translation.
type InputConfig struct {
	DoubleClickTime     string `toml:"double_click_time" yaml:"double_click_time"`
	DoubleClickDistance int    `toml:"double_click_distance" yaml:"double_click_distance"`
	ScrollLines         int    `toml:"scroll_lines" yaml:"scroll_lines"`
}

// LoggingConfig selects the log level and optional log file.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// ScriptConfig points at an optional Lua script providing the content view.
type ScriptConfig struct {
	Path    string `toml:"path" yaml:"path"`
	Timeout string `toml:"timeout" yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Scale:             1,
			Flush:             FlushAsync,
			MaxDirtyRegions:   32,
			CoalesceThreshold: 0.5,
		},
		Shortcuts: ShortcutsConfig{
			Copy:  key.DefaultCopy.String(),
			Paste: key.DefaultPaste.String(),
		},
		Input: InputConfig{
			DoubleClickTime:     "400ms",
			DoubleClickDistance: 4,
			ScrollLines:         3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Script: ScriptConfig{
			Timeout: "250ms",
		},
	}
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate checks every setting and returns all failures joined together.
// Individual failures are *ValidationError values reachable with errors.As.
func (c *Config) Validate() error {
	var errs []error
	add := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	if c.Display.Scale <= 0 {
		add("display.scale", "must be positive", c.Display.Scale, ErrCodeOutOfRange)
	}
	switch c.Display.Flush {
	case FlushSync, FlushAsync:
	default:
		add("display.flush", "must be sync or async", c.Display.Flush, ErrCodeInvalidEnum)
	}
	if c.Display.MaxDirtyRegions < 1 {
		add("display.max_dirty_regions", "must be at least 1", c.Display.MaxDirtyRegions, ErrCodeOutOfRange)
	}
	if c.Display.CoalesceThreshold < 0 || c.Display.CoalesceThreshold > 1 {
		add("display.coalesce_threshold", "must be between 0 and 1", c.Display.CoalesceThreshold, ErrCodeOutOfRange)
	}

	if _, err := key.ParseShortcut(c.Shortcuts.Copy); err != nil {
		add("shortcuts.copy", err.Error(), c.Shortcuts.Copy, ErrCodeInvalidFormat)
	}
	if _, err := key.ParseShortcut(c.Shortcuts.Paste); err != nil {
		add("shortcuts.paste", err.Error(), c.Shortcuts.Paste, ErrCodeInvalidFormat)
	}

	if d, err := time.ParseDuration(c.Input.DoubleClickTime); err != nil || d < 0 {
		add("input.double_click_time", "must be a non-negative duration", c.Input.DoubleClickTime, ErrCodeInvalidFormat)
	}
	if c.Input.DoubleClickDistance < 0 {
		add("input.double_click_distance", "must not be negative", c.Input.DoubleClickDistance, ErrCodeOutOfRange)
	}
	if c.Input.ScrollLines < 1 {
		add("input.scroll_lines", "must be at least 1", c.Input.ScrollLines, ErrCodeOutOfRange)
	}

	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		add("logging.level", "must be debug, info, warn or error", c.Logging.Level, ErrCodeInvalidEnum)
	}

	if d, err := time.ParseDuration(c.Script.Timeout); err != nil || d <= 0 {
		add("script.timeout", "must be a positive duration", c.Script.Timeout, ErrCodeInvalidFormat)
	}

	return errors.Join(errs...)
}

// AsyncFlush reports whether the surface is flushed off the task queue.
func (c *Config) AsyncFlush() bool {
	return c.Display.Flush == FlushAsync
}

// ParsedShortcuts returns the clipboard shortcut table. Unparseable entries
// fall back to their defaults.
func (c *Config) ParsedShortcuts() key.Shortcuts {
	s := key.DefaultShortcuts()
	if sc, err := key.ParseShortcut(c.Shortcuts.Copy); err == nil {
		s.Copy = sc
	}
	if sc, err := key.ParseShortcut(c.Shortcuts.Paste); err == nil {
		s.Paste = sc
	}
	return s
}

// LogLevel returns the parsed log level, or info when unset or invalid.
func (c *Config) LogLevel() logging.Level {
	if level, ok := logging.ParseLevel(c.Logging.Level); ok {
		return level
	}
	return logging.LevelInfo
}

// DoubleClickTime returns the parsed double-click interval.
func (c *Config) DoubleClickTime() time.Duration {
	return parseDuration(c.Input.DoubleClickTime, 400*time.Millisecond)
}

// ScriptTimeout returns the parsed per-callback script timeout.
func (c *Config) ScriptTimeout() time.Duration {
	return parseDuration(c.Script.Timeout, 250*time.Millisecond)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
