package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "pdfsketch.toml", `
[display]
scale = 2.0
flush = "sync"
unscaled_hover = true

[shortcuts]
copy = "Meta+C"

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Scale != 2 {
		t.Errorf("Scale = %v, want 2", cfg.Display.Scale)
	}
	if cfg.AsyncFlush() {
		t.Error("flush should be sync")
	}
	if !cfg.Display.UnscaledHover {
		t.Error("UnscaledHover not loaded")
	}
	if cfg.Shortcuts.Copy != "Meta+C" {
		t.Errorf("Copy = %q", cfg.Shortcuts.Copy)
	}
	if cfg.Shortcuts.Paste != "Ctrl+V" {
		t.Errorf("Paste = %q, want default", cfg.Shortcuts.Paste)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if cfg.Input.ScrollLines != 3 {
		t.Errorf("ScrollLines = %d, want default 3", cfg.Input.ScrollLines)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"pdfsketch.yaml", "pdfsketch.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, `
display:
  scale: 1.5
  partial_redraw: true
  coalesce_threshold: 0.25
input:
  scroll_lines: 5
script:
  path: sketch.lua
`)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Display.Scale != 1.5 {
				t.Errorf("Scale = %v", cfg.Display.Scale)
			}
			if !cfg.Display.PartialRedraw {
				t.Error("PartialRedraw not loaded")
			}
			if cfg.Display.CoalesceThreshold != 0.25 {
				t.Errorf("CoalesceThreshold = %v, want 0.25", cfg.Display.CoalesceThreshold)
			}
			if cfg.Input.ScrollLines != 5 {
				t.Errorf("ScrollLines = %d", cfg.Input.ScrollLines)
			}
			if cfg.Script.Path != "sketch.lua" {
				t.Errorf("Script.Path = %q", cfg.Script.Path)
			}
			if cfg.Display.Flush != FlushAsync {
				t.Errorf("Flush = %q, want default", cfg.Display.Flush)
			}
		})
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Scale != 1 {
		t.Errorf("Scale = %v, want default", cfg.Display.Scale)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Scale != 1 {
		t.Errorf("Scale = %v, want default", cfg.Display.Scale)
	}

	cfg, err = Load("")
	if err != nil || cfg == nil {
		t.Fatalf("Load(\"\") = %v, %v", cfg, err)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load("settings.json")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantLine int // 0 skips the check
	}{
		{"toml syntax", "bad.toml", "[display]\nscale = = 2\n", 2},
		{"toml unknown key", "unknown.toml", "[display]\nzoom = 2.0\n", 2},
		{"toml wrong type", "type.toml", "[display]\nflush = 3\n", 0},
		{"yaml unknown key", "unknown.yaml", "display:\n  zoom: 2\n", 2},
		{"yaml wrong type", "type.yaml", "input:\n  scroll_lines: many\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Load() error = %v, want *ParseError", err)
			}
			if perr.Path != path {
				t.Errorf("Path = %q, want %q", perr.Path, path)
			}
			if tt.wantLine > 0 && perr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d (%s)", perr.Line, tt.wantLine, perr.Message)
			}
			if perr.Unwrap() == nil {
				t.Error("ParseError should wrap the decoder error")
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"a.toml":  FormatTOML,
		"A.TOML":  FormatTOML,
		"a.yaml":  FormatYAML,
		"a.yml":   FormatYAML,
		"a.json":  FormatUnknown,
		"noext":   FormatUnknown,
		"dir.x/a": FormatUnknown,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvScale:    "2.5",
		EnvFlush:    "SYNC",
		EnvLogLevel: "warn",
		EnvScript:   "/tmp/view.lua",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Display.Scale != 2.5 {
		t.Errorf("Scale = %v", cfg.Display.Scale)
	}
	if cfg.Display.Flush != FlushSync {
		t.Errorf("Flush = %q", cfg.Display.Flush)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if cfg.Script.Path != "/tmp/view.lua" {
		t.Errorf("Script.Path = %q", cfg.Script.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestApplyEnvIgnoresEmptyValues(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(string) (string, bool) { return "  ", true })
	if err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Display.Scale != 1 || cfg.Display.Flush != FlushAsync {
		t.Errorf("empty env values changed config: %+v", cfg.Display)
	}
}

func TestApplyEnvBadScale(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(name string) (string, bool) {
		if name == EnvScale {
			return "big", true
		}
		return "", false
	})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path != "display.scale" {
		t.Errorf("ApplyEnv() error = %v, want display.scale ValidationError", err)
	}
}
