package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type reload struct {
	cfg *Config
	err error
}

func startWatcher(t *testing.T, path string) (*Watcher, <-chan reload) {
	t.Helper()
	ch := make(chan reload, 8)
	w, err := NewWatcher(path, func(cfg *Config, err error) {
		ch <- reload{cfg, err}
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w, ch
}

func waitReload(t *testing.T, ch <-chan reload) reload {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return reload{}
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "pdfsketch.toml", "[display]\nscale = 1.0\n")
	w, ch := startWatcher(t, path)

	if err := os.WriteFile(path, []byte("[display]\nscale = 3.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := waitReload(t, ch)
	if r.err != nil {
		t.Fatalf("reload error = %v", r.err)
	}
	if r.cfg.Display.Scale != 3 {
		t.Errorf("Scale = %v, want 3", r.cfg.Display.Scale)
	}
	if w.Reloads() < 1 {
		t.Errorf("Reloads() = %d", w.Reloads())
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	path := writeFile(t, "pdfsketch.yaml", "display:\n  scale: 1\n")
	_, ch := startWatcher(t, path)

	if err := os.WriteFile(path, []byte("display:\n  scale: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := waitReload(t, ch)
	if r.cfg != nil {
		t.Error("invalid reload should not deliver a config")
	}
	var verr *ValidationError
	if !errors.As(r.err, &verr) {
		t.Errorf("reload error = %v, want *ValidationError", r.err)
	}
}

func TestWatcherSeesCreatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "later.toml")
	_, ch := startWatcher(t, path)

	if err := os.WriteFile(path, []byte("[input]\nscroll_lines = 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := waitReload(t, ch)
	if r.err != nil {
		t.Fatalf("reload error = %v", r.err)
	}
	if r.cfg.Input.ScrollLines != 7 {
		t.Errorf("ScrollLines = %d, want 7", r.cfg.Input.ScrollLines)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	path := writeFile(t, "pdfsketch.toml", "")
	_, ch := startWatcher(t, path)

	other := filepath.Join(filepath.Dir(path), "other.toml")
	if err := os.WriteFile(other, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-ch:
		t.Errorf("unexpected reload: %+v", r)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := writeFile(t, "pdfsketch.toml", "")
	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("second Close() = %v, want ErrWatcherClosed", err)
	}
}
