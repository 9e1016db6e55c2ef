package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type testConfig struct {
	Name  string `toml:"name"`
	Value int    `toml:"value"`
}

func loadTestConfig(path string) (testConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return testConfig{}, err
	}
	var cfg testConfig
	err = toml.Unmarshal(data, &cfg)
	return cfg, err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTestConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func startWatcher(t *testing.T, path string, opts ...WatcherOption[testConfig]) *Watcher[testConfig] {
	t.Helper()
	opts = append([]WatcherOption[testConfig]{WithDebounce[testConfig](50 * time.Millisecond)}, opts...)
	w := NewConfigWatcher(path, loadTestConfig, newTestLogger(), opts...)
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := w.Stop(); err != nil {
			t.Errorf("Stop() error: %v", err)
		}
	})
	return w
}

func TestConfigWatcher_BasicReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "halshim.toml")
	writeTestConfig(t, path, "name = \"initial\"\nvalue = 1\n")

	received := make(chan testConfig, 4)
	w := startWatcher(t, path)
	w.OnReload(func(cfg testConfig) { received <- cfg })

	time.Sleep(100 * time.Millisecond)
	writeTestConfig(t, path, "name = \"updated\"\nvalue = 42\n")

	select {
	case cfg := <-received:
		if cfg.Name != "updated" || cfg.Value != 42 {
			t.Errorf("got %+v, want name=updated, value=42", cfg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for config reload")
	}
}

func TestConfigWatcher_ReplaceByRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "halshim.toml")
	writeTestConfig(t, path, "name = \"initial\"\n")

	received := make(chan testConfig, 4)
	w := startWatcher(t, path)
	w.OnReload(func(cfg testConfig) { received <- cfg })

	time.Sleep(100 * time.Millisecond)
	tmp := filepath.Join(dir, "halshim.toml.new")
	writeTestConfig(t, tmp, "name = \"renamed\"\n")
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-received:
		if cfg.Name != "renamed" {
			t.Errorf("got %+v, want name=renamed", cfg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for config reload")
	}
}

func TestConfigWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "halshim.toml")
	writeTestConfig(t, path, "name = \"initial\"\n")

	var calls atomic.Int32
	w := startWatcher(t, path)
	w.OnReload(func(testConfig) { calls.Add(1) })

	time.Sleep(100 * time.Millisecond)
	writeTestConfig(t, filepath.Join(dir, "other.toml"), "name = \"x\"\n")
	time.Sleep(300 * time.Millisecond)

	if n := calls.Load(); n != 0 {
		t.Errorf("handler called %d times for a sibling file", n)
	}
}

func TestConfigWatcher_Debounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "halshim.toml")
	writeTestConfig(t, path, "value = 0\n")

	var calls atomic.Int32
	last := make(chan testConfig, 8)
	w := startWatcher(t, path, WithDebounce[testConfig](200*time.Millisecond))
	w.OnReload(func(cfg testConfig) {
		calls.Add(1)
		last <- cfg
	})

	time.Sleep(100 * time.Millisecond)
	for i := 1; i <= 5; i++ {
		writeTestConfig(t, path, "value = "+string(rune('0'+i))+"\n")
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case cfg := <-last:
		if cfg.Value != 5 {
			t.Errorf("got value %d, want 5", cfg.Value)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for config reload")
	}
	time.Sleep(300 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("handler called %d times, want 1", n)
	}
}

func TestConfigWatcher_Unsubscribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "halshim.toml")
	writeTestConfig(t, path, "value = 1\n")

	w := NewConfigWatcher(path, loadTestConfig, newTestLogger())
	var first, second atomic.Int32
	unsub := w.OnReload(func(testConfig) { first.Add(1) })
	w.OnReload(func(testConfig) { second.Add(1) })

	if err := w.Reload(); err != nil {
		t.Fatal(err)
	}
	unsub()
	if err := w.Reload(); err != nil {
		t.Fatal(err)
	}

	if first.Load() != 1 || second.Load() != 2 {
		t.Errorf("calls = (%d, %d), want (1, 2)", first.Load(), second.Load())
	}
}

func TestConfigWatcher_ErrorHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "halshim.toml")
	writeTestConfig(t, path, "value = [not toml\n")

	var gotErr error
	w := NewConfigWatcher(path, loadTestConfig, newTestLogger(),
		WithErrorHandler[testConfig](func(err error) { gotErr = err }))

	var calls atomic.Int32
	w.OnReload(func(testConfig) { calls.Add(1) })

	err := w.Reload()
	if err == nil || gotErr == nil {
		t.Fatal("expected load error")
	}
	if !errors.Is(gotErr, err) {
		t.Errorf("error handler got %v, Reload returned %v", gotErr, err)
	}
	if calls.Load() != 0 {
		t.Error("handler called despite load error")
	}
}

func TestConfigWatcher_StopWithoutStart(t *testing.T) {
	w := NewConfigWatcher("/nonexistent/halshim.toml", loadTestConfig, newTestLogger())
	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error: %v", err)
	}
}
