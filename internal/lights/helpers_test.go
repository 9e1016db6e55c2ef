package lights

import (
	"io"
	"log/slog"
	"sync"
	"syscall"
)

type write struct {
	path  string
	value int
}

// recordingWriter records every write and fails those listed in failing.
type recordingWriter struct {
	mu      sync.Mutex
	writes  []write
	failing map[string]bool
}

func (w *recordingWriter) WriteInt(path string, value int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes = append(w.writes, write{path, value})
	if w.failing[path] {
		return syscall.ENOENT
	}
	return nil
}

func (w *recordingWriter) take() []write {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.writes
	w.writes = nil
	return out
}

// last returns the final value written to each path.
func (w *recordingWriter) last() map[string]int {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]int)
	for _, wr := range w.writes {
		out[wr.path] = wr.value
	}
	return out
}

type recordingObserver struct {
	applied    []Applied
	brightness map[ID]int
}

func (o *recordingObserver) LightApplied(a Applied) {
	o.applied = append(o.applied, a)
}

func (o *recordingObserver) BrightnessChanged(id ID, brightness int) {
	if o.brightness == nil {
		o.brightness = make(map[ID]int)
	}
	o.brightness[id] = brightness
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const (
	redBrightness   = "/sys/class/leds/red/brightness"
	greenBrightness = "/sys/class/leds/green/brightness"
	blueBrightness  = "/sys/class/leds/blue/brightness"
)

// resetWrites is the prefix every indicator update starts with.
func resetWrites() []write {
	var out []write
	for _, color := range []string{"red", "green", "blue"} {
		base := "/sys/class/leds/" + color + "/"
		out = append(out,
			write{base + "brightness", 0},
			write{base + "risetime", 0},
			write{base + "falltime", 0},
		)
	}
	return out
}

func rgbWrites(r, g, b int) []write {
	return []write{
		{redBrightness, r},
		{greenBrightness, g},
		{blueBrightness, b},
	}
}

func eachChannel(attr string, value int) []write {
	return []write{
		{"/sys/class/leds/red/" + attr, value},
		{"/sys/class/leds/green/" + attr, value},
		{"/sys/class/leds/blue/" + attr, value},
	}
}
