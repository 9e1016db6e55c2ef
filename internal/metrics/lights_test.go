package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/smazurov/halshim/internal/events"
)

func TestRecordLightApplied(t *testing.T) {
	RecordLightApplied(events.LightAppliedEvent{Source: "notification", Red: 10, Green: 20, Blue: 30, Blink: true})

	if v := testutil.ToFloat64(activeSource.WithLabelValues("notification")); v != 1 {
		t.Errorf("notification active = %v, want 1", v)
	}
	for _, s := range []string{"attention", "battery"} {
		if v := testutil.ToFloat64(activeSource.WithLabelValues(s)); v != 0 {
			t.Errorf("%s active = %v, want 0", s, v)
		}
	}
	if v := testutil.ToFloat64(indicatorColor.WithLabelValues("green")); v != 20 {
		t.Errorf("green = %v, want 20", v)
	}
	if v := testutil.ToFloat64(indicatorBlink); v != 1 {
		t.Errorf("blinking = %v, want 1", v)
	}

	before := testutil.ToFloat64(updates.WithLabelValues("battery"))
	RecordLightApplied(events.LightAppliedEvent{Source: "battery"})
	if v := testutil.ToFloat64(updates.WithLabelValues("battery")); v != before+1 {
		t.Errorf("battery updates = %v, want %v", v, before+1)
	}
	if v := testutil.ToFloat64(indicatorBlink); v != 0 {
		t.Errorf("blinking = %v, want 0", v)
	}
}

func TestRecordMACResolved(t *testing.T) {
	RecordMACResolved(events.MACResolvedEvent{Found: true})
	if v := testutil.ToFloat64(macResolved); v != 1 {
		t.Errorf("mac_resolved = %v, want 1", v)
	}
	RecordMACResolved(events.MACResolvedEvent{})
	if v := testutil.ToFloat64(macResolved); v != 0 {
		t.Errorf("mac_resolved = %v, want 0", v)
	}
}

func TestSubscribe(t *testing.T) {
	bus := events.New()
	unsub := Subscribe(bus)
	defer unsub()

	const path = "/sys/class/leds/blue/delay_off"
	before := testutil.ToFloat64(writeFailures.WithLabelValues(path))

	bus.Publish(events.WriteFailedEvent{Path: path, Error: "boom"})
	bus.Publish(events.BrightnessChangedEvent{Light: "buttons", Brightness: 99})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if testutil.ToFloat64(writeFailures.WithLabelValues(path)) == before+1 &&
			testutil.ToFloat64(brightness.WithLabelValues("buttons")) == 99 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("metrics not updated from bus events")
}
