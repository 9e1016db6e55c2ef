package events

import (
	"fmt"
	"net"
	"time"

	"github.com/smazurov/halshim/internal/lights"
)

// LightsObserver publishes light module activity on a Bus. It satisfies
// lights.Observer.
type LightsObserver struct {
	bus *Bus
	now func() time.Time
}

// NewLightsObserver creates an observer publishing to bus.
func NewLightsObserver(bus *Bus) *LightsObserver {
	return &LightsObserver{bus: bus, now: time.Now}
}

// LightApplied implements lights.Observer.
func (o *LightsObserver) LightApplied(a lights.Applied) {
	r, g, b := lights.Request{Color: a.Color}.RGB()
	o.bus.Publish(LightAppliedEvent{
		Source:    a.Source.String(),
		Color:     fmt.Sprintf("%06x", a.Color&0xFFFFFF),
		Red:       r,
		Green:     g,
		Blue:      b,
		Blink:     a.Blink,
		OnMS:      a.OnMS,
		OffMS:     a.OffMS,
		RiseIndex: a.RiseIndex,
		RiseDelay: a.RiseDelay,
		FallIndex: a.FallIndex,
		FallDelay: a.FallDelay,
		Timestamp: o.timestamp(),
	})
}

// BrightnessChanged implements lights.Observer.
func (o *LightsObserver) BrightnessChanged(id lights.ID, brightness int) {
	o.bus.Publish(BrightnessChangedEvent{
		Light:      id.String(),
		Brightness: brightness,
		Timestamp:  o.timestamp(),
	})
}

// WriteFailed matches sysfs.FailureFunc.
func (o *LightsObserver) WriteFailed(path string, err error) {
	o.bus.Publish(WriteFailedEvent{
		Path:      path,
		Error:     err.Error(),
		Timestamp: o.timestamp(),
	})
}

func (o *LightsObserver) timestamp() string {
	return Timestamp(o.now())
}

// Timestamp formats t the way every event carries it: RFC 3339 in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// NewMACResolvedEvent describes the outcome of one WLAN address lookup.
func NewMACResolvedEvent(addr net.HardwareAddr, err error) MACResolvedEvent {
	ev := MACResolvedEvent{Found: err == nil, Timestamp: Timestamp(time.Now())}
	if ev.Found {
		ev.Address = addr.String()
	}
	return ev
}
