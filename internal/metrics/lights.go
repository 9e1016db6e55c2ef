// Package metrics provides Prometheus metrics for the light module and the
// WLAN address resolver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/smazurov/halshim/internal/events"
)

var sources = []string{"attention", "notification", "battery"}

var (
	activeSource = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "halshim",
		Subsystem: "lights",
		Name:      "active_source",
		Help:      "1 for the request currently driving the indicator LED",
	}, []string{"source"})

	indicatorColor = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "halshim",
		Subsystem: "lights",
		Name:      "color",
		Help:      "Brightness last written to each indicator channel",
	}, []string{"channel"})

	indicatorBlink = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "halshim",
		Subsystem: "lights",
		Name:      "blinking",
		Help:      "1 when rise/fall timing is programmed",
	})

	updates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "halshim",
		Subsystem: "lights",
		Name:      "updates_total",
		Help:      "Indicator updates by winning source",
	}, []string{"source"})

	brightness = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "halshim",
		Subsystem: "lights",
		Name:      "brightness",
		Help:      "Level last written to a backlight",
	}, []string{"light"})

	writeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "halshim",
		Subsystem: "sysfs",
		Name:      "write_failures_total",
		Help:      "Failed sysfs attribute writes",
	}, []string{"path"})

	macResolved = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "halshim",
		Subsystem: "wlan",
		Name:      "mac_resolved",
		Help:      "1 when the last WLAN address lookup found a vendor address",
	})
)

// RecordLightApplied updates indicator metrics from an applied event.
func RecordLightApplied(e events.LightAppliedEvent) {
	for _, s := range sources {
		v := 0.0
		if s == e.Source {
			v = 1
		}
		activeSource.WithLabelValues(s).Set(v)
	}
	indicatorColor.WithLabelValues("red").Set(float64(e.Red))
	indicatorColor.WithLabelValues("green").Set(float64(e.Green))
	indicatorColor.WithLabelValues("blue").Set(float64(e.Blue))
	if e.Blink {
		indicatorBlink.Set(1)
	} else {
		indicatorBlink.Set(0)
	}
	updates.WithLabelValues(e.Source).Inc()
}

// RecordBrightness sets the backlight gauge.
func RecordBrightness(e events.BrightnessChangedEvent) {
	brightness.WithLabelValues(e.Light).Set(float64(e.Brightness))
}

// RecordWriteFailure counts a failed write.
func RecordWriteFailure(e events.WriteFailedEvent) {
	writeFailures.WithLabelValues(e.Path).Inc()
}

// RecordMACResolved sets the WLAN address gauge.
func RecordMACResolved(e events.MACResolvedEvent) {
	if e.Found {
		macResolved.Set(1)
	} else {
		macResolved.Set(0)
	}
}

// Subscribe keeps the metrics in sync with bus. The returned function
// removes every subscription.
func Subscribe(bus *events.Bus) func() {
	unsubs := []func(){
		bus.Subscribe(RecordLightApplied),
		bus.Subscribe(RecordBrightness),
		bus.Subscribe(RecordWriteFailure),
		bus.Subscribe(RecordMACResolved),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
