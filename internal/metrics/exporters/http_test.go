package exporters

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smazurov/halshim/internal/events"
	"github.com/smazurov/halshim/internal/metrics"
)

func scrape(t *testing.T, h http.Handler) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	return w.Body.String()
}

func TestHTTPHandler(t *testing.T) {
	metrics.RecordBrightness(events.BrightnessChangedEvent{Light: "backlight", Brightness: 200})

	body := scrape(t, HTTPHandler())
	if !strings.Contains(body, `halshim_lights_brightness{light="backlight"} 200`) {
		t.Errorf("brightness metric missing from response:\n%s", body)
	}
}
