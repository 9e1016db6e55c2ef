package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func resetState() {
	mutex.Lock()
	moduleLoggers = make(map[string]*slog.Logger)
	moduleLevelVars = make(map[string]*slog.LevelVar)
	isInitialized = false
	globalConfig = Config{}
	mutex.Unlock()
}

func TestModuleLevelOverride(t *testing.T) {
	resetState()

	Initialize(Config{
		Level:  "info",
		Format: "text",
		Modules: map[string]string{
			"lights": "debug",
			"api":    "warn",
		},
	})

	tests := []struct {
		module    string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"lights", true, true, true},
		{"api", false, false, true},
		{"wlanmac", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			handler := GetLogger(tt.module).Handler()
			ctx := context.Background()

			if got := handler.Enabled(ctx, slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("Debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if got := handler.Enabled(ctx, slog.LevelInfo); got != tt.wantInfo {
				t.Errorf("Info enabled = %v, want %v", got, tt.wantInfo)
			}
			if got := handler.Enabled(ctx, slog.LevelWarn); got != tt.wantWarn {
				t.Errorf("Warn enabled = %v, want %v", got, tt.wantWarn)
			}
		})
	}
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	resetState()

	before := GetLogger("lights").Handler()
	if before.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("logger created before Initialize should default to info")
	}

	Initialize(Config{Level: "info", Modules: map[string]string{"lights": "debug"}})

	if !before.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("early handler should follow the module level after Initialize")
	}
	if !GetLogger("lights").Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("logger after Initialize should have debug enabled")
	}
}

func TestSetLevels(t *testing.T) {
	resetState()
	Initialize(Config{Level: "info"})

	handler := GetLogger("sysfs").Handler()
	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug enabled before SetLevels")
	}

	SetLevels(Config{Level: "info", Modules: map[string]string{"sysfs": "debug"}})
	if !handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("SetLevels did not raise sysfs to debug")
	}

	SetLevels(Config{Level: "error"})
	if handler.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("SetLevels did not lower sysfs to error")
	}
}

func TestMultiHandlerDebugOutput(t *testing.T) {
	var buf bytes.Buffer

	debugHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	infoHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	logger := slog.New(NewMultiHandler(debugHandler, infoHandler)).With("module", "test")
	logger.Debug("debug only message")
	logger.Info("both handlers")

	output := buf.String()
	if n := strings.Count(output, "debug only message"); n != 1 {
		t.Errorf("debug message written %d times, want 1. Output: %s", n, output)
	}
	if n := strings.Count(output, "both handlers"); n != 2 {
		t.Errorf("info message written %d times, want 2. Output: %s", n, output)
	}
	if !strings.Contains(output, "module=test") {
		t.Errorf("attrs not propagated. Output: %s", output)
	}
}

func TestAddAttrToFields(t *testing.T) {
	fields := make(map[string]string)
	addAttrToFields(fields, slog.Int("on_ms", 2500), nil)
	addAttrToFields(fields, slog.String("path", "/sys/class/leds/red/brightness"), nil)
	addAttrToFields(fields, slog.Group("timing", slog.Int("index", 4)), []string{"led"})
	addAttrToFields(fields, slog.Attr{}, nil)

	want := map[string]string{
		"ON_MS":            "2500",
		"PATH":             "/sys/class/leds/red/brightness",
		"LED_TIMING_INDEX": "4",
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("fields[%s] = %q, want %q", k, fields[k], v)
		}
	}
	if len(fields) != len(want) {
		t.Errorf("fields = %v, want %v", fields, want)
	}
}

func TestParseLevelValues(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		isNil bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"invalid", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLevel(tt.input)
			switch {
			case tt.isNil && got != nil:
				t.Errorf("parseLevel(%q) = %v, want nil", tt.input, *got)
			case !tt.isNil && got == nil:
				t.Errorf("parseLevel(%q) = nil, want %v", tt.input, tt.want)
			case !tt.isNil && *got != tt.want:
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, *got, tt.want)
			}
		})
	}
}
