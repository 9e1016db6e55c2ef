package lights

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
)

func TestParseID(t *testing.T) {
	for _, id := range IDs() {
		got, err := ParseID(id.String())
		if err != nil {
			t.Fatalf("ParseID(%q) error: %v", id.String(), err)
		}
		if got != id {
			t.Errorf("ParseID(%q) = %v, want %v", id.String(), got, id)
		}
	}

	for _, name := range []string{"", "keyboard", "Attention", "wifi"} {
		if _, err := ParseID(name); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseID(%q) error = %v, want ErrInvalidArgument", name, err)
		}
	}
}

func TestModule_OpenDispatch(t *testing.T) {
	tests := []struct {
		name      string
		wantPaths []string
	}{
		{"backlight", []string{BacklightFile}},
		{"buttons", []string{ButtonsFile}},
		{"battery", IndicatorFiles()},
		{"notifications", IndicatorFiles()},
		{"attention", IndicatorFiles()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &recordingWriter{}
			mod := NewModule(NewContext(w, discardLogger()))

			dev, err := mod.Open(tt.name)
			if err != nil {
				t.Fatalf("Open(%q) error: %v", tt.name, err)
			}
			if dev.ID().String() != tt.name {
				t.Errorf("ID() = %v, want %s", dev.ID(), tt.name)
			}

			req := &Request{Color: 0xFFFFFF, FlashMode: FlashTimed, FlashOnMS: 500, FlashOffMS: 500}
			if err := dev.SetLight(req); err != nil {
				t.Fatalf("SetLight() error: %v", err)
			}

			allowed := make(map[string]bool)
			for _, p := range tt.wantPaths {
				allowed[p] = true
			}
			writes := w.take()
			if len(writes) == 0 {
				t.Fatal("no writes recorded")
			}
			for _, wr := range writes {
				if !allowed[wr.path] {
					t.Errorf("unexpected write to %s", wr.path)
				}
			}
		})
	}
}

func TestModule_OpenUnknown(t *testing.T) {
	mod := NewModule(NewContext(&recordingWriter{}, discardLogger()))

	dev, err := mod.Open("keyboard")
	if dev != nil {
		t.Error("Open() returned a device for an unknown light")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Open() error = %v, want ErrInvalidArgument", err)
	}
	if Errno(err) != -int(syscall.EINVAL) {
		t.Errorf("Errno() = %d, want %d", Errno(err), -int(syscall.EINVAL))
	}

	if _, err := mod.OpenID(ID(99)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("OpenID(99) error = %v, want ErrInvalidArgument", err)
	}
}

func TestModule_DevicesShareContext(t *testing.T) {
	w := &recordingWriter{}
	mod := NewModule(NewContext(w, discardLogger()))

	notif, _ := mod.Open("notifications")
	batt, _ := mod.Open("battery")

	_ = notif.SetLight(&Request{Color: 0x00FF00})
	_ = batt.SetLight(&Request{Color: 0xFF0000})

	if got := mod.Context().Snapshot().Active; got != SlotNotification {
		t.Errorf("active = %v, want notification", got)
	}
	last := w.last()
	if last[greenBrightness] != 255 || last[redBrightness] != 0 {
		t.Errorf("battery overrode a lit notification: %v", last)
	}
}

func TestDevice_Close(t *testing.T) {
	mod := NewModule(NewContext(&recordingWriter{}, discardLogger()))
	dev, _ := mod.Open("attention")

	if err := dev.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := dev.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if err := dev.SetLight(&Request{}); !errors.Is(err, ErrClosed) {
		t.Errorf("SetLight() after Close error = %v, want ErrClosed", err)
	}
}

func TestModuleInfo(t *testing.T) {
	info := NewModule(NewContext(&recordingWriter{}, discardLogger())).Info()
	if info.ID != "lights" || info.VersionMajor != 1 || info.VersionMinor != 0 {
		t.Errorf("unexpected descriptor: %+v", info)
	}
}

func TestErrno(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"errno", syscall.EACCES, -int(syscall.EACCES)},
		{"wrapped", fmt.Errorf("write: %w", syscall.ENOSPC), -int(syscall.ENOSPC)},
		{"joined", errors.Join(errors.New("plain"), syscall.EROFS), -int(syscall.EROFS)},
		{"no errno", errors.New("plain"), -int(syscall.EIO)},
		{"invalid argument", ErrInvalidArgument, -int(syscall.EINVAL)},
	}

	for _, tt := range tests {
		if got := Errno(tt.err); got != tt.want {
			t.Errorf("%s: Errno() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
