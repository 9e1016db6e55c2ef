package lights

import (
	"fmt"
	"strconv"
	"strings"
)

// FlashMode selects how a light blinks.
type FlashMode int

const (
	// FlashNone keeps the light steady (or off).
	FlashNone FlashMode = iota
	// FlashTimed blinks using FlashOnMS/FlashOffMS.
	FlashTimed
	// FlashHardware asks the hardware to blink; treated like FlashTimed.
	FlashHardware
)

// String returns the lowercase mode name.
func (m FlashMode) String() string {
	switch m {
	case FlashNone:
		return "none"
	case FlashTimed:
		return "timed"
	case FlashHardware:
		return "hardware"
	default:
		return fmt.Sprintf("flash(%d)", int(m))
	}
}

// ParseFlashMode converts "none", "timed" or "hardware" into a FlashMode.
func ParseFlashMode(s string) (FlashMode, error) {
	switch s {
	case "", "none":
		return FlashNone, nil
	case "timed":
		return FlashTimed, nil
	case "hardware":
		return FlashHardware, nil
	default:
		return FlashNone, fmt.Errorf("%w: unknown flash mode %q", ErrInvalidArgument, s)
	}
}

// BrightnessMode mirrors the framework's brightness source hint. It is
// stored with the request but does not change what is written.
type BrightnessMode int

const (
	BrightnessUser BrightnessMode = iota
	BrightnessSensor
	BrightnessLowPersistence
)

// Request is one light state as handed to a device by the framework.
type Request struct {
	// Color is 0xAARRGGBB; the alpha byte is ignored.
	Color          uint32
	FlashMode      FlashMode
	FlashOnMS      int
	FlashOffMS     int
	BrightnessMode BrightnessMode
}

// RGB returns the red, green and blue bytes of the color.
func (r Request) RGB() (red, green, blue int) {
	return int(r.Color>>16) & 0xFF, int(r.Color>>8) & 0xFF, int(r.Color) & 0xFF
}

// Lit reports whether any color channel is non-zero.
func (r Request) Lit() bool {
	return r.Color&0x00FFFFFF != 0
}

// Timing returns the on/off durations the request asks for. Only timed and
// hardware flashing carry durations; every other mode is steady.
func (r Request) Timing() (onMS, offMS int) {
	switch r.FlashMode {
	case FlashTimed, FlashHardware:
		return r.FlashOnMS, r.FlashOffMS
	default:
		return 0, 0
	}
}

// Brightness converts a color to a 0-255 luma value using
// (77*R + 150*G + 29*B) >> 8.
func Brightness(color uint32) int {
	c := Request{Color: color}
	red, green, blue := c.RGB()
	return (77*red + 150*green + 29*blue) >> 8
}

// ParseColor parses a hex 0xAARRGGBB color with an optional "#", "0x" or
// "0X" prefix. Shorter values are zero-extended on the left.
func ParseColor(s string) (uint32, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if digits == "" || len(digits) > 8 {
		return 0, fmt.Errorf("%w: color %q", ErrInvalidArgument, s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q", ErrInvalidArgument, s)
	}
	return uint32(v), nil
}
