package lights

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/smazurov/halshim/internal/sysfs"
)

// Slot names one of the three requests competing for the indicator LED.
type Slot int

const (
	SlotBattery Slot = iota
	SlotNotification
	SlotAttention
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotBattery:
		return "battery"
	case SlotNotification:
		return "notification"
	case SlotAttention:
		return "attention"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// Applied describes what the indicator LED was programmed with.
type Applied struct {
	Source    Slot
	Color     uint32
	OnMS      int
	OffMS     int
	Blink     bool
	RiseIndex int
	RiseDelay int
	FallIndex int
	FallDelay int
}

// Observer receives notifications after hardware has been written. It is
// called with the context lock held and must not call back into the Context.
type Observer interface {
	LightApplied(a Applied)
	BrightnessChanged(id ID, brightness int)
}

// Snapshot is a copy of the arbitration state.
type Snapshot struct {
	Attention    Request
	Notification Request
	Battery      Request
	Active       Slot
	// Applied is false until the indicator has been written at least once.
	Applied bool
}

// Context owns the three indicator requests and serializes every write to
// the light hardware behind one mutex.
type Context struct {
	writer   sysfs.IntWriter
	logger   *slog.Logger
	observer Observer

	mu           sync.Mutex
	attention    Request
	notification Request
	battery      Request
	active       Slot
	applied      bool
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithObserver registers an observer for applied light states.
func WithObserver(o Observer) ContextOption {
	return func(c *Context) {
		c.observer = o
	}
}

// NewContext creates an initialized Context writing through w. All three
// requests start zeroed (off, no flashing).
func NewContext(w sysfs.IntWriter, logger *slog.Logger, opts ...ContextOption) *Context {
	c := &Context{
		writer: w,
		logger: logger,
		active: SlotBattery,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAttention stores the attention request and re-arbitrates.
func (c *Context) SetAttention(req *Request) error {
	return c.setSlot(SlotAttention, req)
}

// SetNotification stores the notification request and re-arbitrates.
func (c *Context) SetNotification(req *Request) error {
	return c.setSlot(SlotNotification, req)
}

// SetBattery stores the battery request and re-arbitrates.
func (c *Context) SetBattery(req *Request) error {
	return c.setSlot(SlotBattery, req)
}

// SetBacklight writes the luma of req's color to the LCD backlight.
func (c *Context) SetBacklight(req *Request) error {
	return c.setBrightness(Backlight, BacklightFile, req)
}

// SetButtons writes the luma of req's color to the button backlight.
func (c *Context) SetButtons(req *Request) error {
	return c.setBrightness(Buttons, ButtonsFile, req)
}

// Snapshot returns a copy of the current arbitration state.
func (c *Context) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Attention:    c.attention,
		Notification: c.notification,
		Battery:      c.battery,
		Active:       c.active,
		Applied:      c.applied,
	}
}

func (c *Context) setSlot(slot Slot, req *Request) error {
	if req == nil {
		c.logger.Error("Light request is nil, ignoring", "slot", slot.String())
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch slot {
	case SlotAttention:
		c.attention = *req
	case SlotNotification:
		c.notification = *req
	default:
		c.battery = *req
	}

	c.logger.Debug("Light request stored", "slot", slot.String(), "color", fmt.Sprintf("%08x", req.Color))

	return c.arbitrateLocked()
}

// arbitrateLocked applies attention if lit, else notification if lit, else
// battery whether lit or not.
func (c *Context) arbitrateLocked() error {
	c.logger.Debug("Arbitrating indicator",
		"attention", fmt.Sprintf("%x", c.attention.Color),
		"notification", fmt.Sprintf("%x", c.notification.Color),
		"battery", fmt.Sprintf("%x", c.battery.Color))

	switch {
	case c.attention.Lit():
		return c.applyLocked(SlotAttention, c.attention)
	case c.notification.Lit():
		return c.applyLocked(SlotNotification, c.notification)
	default:
		return c.applyLocked(SlotBattery, c.battery)
	}
}

// applyLocked programs the indicator LED. Every write is attempted even
// when an earlier one failed; all failures are returned joined.
func (c *Context) applyLocked(source Slot, req Request) error {
	red, green, blue := req.RGB()
	rgb := [3]int{red, green, blue}
	onMS, offMS := req.Timing()

	c.logger.Debug("Applying indicator", "source", source.String(), "on_ms", onMS, "off_ms", offMS)

	var errs []error
	write := func(path string, value int) {
		if err := c.writer.WriteInt(path, value); err != nil {
			errs = append(errs, err)
		}
	}

	for _, ch := range ledChannels {
		write(ch.brightness, 0)
		write(ch.rise, 0)
		write(ch.fall, 0)
	}

	for i, ch := range ledChannels {
		write(ch.brightness, rgb[i])
	}

	applied := Applied{
		Source: source,
		Color:  req.Color & 0x00FFFFFF,
		OnMS:   onMS,
		OffMS:  offMS,
	}

	// 0 and 1 both mean steady.
	if onMS != 0 && onMS != 1 {
		applied.Blink = true
		applied.RiseIndex, applied.RiseDelay = c.writeDelay(write, onMS, true)
		applied.FallIndex, applied.FallDelay = c.writeDelay(write, offMS, false)
	}

	c.active = source
	c.applied = true
	if c.observer != nil {
		c.observer.LightApplied(applied)
	}

	return errors.Join(errs...)
}

// writeDelay writes the closest transition index to every channel's rise
// (or fall) attribute and the remaining budget to delay_on (or delay_off).
func (c *Context) writeDelay(write func(string, int), ms int, rising bool) (index, delay int) {
	index, delay = Split(ms)

	for _, ch := range ledChannels {
		if rising {
			write(ch.rise, index)
		} else {
			write(ch.fall, index)
		}
	}

	c.logger.Debug("Balance correction", "ms", ms, "index", index, "delay", delay, "rising", rising)

	for _, ch := range ledChannels {
		if rising {
			write(ch.delayOn, delay)
		} else {
			write(ch.delayOff, delay)
		}
	}
	return index, delay
}

func (c *Context) setBrightness(id ID, path string, req *Request) error {
	if req == nil {
		c.logger.Error("Light request is nil, ignoring", "light", id.String())
		return nil
	}

	brightness := Brightness(req.Color)
	c.logger.Debug("Setting brightness", "light", id.String(), "color", fmt.Sprintf("%x", req.Color), "brightness", brightness)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.writer.WriteInt(path, brightness); err != nil {
		return err
	}
	if c.observer != nil {
		c.observer.BrightnessChanged(id, brightness)
	}
	return nil
}
