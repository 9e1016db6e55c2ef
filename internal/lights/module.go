// Package lights drives the indicator LED, LCD backlight and button
// backlight through their sysfs attributes.
//
// A Module dispatches a light name to a Device. Devices for attention,
// notifications and battery share one Context, which decides which of the
// three requests currently owns the RGB indicator.
package lights

import (
	"fmt"
	"sync/atomic"
)

// ID identifies a logical light.
type ID int

const (
	Backlight ID = iota
	Buttons
	Battery
	Notifications
	Attention
)

var idNames = [...]string{
	Backlight:     "backlight",
	Buttons:       "buttons",
	Battery:       "battery",
	Notifications: "notifications",
	Attention:     "attention",
}

// String returns the light name used by the framework.
func (id ID) String() string {
	if id < 0 || int(id) >= len(idNames) {
		return fmt.Sprintf("light(%d)", int(id))
	}
	return idNames[id]
}

// IDs returns every supported light.
func IDs() []ID {
	return []ID{Backlight, Buttons, Battery, Notifications, Attention}
}

// ParseID maps a framework light name to an ID.
func ParseID(name string) (ID, error) {
	for id, n := range idNames {
		if n == name {
			return ID(id), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown light %q", ErrInvalidArgument, name)
}

// Descriptor is the static metadata a loader inspects before opening.
type Descriptor struct {
	Tag          string `json:"tag"`
	VersionMajor int    `json:"version_major"`
	VersionMinor int    `json:"version_minor"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Author       string `json:"author"`
}

// ModuleInfo describes this lights module.
var ModuleInfo = Descriptor{
	Tag:          "HWMT",
	VersionMajor: 1,
	VersionMinor: 0,
	ID:           "lights",
	Name:         "Xiaomi Lights Module",
	Author:       "The CyanogenMod Project",
}

type setFunc func(*Request) error

// Module opens Devices bound to a shared Context.
type Module struct {
	ctx      *Context
	handlers map[ID]setFunc
}

// NewModule creates a Module over ctx.
func NewModule(ctx *Context) *Module {
	return &Module{
		ctx: ctx,
		handlers: map[ID]setFunc{
			Backlight:     ctx.SetBacklight,
			Buttons:       ctx.SetButtons,
			Battery:       ctx.SetBattery,
			Notifications: ctx.SetNotification,
			Attention:     ctx.SetAttention,
		},
	}
}

// Info returns the module descriptor.
func (m *Module) Info() Descriptor {
	return ModuleInfo
}

// Context returns the shared arbitration context.
func (m *Module) Context() *Context {
	return m.ctx
}

// Open returns a Device for the named light. Unknown names fail with
// ErrInvalidArgument.
func (m *Module) Open(name string) (*Device, error) {
	id, err := ParseID(name)
	if err != nil {
		return nil, err
	}
	return m.OpenID(id)
}

// OpenID returns a Device for id.
func (m *Module) OpenID(id ID) (*Device, error) {
	set, ok := m.handlers[id]
	if !ok {
		return nil, fmt.Errorf("%w: unknown light %d", ErrInvalidArgument, int(id))
	}
	return &Device{id: id, set: set}, nil
}

// Device is an open handle to one logical light.
type Device struct {
	id     ID
	set    setFunc
	closed atomic.Bool
}

// ID returns the light this device controls.
func (d *Device) ID() ID {
	return d.id
}

// SetLight hands req to the light. A nil req is logged and ignored.
func (d *Device) SetLight(req *Request) error {
	if d.closed.Load() {
		return ErrClosed
	}
	return d.set(req)
}

// Close releases the device. It is safe to call more than once.
func (d *Device) Close() error {
	d.closed.Store(true)
	return nil
}
