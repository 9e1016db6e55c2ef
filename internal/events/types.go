package events

// Event type constants for kelindar/event.
const (
	TypeLightApplied uint32 = iota + 1
	TypeBrightnessChanged
	TypeWriteFailed
	TypeMACResolved
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// LightAppliedEvent is published after the indicator LED was reprogrammed.
type LightAppliedEvent struct {
	Source    string `json:"source" example:"notification" doc:"Request that owns the indicator: attention, notification or battery"`
	Color     string `json:"color" example:"00ff00" doc:"RGB color written, hex"`
	Red       int    `json:"red" doc:"Red brightness written"`
	Green     int    `json:"green" doc:"Green brightness written"`
	Blue      int    `json:"blue" doc:"Blue brightness written"`
	Blink     bool   `json:"blink" doc:"Whether rise/fall timing was programmed"`
	OnMS      int    `json:"on_ms" example:"500" doc:"Requested on duration"`
	OffMS     int    `json:"off_ms" example:"2500" doc:"Requested off duration"`
	RiseIndex int    `json:"rise_index" example:"2" doc:"Rise time table index"`
	RiseDelay int    `json:"rise_delay" doc:"delay_on written after rise"`
	FallIndex int    `json:"fall_index" example:"4" doc:"Fall time table index"`
	FallDelay int    `json:"fall_delay" doc:"delay_off written after fall"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for LightAppliedEvent.
func (e LightAppliedEvent) Type() uint32 { return TypeLightApplied }

// BrightnessChangedEvent is published after a backlight level was written.
type BrightnessChangedEvent struct {
	Light      string `json:"light" example:"backlight" doc:"backlight or buttons"`
	Brightness int    `json:"brightness" example:"128" doc:"Level written, 0-255"`
	Timestamp  string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for BrightnessChangedEvent.
func (e BrightnessChangedEvent) Type() uint32 { return TypeBrightnessChanged }

// WriteFailedEvent is published for every failed sysfs write.
type WriteFailedEvent struct {
	Path      string `json:"path" example:"/sys/class/leds/red/brightness" doc:"Attribute that failed"`
	Error     string `json:"error" doc:"Failure reason"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for WriteFailedEvent.
func (e WriteFailedEvent) Type() uint32 { return TypeWriteFailed }

// MACResolvedEvent is published after each WLAN address lookup.
type MACResolvedEvent struct {
	Address   string `json:"address,omitempty" example:"9c:99:a0:12:34:56" doc:"Resolved address"`
	Found     bool   `json:"found" doc:"Whether a vendor address was found"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for MACResolvedEvent.
func (e MACResolvedEvent) Type() uint32 { return TypeMACResolved }
