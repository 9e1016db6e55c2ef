package lights

const (
	// BacklightFile controls the LCD backlight level.
	BacklightFile = "/sys/class/leds/lcd-backlight/brightness"
	// ButtonsFile controls the capacitive button backlight level.
	ButtonsFile = "/sys/class/leds/button-backlight/brightness"
)

// ledChannel holds the attribute files of one color of the indicator LED.
type ledChannel struct {
	brightness string
	rise       string
	fall       string
	delayOn    string
	delayOff   string
}

func newLEDChannel(color string) ledChannel {
	base := "/sys/class/leds/" + color + "/"
	return ledChannel{
		brightness: base + "brightness",
		rise:       base + "risetime",
		fall:       base + "falltime",
		delayOn:    base + "delay_on",
		delayOff:   base + "delay_off",
	}
}

// ledChannels is ordered red, green, blue.
var ledChannels = [3]ledChannel{
	newLEDChannel("red"),
	newLEDChannel("green"),
	newLEDChannel("blue"),
}

// IndicatorFiles returns every attribute file the indicator LED uses.
func IndicatorFiles() []string {
	files := make([]string, 0, len(ledChannels)*5)
	for _, ch := range ledChannels {
		files = append(files, ch.brightness, ch.rise, ch.fall, ch.delayOn, ch.delayOff)
	}
	return files
}
