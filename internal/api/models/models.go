package models

// Health check models
type HealthData struct {
	Status  string `json:"status" example:"ok" doc:"Service status"`
	Message string `json:"message" example:"API is healthy" doc:"Status message"`
}

type HealthResponse struct {
	Body HealthData
}

// Module models
type ModuleData struct {
	Tag          string   `json:"tag" example:"HWMT" doc:"Hardware module tag"`
	VersionMajor int      `json:"version_major" example:"1" doc:"Module API major version"`
	VersionMinor int      `json:"version_minor" example:"0" doc:"Module API minor version"`
	ID           string   `json:"id" example:"lights" doc:"Module identifier"`
	Name         string   `json:"name" example:"Xiaomi Lights Module" doc:"Module name"`
	Author       string   `json:"author" example:"The CyanogenMod Project" doc:"Module author"`
	Lights       []string `json:"lights" doc:"Light names accepted by the module"`
	Version      string   `json:"version" example:"1.0.0" doc:"Application version"`
	GitCommit    string   `json:"git_commit" example:"abc123" doc:"Git commit hash"`
	BuildDate    string   `json:"build_date" example:"2025-01-27T10:30:00Z" doc:"Build timestamp"`
	GoVersion    string   `json:"go_version" example:"go1.24.0" doc:"Go runtime version"`
	Platform     string   `json:"platform" example:"linux/arm64" doc:"Target platform"`
}

type ModuleResponse struct {
	Body ModuleData
}

// Light models
type LightState struct {
	Color          string `json:"color" example:"ff00ff00" doc:"ARGB color, hex"`
	FlashMode      string `json:"flash_mode" example:"timed" enum:"none,timed,hardware" doc:"Flash mode"`
	FlashOnMS      int    `json:"flash_on_ms" example:"500" doc:"Flash on duration in milliseconds"`
	FlashOffMS     int    `json:"flash_off_ms" example:"2500" doc:"Flash off duration in milliseconds"`
	BrightnessMode int    `json:"brightness_mode" example:"0" doc:"Brightness source hint: 0 user, 1 sensor, 2 low persistence"`
}

type SetLightRequest struct {
	ID   string `path:"id" example:"notifications" doc:"Light name: backlight, buttons, battery, notifications or attention"`
	Body struct {
		Color          string `json:"color" example:"ff00ff00" pattern:"^(0[xX]|#)?[0-9a-fA-F]{1,8}$" doc:"ARGB color, hex; alpha is ignored"`
		FlashMode      string `json:"flash_mode,omitempty" example:"timed" enum:"none,timed,hardware" doc:"Flash mode, defaults to none"`
		FlashOnMS      int    `json:"flash_on_ms,omitempty" example:"500" doc:"Flash on duration in milliseconds"`
		FlashOffMS     int    `json:"flash_off_ms,omitempty" example:"2500" doc:"Flash off duration in milliseconds"`
		BrightnessMode int    `json:"brightness_mode,omitempty" minimum:"0" maximum:"2" doc:"Brightness source hint"`
	}
}

type SetLightData struct {
	Light  string `json:"light" example:"notifications" doc:"Light that was set"`
	Result int    `json:"result" example:"0" doc:"0 on success, otherwise a negative errno"`
}

type SetLightResponse struct {
	Body SetLightData
}

// LightsState is the arbitration snapshot. It is also sent as the first
// event of every SSE connection.
type LightsState struct {
	Attention    LightState `json:"attention" doc:"Attention request"`
	Notification LightState `json:"notification" doc:"Notification request"`
	Battery      LightState `json:"battery" doc:"Battery request"`
	Active       string     `json:"active,omitempty" example:"notification" doc:"Request currently shown on the indicator"`
}

type LightsResponse struct {
	Body LightsState
}

// WLAN models
type WLANAddressData struct {
	Address string `json:"address" example:"9c:99:a0:12:34:56" doc:"Factory WLAN MAC address"`
}

type WLANAddressResponse struct {
	Body WLANAddressData
}
