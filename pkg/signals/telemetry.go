package signals

// Telemetry is the payload the browser sensor script posts alongside a
// request. Every field is optional: absent values resolve to sentinel
// strings during collection. Pointer fields distinguish "not reported" from
// a legitimate zero value.
type Telemetry struct {
	Language            string            `json:"language,omitempty"`
	Languages           []string          `json:"languages,omitempty"`
	Platform            string            `json:"platform,omitempty"`
	Vendor              string            `json:"vendor,omitempty"`
	Timezone            string            `json:"timezone,omitempty"`
	TimezoneOffset      *int              `json:"timezoneOffset,omitempty"`
	Screen              *Screen           `json:"screen,omitempty"`
	HardwareConcurrency *int              `json:"hardwareConcurrency,omitempty"`
	DeviceMemory        *float64          `json:"deviceMemory,omitempty"`
	TouchSupport        *TouchSupport     `json:"touchSupport,omitempty"`
	CookiesEnabled      *bool             `json:"cookiesEnabled,omitempty"`
	DoNotTrack          string            `json:"doNotTrack,omitempty"`
	Architecture        string            `json:"architecture,omitempty"`
	CanvasHash          string            `json:"canvasHash,omitempty"`
	WebGL               *WebGL            `json:"webgl,omitempty"`
	AudioHash           string            `json:"audioHash,omitempty"`
	Fonts               []string          `json:"fonts,omitempty"`
	Plugins             []string          `json:"plugins,omitempty"`
	MimeTypes           []string          `json:"mimeTypes,omitempty"`
	MediaDevices        *MediaDevices     `json:"mediaDevices,omitempty"`
	Permissions         map[string]string `json:"permissions,omitempty"`
	Connection          *Connection       `json:"connection,omitempty"`
}

// Screen carries the client's screen metrics.
type Screen struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AvailWidth  int     `json:"availWidth,omitempty"`
	AvailHeight int     `json:"availHeight,omitempty"`
	ColorDepth  int     `json:"colorDepth,omitempty"`
	PixelRatio  float64 `json:"pixelRatio,omitempty"`
}

// TouchSupport mirrors the client's touch capability probes.
type TouchSupport struct {
	MaxTouchPoints int  `json:"maxTouchPoints"`
	TouchEvent     bool `json:"touchEvent"`
	TouchStart     bool `json:"touchStart"`
}

// WebGL carries the rendered WebGL probe hash and the unmasked
// vendor/renderer strings.
type WebGL struct {
	Hash     string `json:"hash,omitempty"`
	Vendor   string `json:"vendor,omitempty"`
	Renderer string `json:"renderer,omitempty"`
}

// MediaDevices counts enumerated media devices by kind. Counts rather than
// device IDs: IDs rotate per origin and would destabilize the fingerprint.
type MediaDevices struct {
	AudioInputs  int `json:"audioInputs"`
	AudioOutputs int `json:"audioOutputs"`
	VideoInputs  int `json:"videoInputs"`
}

// Connection mirrors the Network Information API snapshot.
type Connection struct {
	EffectiveType string  `json:"effectiveType,omitempty"`
	Downlink      float64 `json:"downlink,omitempty"`
	RTT           int     `json:"rtt,omitempty"`
	SaveData      bool    `json:"saveData,omitempty"`
}
