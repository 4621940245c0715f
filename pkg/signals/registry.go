package signals

import (
	"github.com/dmitrymomot/deviceprint/pkg/fingerprint"
)

// catalog lists every collector in FULL-preset order. The fingerprint
// package's preset tables and this catalog must stay in sync; the registry
// test asserts the two match exactly.
var catalog = []struct {
	name      string
	collector fingerprint.Collector[*Source]
}{
	{"userAgent", fingerprint.Immediate(userAgent)},
	{"language", fingerprint.Immediate(languageSignal)},
	{"languages", fingerprint.Immediate(languages)},
	{"platform", fingerprint.Immediate(platform)},
	{"vendor", fingerprint.Immediate(vendor)},
	{"timezone", fingerprint.Immediate(timezone)},
	{"timezoneOffset", fingerprint.Immediate(timezoneOffset)},
	{"screenResolution", fingerprint.Immediate(screenResolution)},
	{"colorDepth", fingerprint.Immediate(colorDepth)},
	{"hardwareConcurrency", fingerprint.Immediate(hardwareConcurrency)},
	{"deviceMemory", fingerprint.Immediate(deviceMemory)},
	{"touchSupport", fingerprint.Immediate(touchSupport)},
	{"cookiesEnabled", fingerprint.Immediate(cookiesEnabled)},
	{"doNotTrack", fingerprint.Immediate(doNotTrack)},
	{"browserName", fingerprint.Immediate(browserName)},
	{"browserVersion", fingerprint.Immediate(browserVersion)},
	{"osName", fingerprint.Immediate(osName)},
	{"deviceType", fingerprint.Immediate(deviceType)},
	{"pixelRatio", fingerprint.Immediate(pixelRatio)},
	{"availableScreenResolution", fingerprint.Immediate(availableScreenResolution)},
	{"canvas", fingerprint.Immediate(canvas)},
	{"webgl", fingerprint.Immediate(webgl)},
	{"webglVendor", fingerprint.Immediate(webglVendor)},
	{"webglRenderer", fingerprint.Immediate(webglRenderer)},
	{"fonts", fingerprint.Immediate(fonts)},
	{"plugins", fingerprint.Immediate(plugins)},
	{"mimeTypes", fingerprint.Immediate(mimeTypes)},
	{"audio", fingerprint.Immediate(audio)},
	{"ip", fingerprint.Immediate(ip)},
	{"acceptHeaders", fingerprint.Immediate(acceptHeaders)},
	{"headerOrder", fingerprint.Immediate(headerOrder)},
	{"architecture", fingerprint.Immediate(architecture)},
	{"connection", fingerprint.Immediate(connection)},
	{"mediaDevices", fingerprint.Immediate(mediaDevices)},
	{"permissions", fingerprint.Immediate(permissions)},
	{"geo", fingerprint.Deferred(geo)},
	{"reverseDns", fingerprint.Deferred(reverseDNS)},
}

// NewRegistry builds the full production signal catalog.
func NewRegistry() *fingerprint.Registry[*Source] {
	reg := fingerprint.NewRegistry[*Source]()
	for _, entry := range catalog {
		reg.MustRegister(entry.name, entry.collector)
	}
	return reg
}
