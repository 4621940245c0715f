package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Device type classifications.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"
)

// UserAgent holds the parsed facts. Zero-value fields mean the parser could
// not classify that facet.
type UserAgent struct {
	raw        string
	browser    string
	browserVer string
	os         string
	deviceType string
}

// String returns the raw user agent string.
func (ua UserAgent) String() string { return ua.raw }

// Browser returns the browser family name (e.g. "Chrome").
func (ua UserAgent) Browser() string { return ua.browser }

// BrowserVersion returns the browser version string (e.g. "120.0").
func (ua UserAgent) BrowserVersion() string { return ua.browserVer }

// OS returns the operating system name (e.g. "macOS").
func (ua UserAgent) OS() string { return ua.os }

// DeviceType returns one of the Device* constants.
func (ua UserAgent) DeviceType() string { return ua.deviceType }

// IsBot reports whether the string matches a known crawler pattern.
func (ua UserAgent) IsBot() bool { return ua.deviceType == DeviceBot }

var (
	botPattern = regexp.MustCompile(`(?i)bot|crawler|spider|crawling|facebookexternalhit|slurp|mediapartners`)

	// browserPatterns in matching priority: derived families carry their
	// own token alongside the base engine's, so they must match first.
	browserPatterns = []struct {
		name    string
		pattern *regexp.Regexp
	}{
		{"Edge", regexp.MustCompile(`(?i)edg(?:e|a|ios)?/([\d.]+)`)},
		{"Opera", regexp.MustCompile(`(?i)(?:opr|opera)[/ ]([\d.]+)`)},
		{"Samsung Browser", regexp.MustCompile(`(?i)samsungbrowser/([\d.]+)`)},
		{"Chrome", regexp.MustCompile(`(?i)(?:chrome|crios)/([\d.]+)`)},
		{"Firefox", regexp.MustCompile(`(?i)(?:firefox|fxios)/([\d.]+)`)},
		{"Safari", regexp.MustCompile(`(?i)version/([\d.]+).*safari`)},
	}
)

var titleCaser = cases.Title(language.English)

// Parse extracts browser, OS, and device-type facts from a raw User-Agent
// string. It never fails; unclassifiable facets come back empty or unknown.
func Parse(raw string) UserAgent {
	ua := UserAgent{raw: raw, deviceType: DeviceUnknown}
	if raw == "" {
		return ua
	}
	lower := strings.ToLower(raw)

	if botPattern.MatchString(raw) {
		ua.deviceType = DeviceBot
	}

	for _, bp := range browserPatterns {
		if m := bp.pattern.FindStringSubmatch(raw); m != nil {
			ua.browser = bp.name
			ua.browserVer = m[1]
			break
		}
	}

	ua.os = detectOS(lower)

	if ua.deviceType != DeviceBot {
		ua.deviceType = detectDevice(lower)
	}
	return ua
}

func detectOS(lower string) string {
	switch {
	case strings.Contains(lower, "windows phone"):
		return "Windows Phone"
	case strings.Contains(lower, "windows"):
		return "Windows"
	case strings.Contains(lower, "iphone"), strings.Contains(lower, "ipad"), strings.Contains(lower, "ipod"):
		return "iOS"
	case strings.Contains(lower, "mac os x"), strings.Contains(lower, "macintosh"):
		return "macOS"
	case strings.Contains(lower, "cros"):
		return "ChromeOS"
	case strings.Contains(lower, "android"):
		return "Android"
	case strings.Contains(lower, "linux"):
		return "Linux"
	}
	if fields := strings.Fields(lower); len(fields) > 0 && strings.HasPrefix(fields[0], "curl") {
		return titleCaser.String(strings.SplitN(fields[0], "/", 2)[0])
	}
	return ""
}

func detectDevice(lower string) string {
	switch {
	case strings.Contains(lower, "ipad"),
		strings.Contains(lower, "tablet"),
		strings.Contains(lower, "android") && !strings.Contains(lower, "mobile"):
		return DeviceTablet
	case strings.Contains(lower, "mobi"),
		strings.Contains(lower, "iphone"),
		strings.Contains(lower, "ipod"),
		strings.Contains(lower, "windows phone"):
		return DeviceMobile
	case strings.Contains(lower, "windows"),
		strings.Contains(lower, "macintosh"),
		strings.Contains(lower, "cros"),
		strings.Contains(lower, "linux"):
		return DeviceDesktop
	}
	return DeviceUnknown
}
