package fingerprint

import "strings"

// Built-in preset names. Matching is case-insensitive.
const (
	PresetDefault  = "DEFAULT"
	PresetExtended = "EXTENDED"
	PresetFull     = "FULL"
)

// The preset tables are process-wide constants tiered by stability and
// permission sensitivity: DEFAULT holds the signals that are cheap, stable,
// and always reportable; EXTENDED adds rendering and media surfaces that
// are more distinctive but more volatile; FULL adds everything else,
// including permission-gated capabilities and network enrichment.
// Invariant: DEFAULT ⊆ EXTENDED ⊆ FULL.
var (
	defaultSignals = []string{
		"userAgent",
		"language",
		"languages",
		"platform",
		"vendor",
		"timezone",
		"timezoneOffset",
		"screenResolution",
		"colorDepth",
		"hardwareConcurrency",
		"deviceMemory",
		"touchSupport",
		"cookiesEnabled",
		"doNotTrack",
	}

	extendedOnly = []string{
		"browserName",
		"browserVersion",
		"osName",
		"deviceType",
		"pixelRatio",
		"availableScreenResolution",
		"canvas",
		"webgl",
		"webglVendor",
		"webglRenderer",
		"fonts",
		"plugins",
		"mimeTypes",
		"audio",
		"ip",
		"acceptHeaders",
		"headerOrder",
	}

	fullOnly = []string{
		"architecture",
		"connection",
		"mediaDevices",
		"permissions",
		"geo",
		"reverseDns",
	}

	extendedSignals = concat(defaultSignals, extendedOnly)
	fullSignals     = concat(extendedSignals, fullOnly)
)

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// DefaultPreset returns the DEFAULT preset's signal names in order.
// The returned slice is a copy; callers may modify it freely.
func DefaultPreset() []string { return copyOf(defaultSignals) }

// ExtendedPreset returns the EXTENDED preset's signal names in order.
func ExtendedPreset() []string { return copyOf(extendedSignals) }

// FullPreset returns the FULL preset's signal names in order.
func FullPreset() []string { return copyOf(fullSignals) }

// PresetSignals returns the signal list of the named preset and whether the
// name is a known preset. Matching is case-insensitive.
func PresetSignals(name string) ([]string, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case PresetDefault:
		return DefaultPreset(), true
	case PresetExtended:
		return ExtendedPreset(), true
	case PresetFull:
		return FullPreset(), true
	}
	return nil, false
}

func copyOf(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
