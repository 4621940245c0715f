package signals

import (
	"context"

	"github.com/dmitrymomot/deviceprint/pkg/fingerprint"
)

func audio(_ context.Context, src *Source) any {
	if h := src.telemetry.AudioHash; h != "" {
		return h
	}
	return fingerprint.NotSupported
}

func fonts(_ context.Context, src *Source) any {
	if f := src.telemetry.Fonts; len(f) > 0 {
		return f
	}
	return fingerprint.Unknown
}

func plugins(_ context.Context, src *Source) any {
	if p := src.telemetry.Plugins; len(p) > 0 {
		return p
	}
	return fingerprint.Unknown
}

func mimeTypes(_ context.Context, src *Source) any {
	if m := src.telemetry.MimeTypes; len(m) > 0 {
		return m
	}
	return fingerprint.Unknown
}

func mediaDevices(_ context.Context, src *Source) any {
	if md := src.telemetry.MediaDevices; md != nil {
		return map[string]any{
			"audioInputs":  md.AudioInputs,
			"audioOutputs": md.AudioOutputs,
			"videoInputs":  md.VideoInputs,
		}
	}
	// Device enumeration is permission-gated: a client that reported a
	// denied media permission but no device counts was refused access.
	for name, state := range src.telemetry.Permissions {
		if (name == "camera" || name == "microphone") && state == "denied" {
			return fingerprint.PermissionDenied
		}
	}
	return fingerprint.NotSupported
}

func permissions(_ context.Context, src *Source) any {
	if p := src.telemetry.Permissions; len(p) > 0 {
		return p
	}
	return fingerprint.Unknown
}

func connection(_ context.Context, src *Source) any {
	c := src.telemetry.Connection
	if c == nil {
		return fingerprint.NotSupported
	}
	return map[string]any{
		"effectiveType": c.EffectiveType,
		"downlink":      c.Downlink,
		"rtt":           c.RTT,
		"saveData":      c.SaveData,
	}
}
