package signals

import (
	"context"
	"strings"

	"github.com/dmitrymomot/deviceprint/pkg/fingerprint"
)

func hardwareConcurrency(_ context.Context, src *Source) any {
	if v := src.telemetry.HardwareConcurrency; v != nil && *v > 0 {
		return *v
	}
	return fingerprint.NotSupported
}

func deviceMemory(_ context.Context, src *Source) any {
	if v := src.telemetry.DeviceMemory; v != nil && *v > 0 {
		return *v
	}
	return fingerprint.NotSupported
}

func touchSupport(_ context.Context, src *Source) any {
	ts := src.telemetry.TouchSupport
	if ts == nil {
		return fingerprint.NotSupported
	}
	return map[string]any{
		"maxTouchPoints": ts.MaxTouchPoints,
		"touchEvent":     ts.TouchEvent,
		"touchStart":     ts.TouchStart,
	}
}

func architecture(_ context.Context, src *Source) any {
	if a := src.telemetry.Architecture; a != "" {
		return a
	}
	if a := strings.Trim(src.header.Get("Sec-CH-UA-Arch"), `"`); a != "" {
		return a
	}
	return fingerprint.NotSupported
}
