package signals

import (
	"context"

	"github.com/dmitrymomot/deviceprint/pkg/fingerprint"
)

func timezone(_ context.Context, src *Source) any {
	if tz := src.telemetry.Timezone; tz != "" {
		return tz
	}
	return fingerprint.Unknown
}

func timezoneOffset(_ context.Context, src *Source) any {
	if off := src.telemetry.TimezoneOffset; off != nil {
		return *off
	}
	return fingerprint.Unknown
}
