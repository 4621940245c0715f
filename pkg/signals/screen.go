package signals

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/deviceprint/pkg/fingerprint"
)

func screenResolution(_ context.Context, src *Source) any {
	s := src.telemetry.Screen
	if s == nil || s.Width == 0 || s.Height == 0 {
		return fingerprint.Unknown
	}
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func availableScreenResolution(_ context.Context, src *Source) any {
	s := src.telemetry.Screen
	if s == nil || s.AvailWidth == 0 || s.AvailHeight == 0 {
		return fingerprint.Unknown
	}
	return fmt.Sprintf("%dx%d", s.AvailWidth, s.AvailHeight)
}

func colorDepth(_ context.Context, src *Source) any {
	if s := src.telemetry.Screen; s != nil && s.ColorDepth > 0 {
		return s.ColorDepth
	}
	return fingerprint.Unknown
}

func pixelRatio(_ context.Context, src *Source) any {
	if s := src.telemetry.Screen; s != nil && s.PixelRatio > 0 {
		return s.PixelRatio
	}
	return fingerprint.Unknown
}
