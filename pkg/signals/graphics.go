package signals

import (
	"context"

	"github.com/dmitrymomot/deviceprint/pkg/fingerprint"
)

func canvas(_ context.Context, src *Source) any {
	if h := src.telemetry.CanvasHash; h != "" {
		return h
	}
	return fingerprint.NotSupported
}

func webgl(_ context.Context, src *Source) any {
	if w := src.telemetry.WebGL; w != nil && w.Hash != "" {
		return w.Hash
	}
	return fingerprint.NotSupported
}

func webglVendor(_ context.Context, src *Source) any {
	if w := src.telemetry.WebGL; w != nil && w.Vendor != "" {
		return w.Vendor
	}
	return fingerprint.NotSupported
}

func webglRenderer(_ context.Context, src *Source) any {
	if w := src.telemetry.WebGL; w != nil && w.Renderer != "" {
		return w.Renderer
	}
	return fingerprint.NotSupported
}
