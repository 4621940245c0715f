package signals_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deviceprint/pkg/fingerprint"
	"github.com/dmitrymomot/deviceprint/pkg/signals"
)

func newSource(t *testing.T, headers map[string]string, payload signals.Telemetry, opts ...signals.SourceOption) *signals.Source {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/fingerprint", nil)
	req.RemoteAddr = "203.0.113.7:43210"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return signals.NewSource(req, payload, opts...)
}

func collectOne(t *testing.T, src *signals.Source, name string) any {
	t.Helper()
	gen, err := fingerprint.New(signals.NewRegistry(), fingerprint.WithSignals(name))
	require.NoError(t, err)
	components := gen.CollectComponents(context.Background(), src)
	require.Contains(t, components, name)
	return components[name]
}

func TestNavigatorSignals(t *testing.T) {
	t.Parallel()

	t.Run("userAgent from header", func(t *testing.T) {
		src := newSource(t, map[string]string{"User-Agent": "Mozilla/5.0 test"}, signals.Telemetry{})
		assert.Equal(t, "Mozilla/5.0 test", collectOne(t, src, "userAgent"))
	})

	t.Run("missing userAgent is unknown", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{})
		assert.Equal(t, fingerprint.Unknown, collectOne(t, src, "userAgent"))
	})

	t.Run("language prefers telemetry over header", func(t *testing.T) {
		src := newSource(t,
			map[string]string{"Accept-Language": "fr-FR,fr;q=0.9"},
			signals.Telemetry{Language: "en-US"},
		)
		assert.Equal(t, "en-US", collectOne(t, src, "language"))
	})

	t.Run("language falls back to accept-language", func(t *testing.T) {
		src := newSource(t, map[string]string{"Accept-Language": "fr-FR,fr;q=0.9"}, signals.Telemetry{})
		assert.Equal(t, "fr-FR", collectOne(t, src, "language"))
	})

	t.Run("platform falls back to client hint without quotes", func(t *testing.T) {
		src := newSource(t, map[string]string{"Sec-CH-UA-Platform": `"macOS"`}, signals.Telemetry{})
		assert.Equal(t, "macOS", collectOne(t, src, "platform"))
	})

	t.Run("browser facts derive from the user agent", func(t *testing.T) {
		src := newSource(t, map[string]string{
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
		}, signals.Telemetry{})
		assert.Equal(t, "Firefox", collectOne(t, src, "browserName"))
		assert.Equal(t, "121.0", collectOne(t, src, "browserVersion"))
		assert.Equal(t, "Windows", collectOne(t, src, "osName"))
		assert.Equal(t, "desktop", collectOne(t, src, "deviceType"))
	})

	t.Run("cookiesEnabled reports the literal false", func(t *testing.T) {
		off := false
		src := newSource(t, nil, signals.Telemetry{CookiesEnabled: &off})
		assert.Equal(t, false, collectOne(t, src, "cookiesEnabled"))
	})
}

func TestScreenAndHardwareSignals(t *testing.T) {
	t.Parallel()

	t.Run("screen metrics", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{
			Screen: &signals.Screen{Width: 2560, Height: 1440, AvailWidth: 2560, AvailHeight: 1415, ColorDepth: 30, PixelRatio: 2},
		})
		assert.Equal(t, "2560x1440", collectOne(t, src, "screenResolution"))
		assert.Equal(t, "2560x1415", collectOne(t, src, "availableScreenResolution"))
		assert.Equal(t, 30, collectOne(t, src, "colorDepth"))
		assert.Equal(t, float64(2), collectOne(t, src, "pixelRatio"))
	})

	t.Run("absent screen is unknown", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{})
		assert.Equal(t, fingerprint.Unknown, collectOne(t, src, "screenResolution"))
	})

	t.Run("hardware capabilities default to not supported", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{})
		assert.Equal(t, fingerprint.NotSupported, collectOne(t, src, "hardwareConcurrency"))
		assert.Equal(t, fingerprint.NotSupported, collectOne(t, src, "deviceMemory"))
		assert.Equal(t, fingerprint.NotSupported, collectOne(t, src, "touchSupport"))
	})

	t.Run("touch support shape", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{
			TouchSupport: &signals.TouchSupport{MaxTouchPoints: 5, TouchEvent: true, TouchStart: true},
		})
		got, ok := collectOne(t, src, "touchSupport").(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 5, got["maxTouchPoints"])
	})
}

func TestGraphicsSignals(t *testing.T) {
	t.Parallel()

	t.Run("webgl values from payload", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{
			CanvasHash: "c4nv4s",
			WebGL:      &signals.WebGL{Hash: "w3bgl", Vendor: "Google Inc.", Renderer: "ANGLE (Apple M1)"},
		})
		assert.Equal(t, "c4nv4s", collectOne(t, src, "canvas"))
		assert.Equal(t, "w3bgl", collectOne(t, src, "webgl"))
		assert.Equal(t, "Google Inc.", collectOne(t, src, "webglVendor"))
		assert.Equal(t, "ANGLE (Apple M1)", collectOne(t, src, "webglRenderer"))
	})

	t.Run("absent rendering surfaces are not supported", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{})
		assert.Equal(t, fingerprint.NotSupported, collectOne(t, src, "canvas"))
		assert.Equal(t, fingerprint.NotSupported, collectOne(t, src, "webgl"))
	})
}

func TestMediaSignals(t *testing.T) {
	t.Parallel()

	t.Run("denied media permission surfaces as sentinel", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{
			Permissions: map[string]string{"camera": "denied"},
		})
		assert.Equal(t, fingerprint.PermissionDenied, collectOne(t, src, "mediaDevices"))
	})

	t.Run("device counts pass through", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{
			MediaDevices: &signals.MediaDevices{AudioInputs: 1, AudioOutputs: 2, VideoInputs: 1},
		})
		got, ok := collectOne(t, src, "mediaDevices").(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 2, got["audioOutputs"])
	})
}

func TestNetworkSignals(t *testing.T) {
	t.Parallel()

	t.Run("ip comes from the request", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{})
		assert.Equal(t, "203.0.113.7", collectOne(t, src, "ip"))
	})

	t.Run("headerOrder is a canonical signature", func(t *testing.T) {
		src := newSource(t, map[string]string{
			"User-Agent":      "x",
			"Accept":          "y",
			"Accept-Language": "z",
			"X-Custom-Noise":  "ignored",
		}, signals.Telemetry{})
		assert.Equal(t, "accept,accept-language,user-agent", collectOne(t, src, "headerOrder"))
	})

	t.Run("geo without a resolver is not available", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{})
		assert.Equal(t, fingerprint.NotAvailable, collectOne(t, src, "geo"))
	})

	t.Run("reverse dns resolves through the injected resolver", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{}, signals.WithResolver(staticResolver{"host.example.com."}))
		assert.Equal(t, "host.example.com", collectOne(t, src, "reverseDns"))
	})

	t.Run("reverse dns without a resolver is not available", func(t *testing.T) {
		src := newSource(t, nil, signals.Telemetry{})
		assert.Equal(t, fingerprint.NotAvailable, collectOne(t, src, "reverseDns"))
	})
}

type staticResolver []string

func (r staticResolver) LookupAddr(context.Context, string) ([]string, error) {
	return r, nil
}

func TestFullPipelineDeterminism(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Accept-Language": "en-US,en;q=0.9",
		"Accept":          "text/html",
	}
	payload := signals.Telemetry{
		Language:   "en-US",
		Platform:   "MacIntel",
		Timezone:   "Europe/Vienna",
		CanvasHash: "abc123",
		Screen:     &signals.Screen{Width: 1920, Height: 1080, ColorDepth: 24},
	}

	gen, err := fingerprint.New(signals.NewRegistry(), fingerprint.WithPreset("EXTENDED"))
	require.NoError(t, err)

	first := gen.Generate(context.Background(), newSource(t, headers, payload))
	second := gen.Generate(context.Background(), newSource(t, headers, payload))

	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Regexp(t, "^[a-f0-9]{64}$", first.Fingerprint)
	assert.Equal(t, first.SignalsUsed, second.SignalsUsed)
	assert.Equal(t, "abc123", first.Components["canvas"])
}
