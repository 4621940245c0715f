package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deviceprint/pkg/fingerprint"
	"github.com/dmitrymomot/deviceprint/pkg/logger"
	"github.com/dmitrymomot/deviceprint/pkg/signals"
)

func newTestApp() *app {
	return &app{
		registry:          signals.NewRegistry(),
		signalTimeout:     500 * time.Millisecond,
		includeComponents: true,
		log:               logger.New(logger.WithOutput(os.Stderr), logger.WithFormat(logger.FormatText)),
	}
}

func postFingerprint(t *testing.T, a *app, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/fingerprint", bytes.NewReader(body))
	req.RemoteAddr = "203.0.113.7:43210"
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.router().ServeHTTP(rec, req)
	return rec
}

func TestHandleFingerprint(t *testing.T) {
	t.Run("explicit signal list", func(t *testing.T) {
		rec := postFingerprint(t, newTestApp(), fingerprintRequest{
			Signals: []string{"userAgent", "language", "ip"},
			Telemetry: signals.Telemetry{
				Language: "en-US",
			},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp fingerprintResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Regexp(t, "^[a-f0-9]{64}$", resp.Fingerprint)
		assert.ElementsMatch(t, []string{"userAgent", "language", "ip"}, resp.SignalsUsed)
		assert.Equal(t, "en-US", resp.Components["language"])
		assert.Equal(t, "203.0.113.7", resp.Components["ip"])
		assert.NotEmpty(t, resp.RequestID)
		assert.Nil(t, resp.Sightings, "sightings disabled without redis")
	})

	t.Run("default preset when nothing requested", func(t *testing.T) {
		rec := postFingerprint(t, newTestApp(), fingerprintRequest{})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp fingerprintResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.SignalsUsed, len(fingerprint.DefaultPreset()))
	})

	t.Run("identical observations produce identical fingerprints", func(t *testing.T) {
		a := newTestApp()
		req := fingerprintRequest{
			Preset: "EXTENDED",
			Telemetry: signals.Telemetry{
				Language:   "en-US",
				Platform:   "MacIntel",
				CanvasHash: "abc123",
			},
		}

		var first, second fingerprintResponse
		require.NoError(t, json.Unmarshal(postFingerprint(t, a, req).Body.Bytes(), &first))
		require.NoError(t, json.Unmarshal(postFingerprint(t, a, req).Body.Bytes(), &second))
		assert.Equal(t, first.Fingerprint, second.Fingerprint)
	})

	t.Run("custom preset shadows builtin resolution", func(t *testing.T) {
		a := newTestApp()
		a.presets = map[string][]string{"minimal": {"userAgent", "ip"}}

		rec := postFingerprint(t, a, fingerprintRequest{Preset: "minimal"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp fingerprintResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.ElementsMatch(t, []string{"userAgent", "ip"}, resp.SignalsUsed)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		a := newTestApp()
		req := httptest.NewRequest(http.MethodPost, "/v1/fingerprint", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		a.router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("components can be omitted from the response", func(t *testing.T) {
		a := newTestApp()
		a.includeComponents = false

		rec := postFingerprint(t, a, fingerprintRequest{Signals: []string{"userAgent"}})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp fingerprintResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Components)
		assert.NotEmpty(t, resp.Fingerprint)
	})
}

func TestHandlePresets(t *testing.T) {
	a := newTestApp()
	a.presets = map[string][]string{"minimal": {"userAgent"}}

	req := httptest.NewRequest(http.MethodGet, "/v1/presets", nil)
	rec := httptest.NewRecorder()
	a.router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Builtin map[string][]string `json:"builtin"`
		Custom  map[string][]string `json:"custom"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, fingerprint.DefaultPreset(), payload.Builtin["DEFAULT"])
	assert.Contains(t, payload.Custom, "minimal")
}

func TestHandleHealth(t *testing.T) {
	a := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	a.router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoadPresets(t *testing.T) {
	t.Run("parses a valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "presets.yaml")
		require.NoError(t, os.WriteFile(path, []byte("presets:\n  checkout:\n    - userAgent\n    - canvas\n"), 0o644))

		presets, err := loadPresets(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"userAgent", "canvas"}, presets["checkout"])
	})

	t.Run("rejects empty preset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "presets.yaml")
		require.NoError(t, os.WriteFile(path, []byte("presets:\n  empty: []\n"), 0o644))

		_, err := loadPresets(path)
		assert.Error(t, err)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := loadPresets(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
