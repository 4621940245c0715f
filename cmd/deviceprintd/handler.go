package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/deviceprint/pkg/fingerprint"
	"github.com/dmitrymomot/deviceprint/pkg/logger"
	"github.com/dmitrymomot/deviceprint/pkg/requestid"
	"github.com/dmitrymomot/deviceprint/pkg/sightings"
	"github.com/dmitrymomot/deviceprint/pkg/signals"
)

const maxBodySize = 1 << 20 // 1 MiB

type app struct {
	registry          *fingerprint.Registry[*signals.Source]
	geo               signals.GeoResolver
	tracker           *sightings.Tracker
	redisProbe        func(ctx context.Context) error
	presets           map[string][]string
	signalTimeout     time.Duration
	includeComponents bool
	log               *slog.Logger
}

type fingerprintRequest struct {
	Preset    string            `json:"preset,omitempty"`
	Signals   []string          `json:"signals,omitempty"`
	Exclude   []string          `json:"exclude,omitempty"`
	Telemetry signals.Telemetry `json:"telemetry"`
}

type fingerprintResponse struct {
	RequestID   string                 `json:"requestId,omitempty"`
	Fingerprint string                 `json:"fingerprint"`
	SignalsUsed []string               `json:"signalsUsed"`
	Components  fingerprint.Components `json:"components,omitempty"`
	Sightings   *int64                 `json:"sightings,omitempty"`
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)

	r.Get("/healthz", a.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/fingerprint", a.handleFingerprint)
		r.Get("/presets", a.handlePresets)
	})
	return r
}

func (a *app) handleFingerprint(w http.ResponseWriter, r *http.Request) {
	var req fingerprintRequest
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	opts := []fingerprint.Option{
		fingerprint.WithSignalTimeout(a.signalTimeout),
		fingerprint.WithExclude(req.Exclude...),
	}
	switch {
	case len(req.Signals) > 0:
		opts = append(opts, fingerprint.WithSignals(req.Signals...))
	case req.Preset != "":
		// Caller-defined presets shadow the built-in names.
		if custom, ok := a.presets[req.Preset]; ok {
			opts = append(opts, fingerprint.WithSignals(custom...))
		} else {
			opts = append(opts, fingerprint.WithPreset(req.Preset))
		}
	}

	gen, err := fingerprint.New(a.registry, opts...)
	if err != nil {
		a.log.ErrorContext(r.Context(), "generator construction failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	src := signals.NewSource(r, req.Telemetry,
		signals.WithGeo(a.geo),
		signals.WithResolver(net.DefaultResolver),
	)
	res := gen.Generate(r.Context(), src)

	resp := fingerprintResponse{
		RequestID:   requestid.FromContext(r.Context()),
		Fingerprint: res.Fingerprint,
		SignalsUsed: res.SignalsUsed,
	}
	if a.includeComponents {
		resp.Components = res.Components
	}
	if a.tracker != nil {
		count, err := a.tracker.Record(r.Context(), res.Fingerprint)
		if err != nil {
			a.log.WarnContext(r.Context(), "sighting record failed", logger.Error(err))
		} else {
			resp.Sightings = &count
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (a *app) handlePresets(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{
		"builtin": map[string][]string{
			fingerprint.PresetDefault:  fingerprint.DefaultPreset(),
			fingerprint.PresetExtended: fingerprint.ExtendedPreset(),
			fingerprint.PresetFull:     fingerprint.FullPreset(),
		},
	}
	if len(a.presets) > 0 {
		payload["custom"] = a.presets
	}
	writeJSON(w, http.StatusOK, payload)
}

func (a *app) handleHealth(w http.ResponseWriter, r *http.Request) {
	if a.redisProbe != nil {
		if err := a.redisProbe(r.Context()); err != nil {
			a.log.ErrorContext(r.Context(), "healthcheck failed", logger.Error(err))
			writeError(w, http.StatusServiceUnavailable, "dependency unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
