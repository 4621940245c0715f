// Package signals provides the production signal catalog for the
// fingerprint pipeline: a Source type describing one client observation and
// the collector bodies that read individual signals from it.
//
// A Source combines three layers of data:
//
//   - HTTP request headers (User-Agent, Accept*, client hints) and the
//     extracted client IP.
//   - A Telemetry payload posted by the browser sensor script, carrying
//     values only client-side code can observe (canvas hash, WebGL strings,
//     screen metrics, fonts, audio fingerprint, permissions).
//   - Optional enrichment backends: a GeoIP database reader and a DNS
//     resolver, consumed by the deferred collectors.
//
// Every collector is best-effort. A value the client did not report, a
// capability the platform lacks, or a failed lookup becomes one of the
// fingerprint package's sentinel strings; no collector ever fails the run.
//
// NewRegistry builds the full catalog in FULL-preset order:
//
//	reg := signals.NewRegistry()
//	gen, err := fingerprint.New(reg, fingerprint.WithPreset("FULL"))
//	...
//	src := signals.NewSource(r, payload, signals.WithGeo(geoReader))
//	res := gen.Generate(r.Context(), src)
package signals
