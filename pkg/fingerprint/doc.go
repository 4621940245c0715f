// Package fingerprint implements the signal-collection-and-hashing pipeline
// that condenses a set of device/browser signals into a stable identifier.
//
// The pipeline is built from a small number of cooperating pieces:
//
//   - Registry: a name-keyed catalog of signal collectors. A collector is
//     either Immediate (reads data already in memory, never blocks) or
//     Deferred (performs I/O-bound enrichment and is launched concurrently).
//   - Presets: three tiered, process-wide constant signal lists
//     (DEFAULT ⊆ EXTENDED ⊆ FULL) ordered by stability and permission
//     sensitivity.
//   - Config / ResolveSignals: turns a caller request (preset name,
//     explicit signal list, exclusions) into the final ordered enabled set.
//   - Generator: collects every enabled signal into a Components map,
//     canonicalizes it, hashes it, and assembles the Result.
//
// The package is generic over the source type S that collectors read from,
// so the same pipeline can run against an HTTP request, a recorded payload,
// or a test double. The sibling signals package provides the production
// catalog for *signals.Source.
//
// # Usage
//
//	reg := signals.NewRegistry()
//	gen, err := fingerprint.New(reg, fingerprint.WithPreset("EXTENDED"))
//	if err != nil {
//	    return err
//	}
//	res := gen.Generate(ctx, src)
//	log.Printf("fingerprint: %s (signals: %v)", res.Fingerprint, res.SignalsUsed)
//
// # Determinism
//
// Components are serialized with sorted keys before hashing, so two runs
// that collect equal component values always produce equal fingerprints
// regardless of the order in which deferred collectors happen to finish.
//
// # Error Handling
//
// Generate never fails: a deferred collector that panics, times out, or is
// canceled contributes a sentinel value (see NotAvailable and friends)
// instead of an error. Construction of a Generator is the only fallible
// operation in the package.
package fingerprint
