// Package useragent parses HTTP User-Agent strings into the coarse browser,
// OS, and device-type facts the fingerprint catalog needs.
//
// The parser trades completeness for stability: it recognizes the major
// browser families and operating systems and classifies everything else as
// unknown. For a fingerprint input that is the right trade: a signal that
// flaps between "some obscure token" and "unknown" across releases would
// destabilize the identifier it feeds.
package useragent
