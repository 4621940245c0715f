package fingerprint

import (
	"context"
	"sort"
	"time"
)

// Result is the terminal output of a collection run. It is plain data; the
// pipeline keeps no reference to it after returning.
type Result struct {
	// Components holds every collected signal value keyed by signal name.
	Components Components `json:"components"`
	// Fingerprint is the hex digest of the canonicalized components.
	Fingerprint string `json:"fingerprint"`
	// SignalsUsed lists the signal names actually present in Components,
	// sorted. It can be shorter than the enabled set when a requested
	// signal had no registered collector.
	SignalsUsed []string `json:"signalsUsed"`
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	cfg           Config
	digest        Digest
	signalTimeout time.Duration
}

// WithConfig replaces the whole collection configuration at once.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithPreset selects a built-in preset by name (case-insensitive).
// Unrecognized names fall back to DEFAULT at resolve time.
func WithPreset(name string) Option {
	return func(o *options) { o.cfg.Preset = name }
}

// WithSignals sets an explicit signal list, overriding any preset. Calling
// it with no names enables nothing at all.
func WithSignals(names ...string) Option {
	return func(o *options) {
		if names == nil {
			names = []string{}
		}
		o.cfg.Signals = names
	}
}

// WithExclude removes the given signal names from the enabled set.
func WithExclude(names ...string) Option {
	return func(o *options) { o.cfg.Exclude = append(o.cfg.Exclude, names...) }
}

// WithDigest selects the hash algorithm. Defaults to DigestSHA256.
func WithDigest(d Digest) Option {
	return func(o *options) { o.digest = d }
}

// WithSignalTimeout bounds how long a collection run waits for deferred
// collectors, measured from launch. Expired signals resolve to NotAvailable.
// Zero disables the timeout and waits unboundedly.
func WithSignalTimeout(d time.Duration) Option {
	return func(o *options) { o.signalTimeout = d }
}

// DefaultSignalTimeout bounds deferred collectors unless overridden.
const DefaultSignalTimeout = 3 * time.Second

// Generator runs the pipeline for a fixed configuration. It is immutable
// after construction and safe for concurrent use: every Generate call owns
// its own Components map.
type Generator[S any] struct {
	registry      *Registry[S]
	enabled       []string
	digest        Digest
	signalTimeout time.Duration
}

// New resolves the configuration against the registry and returns a ready
// Generator. Without options it collects the DEFAULT preset with a SHA-256
// digest and the default signal timeout.
func New[S any](registry *Registry[S], opts ...Option) (*Generator[S], error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	o := options{
		digest:        DigestSHA256,
		signalTimeout: DefaultSignalTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Generator[S]{
		registry:      registry,
		enabled:       ResolveSignals(o.cfg, registry),
		digest:        o.digest,
		signalTimeout: o.signalTimeout,
	}, nil
}

// EnabledSignals returns the resolved enabled signal set in order.
func (g *Generator[S]) EnabledSignals() []string {
	out := make([]string, len(g.enabled))
	copy(out, g.enabled)
	return out
}

// IsSignalEnabled reports whether name is part of the enabled set.
func (g *Generator[S]) IsSignalEnabled(name string) bool {
	for _, n := range g.enabled {
		if n == name {
			return true
		}
	}
	return false
}

// ComputeHash digests the canonical serialization of components using the
// generator's configured algorithm.
func (g *Generator[S]) ComputeHash(components Components) string {
	return hashString(Canonicalize(components), g.digest)
}

// Generate runs the full pipeline against src: collect every enabled signal
// (immediate ones sequentially, deferred ones concurrently), hash the merged
// components, and assemble the result. It never fails; signals that could
// not be determined appear as sentinel values.
func (g *Generator[S]) Generate(ctx context.Context, src S) Result {
	components := g.CollectComponents(ctx, src)

	used := make([]string, 0, len(components))
	for name := range components {
		used = append(used, name)
	}
	sort.Strings(used)

	return Result{
		Components:  components,
		Fingerprint: g.ComputeHash(components),
		SignalsUsed: used,
	}
}
