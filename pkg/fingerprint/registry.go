package fingerprint

import (
	"context"
	"fmt"
)

// CollectFunc reads one signal from the source. Implementations must be
// best-effort: when the underlying value cannot be determined they return a
// sentinel string (Unknown, NotSupported, ...) rather than panicking.
type CollectFunc[S any] func(ctx context.Context, src S) any

// Collector binds a collect function to its execution mode. Immediate
// collectors run sequentially on the calling goroutine; Deferred collectors
// are launched concurrently and joined once all of them have settled.
type Collector[S any] struct {
	fn       CollectFunc[S]
	deferred bool
}

// Immediate wraps fn as a synchronous collector.
func Immediate[S any](fn CollectFunc[S]) Collector[S] {
	return Collector[S]{fn: fn}
}

// Deferred wraps fn as an asynchronous collector.
func Deferred[S any](fn CollectFunc[S]) Collector[S] {
	return Collector[S]{fn: fn, deferred: true}
}

// IsDeferred reports whether the collector runs concurrently.
func (c Collector[S]) IsDeferred() bool { return c.deferred }

// Registry is a name-keyed catalog of signal collectors. Registration order
// is preserved and doubles as the catalog's canonical iteration order.
// A Registry is safe for concurrent reads after construction; Register is
// not safe to call concurrently with lookups.
type Registry[S any] struct {
	order  []string
	byName map[string]Collector[S]
}

// NewRegistry returns an empty registry for sources of type S.
func NewRegistry[S any]() *Registry[S] {
	return &Registry[S]{byName: make(map[string]Collector[S])}
}

// Register adds a collector under the given signal name.
// Names are registry-unique; re-registering returns ErrDuplicateSignal.
func (r *Registry[S]) Register(name string, c Collector[S]) error {
	if name == "" {
		return ErrEmptySignalName
	}
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSignal, name)
	}
	r.byName[name] = c
	r.order = append(r.order, name)
	return nil
}

// MustRegister is like Register but panics on error. Intended for static
// catalog construction where a conflict is a programming mistake.
func (r *Registry[S]) MustRegister(name string, c Collector[S]) {
	if err := r.Register(name, c); err != nil {
		panic(err)
	}
}

// Lookup returns the collector registered under name, if any.
func (r *Registry[S]) Lookup(name string) (Collector[S], bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Has reports whether a collector is registered under name.
func (r *Registry[S]) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Names returns the registered signal names in registration order.
func (r *Registry[S]) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered signals.
func (r *Registry[S]) Len() int { return len(r.order) }
