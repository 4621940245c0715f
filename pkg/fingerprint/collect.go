package fingerprint

import (
	"context"
	"time"
)

// Components maps signal name to the value its collector produced. Value
// types are heterogeneous: strings, numbers, booleans, slices, nested maps,
// or one of the sentinel strings. Each collection run owns its own map
// instance, so concurrent runs never share state.
type Components map[string]any

// pendingSignal is a deferred collector in flight. The goroutine running the
// collector writes value and then closes done; readers must observe done
// before touching value.
type pendingSignal struct {
	name  string
	value any
	done  chan struct{}
}

// CollectComponents gathers every enabled signal into a fresh Components
// map. Immediate collectors run sequentially in enabled-signal order.
// Deferred collectors are all launched first and joined once, so wall-clock
// latency is bounded by the slowest single signal rather than their sum.
//
// A deferred collector that panics, exceeds the configured signal timeout,
// or is still pending when ctx is canceled contributes NotAvailable. An
// empty enabled set returns an empty map without spawning goroutines.
func (g *Generator[S]) CollectComponents(ctx context.Context, src S) Components {
	components := make(Components, len(g.enabled))

	var launched []*pendingSignal
	for _, name := range g.enabled {
		col, ok := g.registry.Lookup(name)
		if !ok {
			continue
		}
		if !col.IsDeferred() {
			components[name] = col.fn(ctx, src)
			continue
		}

		p := &pendingSignal{name: name, done: make(chan struct{})}
		go runDeferred(ctx, src, col.fn, p)
		launched = append(launched, p)
	}

	if len(launched) == 0 {
		return components
	}

	// All deferred collectors share one deadline measured from launch so a
	// single hung lookup cannot stall the whole run. A zero timeout waits
	// unboundedly.
	var expire <-chan time.Time
	if g.signalTimeout > 0 {
		t := time.NewTimer(g.signalTimeout)
		defer t.Stop()
		expire = t.C
	}

	expired := false
	for _, p := range launched {
		if expired {
			components[p.name] = p.settledOr(NotAvailable)
			continue
		}
		select {
		case <-p.done:
			components[p.name] = p.value
		case <-expire:
			expired = true
			components[p.name] = p.settledOr(NotAvailable)
		case <-ctx.Done():
			expired = true
			components[p.name] = p.settledOr(NotAvailable)
		}
	}
	return components
}

// settledOr returns the collector's value if it has already settled, or the
// fallback otherwise, without blocking.
func (p *pendingSignal) settledOr(fallback any) any {
	select {
	case <-p.done:
		return p.value
	default:
		return fallback
	}
}

// runDeferred executes a deferred collector, converting a panic into the
// NotAvailable sentinel. This is what makes the "never fails" contract
// structural for deferred collectors: no future catalog addition can leak a
// fault out of the collection run.
func runDeferred[S any](ctx context.Context, src S, fn CollectFunc[S], p *pendingSignal) {
	defer close(p.done)
	defer func() {
		if r := recover(); r != nil {
			p.value = NotAvailable
		}
	}()
	p.value = fn(ctx, src)
}
