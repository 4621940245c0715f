// Package sightings counts how often each fingerprint has been observed
// within a rolling window, backed by Redis. The fingerprint pipeline itself
// stays stateless; sighting counts are a service-layer enrichment used by
// anti-fraud callers ("seen 40 times in the last hour" is a signal in its
// own right).
package sightings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrEmptyFingerprint is returned when a caller passes an empty identifier.
var ErrEmptyFingerprint = errors.New("sightings: empty fingerprint")

const defaultWindow = 24 * time.Hour

// Tracker records fingerprint sightings with a per-fingerprint TTL window.
type Tracker struct {
	client redis.UniversalClient
	prefix string
	window time.Duration
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithWindow sets the rolling window after which a fingerprint's count
// expires. Defaults to 24 hours.
func WithWindow(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.window = d
		}
	}
}

// WithPrefix namespaces the Redis keys. Defaults to "deviceprint:seen".
func WithPrefix(prefix string) Option {
	return func(t *Tracker) {
		if prefix != "" {
			t.prefix = prefix
		}
	}
}

// New returns a Tracker backed by the given Redis client.
func New(client redis.UniversalClient, opts ...Option) *Tracker {
	t := &Tracker{
		client: client,
		prefix: "deviceprint:seen",
		window: defaultWindow,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Record increments the sighting count for fp and returns the new total.
// The expiry is set only on first sight, so the window measures time since
// the fingerprint was first observed.
func (t *Tracker) Record(ctx context.Context, fp string) (int64, error) {
	if fp == "" {
		return 0, ErrEmptyFingerprint
	}
	key := t.key(fp)

	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("sightings: incr %s: %w", key, err)
	}
	if count == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return count, fmt.Errorf("sightings: expire %s: %w", key, err)
		}
	}
	return count, nil
}

// Count returns the current sighting count for fp without recording a new
// one. Unknown fingerprints count zero.
func (t *Tracker) Count(ctx context.Context, fp string) (int64, error) {
	if fp == "" {
		return 0, ErrEmptyFingerprint
	}
	count, err := t.client.Get(ctx, t.key(fp)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("sightings: get %s: %w", t.key(fp), err)
	}
	return count, nil
}

func (t *Tracker) key(fp string) string {
	return t.prefix + ":" + fp
}
