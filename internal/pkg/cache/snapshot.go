// Package cache holds the process-local read cache placed in front of hot
// storage reads.
package cache

import (
	"context"
	"sync"
	"time"
)

// Loader produces a fresh value, typically by reading storage.
type Loader[T any] func(ctx context.Context) (T, error)

// Option configures a Snapshot.
type Option func(*options)

type options struct {
	now      func() time.Time
	observer func(hit bool)
}

// WithClock replaces time.Now. Tests use it to step over the freshness window.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithObserver registers a callback invoked on every lookup.
func WithObserver(fn func(hit bool)) Option {
	return func(o *options) { o.observer = fn }
}

// Snapshot is a single-slot cache: one value and the instant it was
// captured. A value younger than the freshness window is served as is;
// anything older is reloaded synchronously by the reader that notices.
//
// Concurrent readers racing past an expiry may each reload; the last one to
// finish wins. The mutex only guards the slot, never the loader.
type Snapshot[T any] struct {
	window time.Duration
	opts   options

	mu         sync.Mutex
	value      T
	capturedAt time.Time
	filled     bool
}

// NewSnapshot returns an empty Snapshot with the given freshness window.
func NewSnapshot[T any](window time.Duration, opts ...Option) *Snapshot[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Snapshot[T]{window: window, opts: o}
}

// GetOrLoad returns the cached value when it is fresh, otherwise calls load,
// stores its result with the current time and returns it. Load errors are
// returned as is and leave the slot untouched.
func (s *Snapshot[T]) GetOrLoad(ctx context.Context, load Loader[T]) (T, error) {
	now := s.opts.now()

	s.mu.Lock()
	if s.filled && now.Sub(s.capturedAt) < s.window {
		v := s.value
		s.mu.Unlock()
		s.observe(true)
		return v, nil
	}
	s.mu.Unlock()

	s.observe(false)
	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	s.value = v
	s.capturedAt = now
	s.filled = true
	s.mu.Unlock()

	return v, nil
}

func (s *Snapshot[T]) observe(hit bool) {
	if s.opts.observer != nil {
		s.opts.observer(hit)
	}
}
