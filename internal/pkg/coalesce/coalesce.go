// Package coalesce debounces writes per key: a burst of submissions for the same key
// results in a single flush carrying the last submitted value.
package coalesce

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var ErrClosed = errors.New("coalescer is closed")

type FlushFunc[K comparable, V any] func(ctx context.Context, key K, value V) error

type ErrorFunc[K comparable, V any] func(key K, value V, err error)

type Option[K comparable, V any] func(*Coalescer[K, V])

// WithOnError registers the callback invoked after a failed flush.
func WithOnError[K comparable, V any](fn ErrorFunc[K, V]) Option[K, V] {
	return func(c *Coalescer[K, V]) { c.onError = fn }
}

func WithFlushTimeout[K comparable, V any](d time.Duration) Option[K, V] {
	return func(c *Coalescer[K, V]) { c.flushTimeout = d }
}

func WithLogger[K comparable, V any](l *slog.Logger) Option[K, V] {
	return func(c *Coalescer[K, V]) { c.logger = l }
}

type pending[V any] struct {
	value V
	gen   uint64
	timer *time.Timer
}

type Coalescer[K comparable, V any] struct {
	delay        time.Duration
	flush        FlushFunc[K, V]
	onError      ErrorFunc[K, V]
	flushTimeout time.Duration
	logger       *slog.Logger

	mu      sync.Mutex
	entries map[K]*pending[V]
	gen     uint64
	closed  bool

	// flushes run one at a time so a later value can never be overtaken by an earlier one
	flushMu  sync.Mutex
	inflight sync.WaitGroup
}

func New[K comparable, V any](delay time.Duration, flush FlushFunc[K, V], opts ...Option[K, V]) *Coalescer[K, V] {
	c := &Coalescer[K, V]{
		delay:        delay,
		flush:        flush,
		flushTimeout: 5 * time.Second,
		logger:       slog.Default(),
		entries:      make(map[K]*pending[V]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit records value as the latest for key and restarts the key's quiet period.
func (c *Coalescer[K, V]) Submit(key K, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	c.gen++
	gen := c.gen
	if e, ok := c.entries[key]; ok {
		e.timer.Stop()
		e.value = value
		e.gen = gen
		e.timer = time.AfterFunc(c.delay, func() { c.fire(key, gen) })
		return nil
	}

	c.entries[key] = &pending[V]{
		value: value,
		gen:   gen,
		timer: time.AfterFunc(c.delay, func() { c.fire(key, gen) }),
	}
	return nil
}

// Pending reports the value waiting to be flushed for key, if any.
func (c *Coalescer[K, V]) Pending(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Coalescer[K, V]) fire(key K, gen uint64) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok || e.gen != gen {
		// superseded by a newer submission or drained by Close
		c.mu.Unlock()
		return
	}
	delete(c.entries, key)
	c.inflight.Add(1)
	c.mu.Unlock()

	defer c.inflight.Done()

	ctx, cancel := context.WithTimeout(context.Background(), c.flushTimeout)
	defer cancel()
	_ = c.run(ctx, key, e.value)
}

func (c *Coalescer[K, V]) run(ctx context.Context, key K, value V) error {
	c.flushMu.Lock()
	defer c.flushMu.Unlock()

	err := c.flush(ctx, key, value)
	if err == nil {
		return nil
	}

	c.logger.Error("coalesced flush failed", "key", key, "error", err.Error())
	if c.onError != nil {
		c.onError(key, value, err)
	}
	return err
}

// Close stops accepting submissions, flushes everything still pending and waits for
// in-flight flushes to finish or ctx to expire.
func (c *Coalescer[K, V]) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	drained := c.entries
	c.entries = make(map[K]*pending[V])
	for _, e := range drained {
		e.timer.Stop()
	}
	c.mu.Unlock()

	var flushErrs []error
	for key, e := range drained {
		if err := c.run(ctx, key, e.value); err != nil {
			flushErrs = append(flushErrs, err)
		}
	}

	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		flushErrs = append(flushErrs, ctx.Err())
	}

	return errors.Join(flushErrs...)
}
