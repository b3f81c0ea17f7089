//go:build unit

package coalesce_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"salon-booking/internal/pkg/coalesce"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flushCall struct {
	key   string
	value int
}

type recorder struct {
	mu    sync.Mutex
	calls []flushCall
	err   error
}

func (r *recorder) flush(_ context.Context, key string, value int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, flushCall{key: key, value: value})
	return r.err
}

func (r *recorder) snapshot() []flushCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]flushCall, len(r.calls))
	copy(out, r.calls)
	return out
}

func TestCoalescer(t *testing.T) {
	const delay = 30 * time.Millisecond

	t.Run("burst collapses into one flush with the last value", func(t *testing.T) {
		rec := &recorder{}
		c := coalesce.New(delay, rec.flush)

		for v := 1; v <= 5; v++ {
			require.NoError(t, c.Submit("p1", v))
		}

		pendingValue, ok := c.Pending("p1")
		require.True(t, ok)
		assert.Equal(t, 5, pendingValue)

		require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
		time.Sleep(2 * delay)
		assert.Equal(t, []flushCall{{key: "p1", value: 5}}, rec.snapshot())

		_, ok = c.Pending("p1")
		assert.False(t, ok)
	})

	t.Run("keys are debounced independently", func(t *testing.T) {
		rec := &recorder{}
		c := coalesce.New(delay, rec.flush)

		require.NoError(t, c.Submit("p1", 1))
		require.NoError(t, c.Submit("p2", 2))
		require.NoError(t, c.Submit("p1", 3))

		require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
		assert.ElementsMatch(t, []flushCall{{key: "p1", value: 3}, {key: "p2", value: 2}}, rec.snapshot())
	})

	t.Run("failed flush invokes the error callback", func(t *testing.T) {
		flushErr := errors.New("db down")
		rec := &recorder{err: flushErr}

		var mu sync.Mutex
		var failed []flushCall
		c := coalesce.New(delay, rec.flush, coalesce.WithOnError(func(key string, value int, err error) {
			mu.Lock()
			defer mu.Unlock()
			assert.ErrorIs(t, err, flushErr)
			failed = append(failed, flushCall{key: key, value: value})
		}))

		require.NoError(t, c.Submit("p1", 7))

		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(failed) == 1
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, flushCall{key: "p1", value: 7}, failed[0])
	})

	t.Run("close flushes pending values and rejects new ones", func(t *testing.T) {
		rec := &recorder{}
		c := coalesce.New(time.Hour, rec.flush)

		require.NoError(t, c.Submit("p1", 1))
		require.NoError(t, c.Submit("p1", 2))

		require.NoError(t, c.Close(context.Background()))
		assert.Equal(t, []flushCall{{key: "p1", value: 2}}, rec.snapshot())

		assert.ErrorIs(t, c.Submit("p1", 3), coalesce.ErrClosed)
		assert.NoError(t, c.Close(context.Background()))
	})
}
