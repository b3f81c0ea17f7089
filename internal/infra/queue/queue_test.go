//go:build unit

package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"salon-booking/internal/infra/queue"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type recordingEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	r.tasks = append(r.tasks, task)
	r.opts = append(r.opts, opts)
	if r.err != nil {
		return nil, r.err
	}
	return &asynq.TaskInfo{Type: task.Type()}, nil
}

type archiverFunc func(ctx context.Context, bookingID uuid.UUID) error

func (f archiverFunc) ArchiveReceipt(ctx context.Context, bookingID uuid.UUID) error {
	return f(ctx, bookingID)
}

type expirerFunc func(ctx context.Context, bookingID uuid.UUID) error

func (f expirerFunc) ExpireHold(ctx context.Context, bookingID uuid.UUID) error {
	return f(ctx, bookingID)
}

func optionValue(opts []asynq.Option, typ asynq.OptionType) any {
	for _, o := range opts {
		if o.Type() == typ {
			return o.Value()
		}
	}
	return nil
}

func TestEnqueueBookingConfirmed(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("payload carries booking and order", func(t *testing.T) {
		rec := &recordingEnqueuer{}
		require.NoError(t, queue.NewClient(rec).EnqueueBookingConfirmed(ctx, bookingID, "pi_1"))
		require.Len(t, rec.tasks, 1)
		assert.Equal(t, queue.TypeBookingConfirmed, rec.tasks[0].Type())

		var p queue.BookingConfirmedPayload
		require.NoError(t, json.Unmarshal(rec.tasks[0].Payload(), &p))
		assert.Equal(t, bookingID, p.BookingID)
		assert.Equal(t, "pi_1", p.OrderID)
	})

	t.Run("already queued is not an error", func(t *testing.T) {
		rec := &recordingEnqueuer{err: asynq.ErrTaskIDConflict}
		assert.NoError(t, queue.NewClient(rec).EnqueueBookingConfirmed(ctx, bookingID, "pi_1"))
	})

	t.Run("redis failure", func(t *testing.T) {
		rec := &recordingEnqueuer{err: errors.New("connection refused")}
		assert.Error(t, queue.NewClient(rec).EnqueueBookingConfirmed(ctx, bookingID, "pi_1"))
	})
}

func TestHandleBookingConfirmed(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("archives the receipt", func(t *testing.T) {
		var got uuid.UUID
		h := queue.HandleBookingConfirmed(archiverFunc(func(_ context.Context, id uuid.UUID) error {
			got = id
			return nil
		}), discard)

		task, err := queue.NewBookingConfirmedTask(bookingID, "pi_1")
		require.NoError(t, err)
		require.NoError(t, h(ctx, task))
		assert.Equal(t, bookingID, got)
	})

	t.Run("archive failure is retried", func(t *testing.T) {
		boom := errors.New("s3 unavailable")
		h := queue.HandleBookingConfirmed(archiverFunc(func(context.Context, uuid.UUID) error { return boom }), discard)

		task, err := queue.NewBookingConfirmedTask(bookingID, "pi_1")
		require.NoError(t, err)
		err = h(ctx, task)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("malformed payload is not retried", func(t *testing.T) {
		h := queue.HandleBookingConfirmed(archiverFunc(func(context.Context, uuid.UUID) error {
			t.Fatal("archiver must not be called")
			return nil
		}), discard)

		err := h(ctx, asynq.NewTask(queue.TypeBookingConfirmed, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestEnqueueHoldExpiry(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("runs once the hold has passed", func(t *testing.T) {
		rec := &recordingEnqueuer{}
		require.NoError(t, queue.NewClient(rec).EnqueueHoldExpiry(ctx, bookingID, 30*time.Minute))
		require.Len(t, rec.tasks, 1)
		assert.Equal(t, queue.TypeBookingExpire, rec.tasks[0].Type())
		assert.Equal(t, 30*time.Minute, optionValue(rec.opts[0], asynq.ProcessInOpt))
		assert.Equal(t, "expire:"+bookingID.String(), optionValue(rec.opts[0], asynq.TaskIDOpt))

		var p queue.BookingExpirePayload
		require.NoError(t, json.Unmarshal(rec.tasks[0].Payload(), &p))
		assert.Equal(t, bookingID, p.BookingID)
	})

	t.Run("already scheduled is not an error", func(t *testing.T) {
		rec := &recordingEnqueuer{err: asynq.ErrTaskIDConflict}
		assert.NoError(t, queue.NewClient(rec).EnqueueHoldExpiry(ctx, bookingID, time.Minute))
	})

	t.Run("redis failure", func(t *testing.T) {
		rec := &recordingEnqueuer{err: errors.New("connection refused")}
		assert.Error(t, queue.NewClient(rec).EnqueueHoldExpiry(ctx, bookingID, time.Minute))
	})
}

func TestHandleBookingExpire(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("expires the hold", func(t *testing.T) {
		var got uuid.UUID
		h := queue.HandleBookingExpire(expirerFunc(func(_ context.Context, id uuid.UUID) error {
			got = id
			return nil
		}), discard)

		task, err := queue.NewBookingExpireTask(bookingID)
		require.NoError(t, err)
		require.NoError(t, h(ctx, task))
		assert.Equal(t, bookingID, got)
	})

	t.Run("payment still processing is retried", func(t *testing.T) {
		busy := errors.New("payment still processing")
		h := queue.HandleBookingExpire(expirerFunc(func(context.Context, uuid.UUID) error { return busy }), discard)

		task, err := queue.NewBookingExpireTask(bookingID)
		require.NoError(t, err)
		err = h(ctx, task)
		assert.ErrorIs(t, err, busy)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("malformed payload is not retried", func(t *testing.T) {
		h := queue.HandleBookingExpire(expirerFunc(func(context.Context, uuid.UUID) error {
			t.Fatal("expirer must not be called")
			return nil
		}), discard)

		err := h(ctx, asynq.NewTask(queue.TypeBookingExpire, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}
