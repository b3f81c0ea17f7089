package queue

import (
	"context"
	"errors"
	"time"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Enqueuer is the subset of *asynq.Client used here.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Client struct {
	enqueuer Enqueuer
}

func NewClient(enqueuer Enqueuer) *Client {
	return &Client{enqueuer: enqueuer}
}

func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.QueueDB,
	}
}

// EnqueueBookingConfirmed schedules receipt archiving. The task id is derived from the
// booking, so a confirmation seen twice queues one task.
func (c *Client) EnqueueBookingConfirmed(ctx context.Context, bookingID uuid.UUID, orderID string) error {
	task, err := NewBookingConfirmedTask(bookingID, orderID)
	if err != nil {
		return errs.Wrap(err, "failed to build booking confirmed task")
	}
	_, err = c.enqueuer.EnqueueContext(ctx, task, asynq.TaskID("receipt:"+bookingID.String()))
	if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		return errs.Wrap(err, "failed to enqueue booking confirmed task")
	}
	return nil
}

// EnqueueHoldExpiry schedules the release of an unpaid booking's slot after hold.
func (c *Client) EnqueueHoldExpiry(ctx context.Context, bookingID uuid.UUID, hold time.Duration) error {
	task, err := NewBookingExpireTask(bookingID)
	if err != nil {
		return errs.Wrap(err, "failed to build booking expire task")
	}
	_, err = c.enqueuer.EnqueueContext(ctx, task,
		asynq.ProcessIn(hold),
		asynq.TaskID("expire:"+bookingID.String()),
	)
	if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		return errs.Wrap(err, "failed to enqueue booking expire task")
	}
	return nil
}
