package payment

import (
	"context"
	"errors"
	"strings"
	"time"
)

const (
	DefaultAttempts = 5
	DefaultDelay    = 3 * time.Second
)

var ErrNoOrderID = errors.New("no order id")

type Verifier interface {
	Verify(ctx context.Context, orderID string) (Record, error)
}

type Waiter interface {
	After(d time.Duration) <-chan time.Time
}

// Result is where a verification ended. Processing means the gateway still reported
// PENDING when the attempt budget ran out.
type Result struct {
	Outcome  Outcome
	Record   Record
	Attempts int
}

// Poller verifies an order until it reaches a terminal status, with a fixed delay between
// attempts and a bounded number of attempts.
type Poller struct {
	verifier Verifier
	waiter   Waiter
	attempts int
	delay    time.Duration
}

func NewPoller(verifier Verifier, waiter Waiter, attempts int, delay time.Duration) *Poller {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Poller{verifier: verifier, waiter: waiter, attempts: attempts, delay: delay}
}

func (p *Poller) Poll(ctx context.Context, orderID string) (Result, error) {
	if strings.TrimSpace(orderID) == "" {
		return Result{}, ErrNoOrderID
	}

	var last Record
	for attempt := 1; attempt <= p.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		rec, err := p.verifier.Verify(ctx, orderID)
		if err != nil {
			return Result{}, err
		}
		last = rec

		if rec.Status.IsTerminal() {
			return Result{Outcome: outcomeOf(rec.Status), Record: rec, Attempts: attempt}, nil
		}
		if attempt == p.attempts {
			break
		}

		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-p.waiter.After(p.delay):
		}
	}

	return Result{Outcome: OutcomeProcessing, Record: last, Attempts: p.attempts}, nil
}

// Refresh performs exactly one verification outside the attempt budget.
func (p *Poller) Refresh(ctx context.Context, orderID string) (Result, error) {
	if strings.TrimSpace(orderID) == "" {
		return Result{}, ErrNoOrderID
	}
	rec, err := p.verifier.Verify(ctx, orderID)
	if err != nil {
		return Result{}, err
	}
	return Result{Outcome: outcomeOf(rec.Status), Record: rec, Attempts: 1}, nil
}
