package payment

import (
	"errors"

	"salon-booking/internal/domain/money"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
	StatusFailed  Status = "FAILED"
)

var (
	ErrUnknownStatus = errors.New("unknown payment status")
	// ErrOrderNotCancellable means the order was paid or is still being processed.
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
)

func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusFailed
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusPaid, StatusFailed:
		return st, nil
	default:
		return "", ErrUnknownStatus
	}
}

// Record is the gateway's view of an order. It is never modified locally.
type Record struct {
	OrderID       string
	Status        Status
	Amount        money.Money
	TransactionID string
	FailureReason string
}

// Order is what the gateway returns when a payment is initiated.
type Order struct {
	OrderID      string
	ClientSecret string
	Amount       money.Money
}

type Outcome int

const (
	OutcomeProcessing Outcome = iota
	OutcomePaid
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomePaid:
		return "paid"
	case OutcomeFailed:
		return "failed"
	default:
		return "processing"
	}
}

func outcomeOf(s Status) Outcome {
	switch s {
	case StatusPaid:
		return OutcomePaid
	case StatusFailed:
		return OutcomeFailed
	default:
		return OutcomeProcessing
	}
}
