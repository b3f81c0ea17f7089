package booking

import "errors"

type Status string

const (
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusConfirmed       Status = "confirmed"
	StatusPaymentFailed   Status = "payment_failed"
	StatusCancelled       Status = "cancelled"
)

var (
	ErrInvalidStatus           = errors.New("invalid booking status")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusAwaitingPayment, StatusConfirmed, StatusPaymentFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// HoldsSlot reports whether a booking in this status occupies its employee's time.
func (s Status) HoldsSlot() bool {
	return s == StatusAwaitingPayment || s == StatusConfirmed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

var transitions = map[Status][]Status{
	StatusAwaitingPayment: {StatusConfirmed, StatusPaymentFailed, StatusCancelled},
	StatusPaymentFailed:   {StatusAwaitingPayment, StatusCancelled},
	StatusConfirmed:       {StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
