package review

import (
	"time"

	"github.com/google/uuid"
)

// BookingFacts is what eligibility needs to know about the reviewed booking.
type BookingFacts struct {
	CustomerID uuid.UUID
	ProviderID uuid.UUID
	Confirmed  bool
	EndsAt     time.Time
}

// CheckEligibility allows a review once the customer's confirmed appointment is over.
func CheckEligibility(b BookingFacts, customerID, providerID uuid.UUID, now time.Time) error {
	if b.CustomerID != customerID || b.ProviderID != providerID {
		return ErrNotEligible
	}
	if !b.Confirmed {
		return ErrNotEligible
	}
	if now.Before(b.EndsAt) {
		return ErrNotEligible
	}
	return nil
}
