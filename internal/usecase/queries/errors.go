package queries

import "salon-booking/internal/pkg/errs"

var (
	ErrProviderNotFound    = errs.New("provider not found")
	ErrProviderNotBookable = errs.New("provider is not accepting bookings")
	ErrNoProviderProfile   = errs.New("no provider profile for this account")
	ErrEmployeeNotFound    = errs.New("employee not found")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingAccess       = errs.New("booking belongs to another account")
	ErrUserNotFound        = errs.New("user not found")
	ErrTermsNotFound       = errs.New("no terms published")
	ErrInvalidCursor       = errs.New("invalid cursor")
	ErrInvalidDateRange    = errs.New("from date must not be after to date")
	ErrInvalidDuration     = errs.New("duration must be greater than zero")
	ErrDateInPast          = errs.New("date is in the past")
)
