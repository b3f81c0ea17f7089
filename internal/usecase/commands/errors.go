package commands

import "salon-booking/internal/pkg/errs"

var (
	ErrProviderNotFound    = errs.New("provider not found")
	ErrProviderNotBookable = errs.New("provider is not accepting bookings")
	ErrProviderExists      = errs.New("provider profile already exists")
	ErrNoProviderProfile   = errs.New("no provider profile for this account")
	ErrServiceNotFound     = errs.New("service not found")
	ErrEmployeeNotFound    = errs.New("employee not found")
	ErrEmployeeExists      = errs.New("employee already exists")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingAccess       = errs.New("booking belongs to another account")
	ErrDateRequired        = errs.New("select a date first")
	ErrDateInPast          = errs.New("date is in the past")
	ErrSlotNotOffered      = errs.New("time slot is not offered on this date")
	ErrSlotTaken           = errs.New("time slot was just booked by someone else")
	ErrTermsOutdated       = errs.New("terms version is not the current one")
	ErrTermsNotPublished   = errs.New("no terms published")
	ErrDraftAlreadyPaid    = errs.New("draft has already been paid")
	ErrGatewayUnavailable  = errs.New("payment gateway unavailable")
	ErrPaymentProcessing   = errs.New("payment is still being processed")
	ErrReviewNotFound      = errs.New("review not found")
	ErrEnquiryNotFound     = errs.New("enquiry not found")
	ErrTermsVersionExists  = errs.New("terms version already published")
)
