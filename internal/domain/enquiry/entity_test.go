//go:build unit

package enquiry_test

import (
	"strings"
	"testing"
	"time"

	"salon-booking/internal/domain/enquiry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnquiryLifecycle(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	e, err := enquiry.New(uuid.New(), uuid.New(), " Bridal package ", "Do you offer trials?", now)
	require.NoError(t, err)
	assert.Equal(t, enquiry.StatusOpen, e.Status())
	assert.Equal(t, "Bridal package", e.Subject())
	assert.Nil(t, e.Reply())

	require.ErrorIs(t, e.Answer("  ", now), enquiry.ErrEmptyMessage)
	assert.Equal(t, enquiry.StatusOpen, e.Status())

	later := now.Add(time.Hour)
	require.NoError(t, e.Answer("Yes, one week before.", later))
	assert.Equal(t, enquiry.StatusAnswered, e.Status())
	assert.Equal(t, "Yes, one week before.", *e.Reply())
	assert.Equal(t, later, e.UpdatedAt())

	require.NoError(t, e.Close(later))
	assert.ErrorIs(t, e.Close(later), enquiry.ErrEnquiryClosed)
	assert.ErrorIs(t, e.Answer("too late", later), enquiry.ErrEnquiryClosed)
}

func TestNewEnquiryValidation(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name    string
		subject string
		message string
		errIs   error
	}{
		{name: "blank subject", subject: "", message: "hi", errIs: enquiry.ErrEmptySubject},
		{name: "long subject", subject: strings.Repeat("s", enquiry.MaxSubjectLength+1), message: "hi", errIs: enquiry.ErrSubjectTooLong},
		{name: "blank message", subject: "Hi", message: " ", errIs: enquiry.ErrEmptyMessage},
		{name: "long message", subject: "Hi", message: strings.Repeat("m", enquiry.MaxMessageLength+1), errIs: enquiry.ErrMessageTooLong},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := enquiry.New(uuid.New(), uuid.New(), c.subject, c.message, now)
			require.Nil(t, e)
			require.ErrorIs(t, err, c.errIs)
		})
	}

	_, err := enquiry.NewStatus("pending")
	assert.ErrorIs(t, err, enquiry.ErrInvalidStatus)
}
