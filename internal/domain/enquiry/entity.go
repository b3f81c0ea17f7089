package enquiry

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxSubjectLength = 200
	MaxMessageLength = 2000
)

type Status string

const (
	StatusOpen     Status = "open"
	StatusAnswered Status = "answered"
	StatusClosed   Status = "closed"
)

var (
	ErrEmptySubject   = errors.New("subject cannot be empty")
	ErrSubjectTooLong = errors.New("subject exceeds maximum length")
	ErrEmptyMessage   = errors.New("message cannot be empty")
	ErrMessageTooLong = errors.New("message exceeds maximum length")
	ErrEnquiryClosed  = errors.New("enquiry is closed")
	ErrInvalidStatus  = errors.New("invalid enquiry status")
	ErrNotParticipant = errors.New("user is not a participant of this enquiry")
)

func NewStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusOpen, StatusAnswered, StatusClosed:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Enquiry struct {
	id         uuid.UUID
	customerID uuid.UUID
	providerID uuid.UUID
	subject    string
	message    string
	reply      *string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func New(customerID, providerID uuid.UUID, subject, message string, now time.Time) (*Enquiry, error) {
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	switch {
	case subject == "":
		return nil, ErrEmptySubject
	case len(subject) > MaxSubjectLength:
		return nil, ErrSubjectTooLong
	}
	if err := validateMessage(message); err != nil {
		return nil, err
	}

	return &Enquiry{
		id:         uuid.New(),
		customerID: customerID,
		providerID: providerID,
		subject:    subject,
		message:    message,
		status:     StatusOpen,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(id, customerID, providerID uuid.UUID, subject, message string, reply *string, status Status, createdAt, updatedAt time.Time) *Enquiry {
	return &Enquiry{
		id:         id,
		customerID: customerID,
		providerID: providerID,
		subject:    subject,
		message:    message,
		reply:      reply,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (e *Enquiry) ID() uuid.UUID         { return e.id }
func (e *Enquiry) CustomerID() uuid.UUID { return e.customerID }
func (e *Enquiry) ProviderID() uuid.UUID { return e.providerID }
func (e *Enquiry) Subject() string       { return e.subject }
func (e *Enquiry) Message() string       { return e.message }
func (e *Enquiry) Reply() *string        { return e.reply }
func (e *Enquiry) Status() Status        { return e.status }
func (e *Enquiry) CreatedAt() time.Time  { return e.createdAt }
func (e *Enquiry) UpdatedAt() time.Time  { return e.updatedAt }

// Answer stores the provider's reply. A later answer replaces the earlier one.
func (e *Enquiry) Answer(reply string, now time.Time) error {
	if e.status == StatusClosed {
		return ErrEnquiryClosed
	}
	reply = strings.TrimSpace(reply)
	if err := validateMessage(reply); err != nil {
		return err
	}
	e.reply = &reply
	e.status = StatusAnswered
	e.updatedAt = now
	return nil
}

func (e *Enquiry) Close(now time.Time) error {
	if e.status == StatusClosed {
		return ErrEnquiryClosed
	}
	e.status = StatusClosed
	e.updatedAt = now
	return nil
}

func validateMessage(m string) error {
	if m == "" {
		return ErrEmptyMessage
	}
	if len(m) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
