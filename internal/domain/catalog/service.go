package catalog

import (
	"errors"
	"strings"
	"time"

	"salon-booking/internal/domain/money"

	"github.com/google/uuid"
)

const (
	MaxNameLength  = 120
	MaxDuration    = 8 * 60
	maxStyleLength = 120
)

var (
	ErrEmptyServiceName   = errors.New("service name cannot be empty")
	ErrServiceNameTooLong = errors.New("service name exceeds maximum length")
	ErrStyleTooLong       = errors.New("style exceeds maximum length")
	ErrInvalidDuration    = errors.New("duration must be between 1 and 480 minutes")
	ErrInvalidPrice       = errors.New("price must be greater than zero")
)

// Service is an entry of a provider's catalog. Bookings copy it as a Line.
type Service struct {
	id              uuid.UUID
	providerID      uuid.UUID
	name            string
	style           string
	price           money.Money
	durationMinutes int
	createdAt       time.Time
}

func NewService(providerID uuid.UUID, name, style string, price money.Money, durationMinutes int, now time.Time) (*Service, error) {
	name = strings.TrimSpace(name)
	style = strings.TrimSpace(style)
	if name == "" {
		return nil, ErrEmptyServiceName
	}
	if len(name) > MaxNameLength {
		return nil, ErrServiceNameTooLong
	}
	if len(style) > maxStyleLength {
		return nil, ErrStyleTooLong
	}
	if durationMinutes <= 0 || durationMinutes > MaxDuration {
		return nil, ErrInvalidDuration
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	return &Service{
		id:              uuid.New(),
		providerID:      providerID,
		name:            name,
		style:           style,
		price:           price,
		durationMinutes: durationMinutes,
		createdAt:       now,
	}, nil
}

func ReconstructService(id, providerID uuid.UUID, name, style string, price money.Money, durationMinutes int, createdAt time.Time) *Service {
	return &Service{
		id:              id,
		providerID:      providerID,
		name:            name,
		style:           style,
		price:           price,
		durationMinutes: durationMinutes,
		createdAt:       createdAt,
	}
}

func (s *Service) ID() uuid.UUID         { return s.id }
func (s *Service) ProviderID() uuid.UUID { return s.providerID }
func (s *Service) Name() string          { return s.name }
func (s *Service) Style() string         { return s.style }
func (s *Service) Price() money.Money    { return s.price }
func (s *Service) DurationMinutes() int  { return s.durationMinutes }
func (s *Service) CreatedAt() time.Time  { return s.createdAt }

func (s *Service) Line() Line {
	return Line{
		ServiceID:       s.id,
		Name:            s.name,
		Style:           s.style,
		Price:           s.price,
		DurationMinutes: s.durationMinutes,
	}
}

// Line is the immutable copy of a catalog entry held by a draft or booking.
type Line struct {
	ServiceID       uuid.UUID
	Name            string
	Style           string
	Price           money.Money
	DurationMinutes int
}
