package provider

import (
	"strings"
	"time"

	"salon-booking/internal/domain/availability"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 120
	MaxPriority   = 1000
)

type Hours struct {
	Open  availability.Minute
	Close availability.Minute
}

func NewHours(open, close string) (Hours, error) {
	o, err := availability.ParseClock(open)
	if err != nil {
		return Hours{}, err
	}
	c, err := availability.ParseClock(close)
	if err != nil {
		return Hours{}, err
	}
	if c <= o {
		return Hours{}, ErrInvalidHours
	}
	return Hours{Open: o, Close: c}, nil
}

type Provider struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	name      string
	kind      Kind
	address   string
	hours     Hours
	status    Status
	priority  int
	createdAt time.Time
	updatedAt time.Time
}

// New registers a provider awaiting admin approval.
func New(ownerID uuid.UUID, name string, kind Kind, address string, hours Hours, now time.Time) (*Provider, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if hours.Close <= hours.Open {
		return nil, ErrInvalidHours
	}

	return &Provider{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      name,
		kind:      kind,
		address:   address,
		hours:     hours,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id, ownerID uuid.UUID, name string, kind Kind, address string, hours Hours, status Status, priority int, createdAt, updatedAt time.Time) *Provider {
	return &Provider{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		kind:      kind,
		address:   address,
		hours:     hours,
		status:    status,
		priority:  priority,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Provider) ID() uuid.UUID        { return p.id }
func (p *Provider) OwnerID() uuid.UUID   { return p.ownerID }
func (p *Provider) Name() string         { return p.name }
func (p *Provider) Kind() Kind           { return p.kind }
func (p *Provider) Address() string      { return p.address }
func (p *Provider) Hours() Hours         { return p.hours }
func (p *Provider) Status() Status       { return p.status }
func (p *Provider) Priority() int        { return p.priority }
func (p *Provider) CreatedAt() time.Time { return p.createdAt }
func (p *Provider) UpdatedAt() time.Time { return p.updatedAt }

func (p *Provider) IsBookable() bool {
	return p.status == StatusApproved
}

func (p *Provider) Approve(now time.Time) error {
	return p.decide(StatusApproved, now)
}

func (p *Provider) Reject(now time.Time) error {
	return p.decide(StatusRejected, now)
}

// decide moves a pending provider to a final status. Repeating the same decision is a no-op.
func (p *Provider) decide(next Status, now time.Time) error {
	if p.status == next {
		return nil
	}
	if p.status != StatusPending {
		return ErrAlreadyDecided
	}
	p.status = next
	p.updatedAt = now
	return nil
}

func ValidatePriority(priority int) error {
	if priority < 0 || priority > MaxPriority {
		return ErrInvalidPriority
	}
	return nil
}

func (p *Provider) SetPriority(priority int, now time.Time) error {
	if err := ValidatePriority(priority); err != nil {
		return err
	}
	p.priority = priority
	p.updatedAt = now
	return nil
}

func (p *Provider) UpdateProfile(name, address *string, hours *Hours, now time.Time) error {
	next := *p
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return ErrEmptyName
		}
		if len(n) > MaxNameLength {
			return ErrNameTooLong
		}
		next.name = n
	}
	if address != nil {
		a := strings.TrimSpace(*address)
		if a == "" {
			return ErrEmptyAddress
		}
		next.address = a
	}
	if hours != nil {
		if hours.Close <= hours.Open {
			return ErrInvalidHours
		}
		next.hours = *hours
	}
	next.updatedAt = now
	*p = next
	return nil
}
