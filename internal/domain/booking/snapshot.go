package booking

import (
	"time"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/money"

	"github.com/google/uuid"
)

type LineSnapshot struct {
	ServiceID       uuid.UUID `json:"service_id"`
	Name            string    `json:"name"`
	Style           string    `json:"style,omitempty"`
	PriceAmount     int64     `json:"price_amount"`
	DurationMinutes int       `json:"duration_minutes"`
}

// DraftSnapshot is the storable form of a Draft.
type DraftSnapshot struct {
	ID           uuid.UUID      `json:"id"`
	ProviderID   uuid.UUID      `json:"provider_id"`
	CustomerID   uuid.UUID      `json:"customer_id"`
	Currency     string         `json:"currency"`
	State        State          `json:"state"`
	CustomerName string         `json:"customer_name,omitempty"`
	Service      *LineSnapshot  `json:"service,omitempty"`
	AddOns       []LineSnapshot `json:"add_ons,omitempty"`
	Date         *time.Time     `json:"date,omitempty"`
	Employee     string         `json:"employee,omitempty"`
	TimeSlot     string         `json:"time_slot,omitempty"`
	TermsVersion string         `json:"terms_version,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (d *Draft) Snapshot() DraftSnapshot {
	s := DraftSnapshot{
		ID:           d.id,
		ProviderID:   d.providerID,
		CustomerID:   d.customerID,
		Currency:     d.currency,
		State:        d.state,
		CustomerName: d.customerName,
		Date:         d.date,
		Employee:     d.employee,
		TimeSlot:     d.timeSlot,
		TermsVersion: d.termsVersion,
		CreatedAt:    d.createdAt,
	}
	if d.service != nil {
		ls := lineSnapshot(*d.service)
		s.Service = &ls
	}
	for _, a := range d.addOns {
		s.AddOns = append(s.AddOns, lineSnapshot(a))
	}
	return s
}

func RestoreDraft(s DraftSnapshot) (*Draft, error) {
	d := &Draft{
		id:           s.ID,
		providerID:   s.ProviderID,
		customerID:   s.CustomerID,
		currency:     s.Currency,
		state:        s.State,
		customerName: s.CustomerName,
		date:         s.Date,
		employee:     s.Employee,
		timeSlot:     s.TimeSlot,
		termsVersion: s.TermsVersion,
		createdAt:    s.CreatedAt,
	}
	if s.Service != nil {
		l, err := s.Service.line(s.Currency)
		if err != nil {
			return nil, err
		}
		d.service = &l
	}
	for _, a := range s.AddOns {
		l, err := a.line(s.Currency)
		if err != nil {
			return nil, err
		}
		d.addOns = append(d.addOns, l)
	}
	return d, nil
}

func lineSnapshot(l catalog.Line) LineSnapshot {
	return LineSnapshot{
		ServiceID:       l.ServiceID,
		Name:            l.Name,
		Style:           l.Style,
		PriceAmount:     l.Price.Amount(),
		DurationMinutes: l.DurationMinutes,
	}
}

func (s LineSnapshot) line(currency string) (catalog.Line, error) {
	price, err := money.New(s.PriceAmount, currency)
	if err != nil {
		return catalog.Line{}, err
	}
	return catalog.Line{
		ServiceID:       s.ServiceID,
		Name:            s.Name,
		Style:           s.Style,
		Price:           price,
		DurationMinutes: s.DurationMinutes,
	}, nil
}
