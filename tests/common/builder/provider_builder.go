//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/money"
	"salon-booking/internal/domain/provider"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProviderBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Kind        string
	Address     string
	OpeningTime string
	ClosingTime string
	Status      string
	Priority    int
	CreatedAt   time.Time
}

func NewProviderBuilder() *ProviderBuilder {
	return &ProviderBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Glow Studio",
		Kind:        string(provider.KindSalon),
		Address:     "12 MG Road, Bengaluru",
		OpeningTime: "09:00",
		ClosingTime: "18:00",
		Status:      string(provider.StatusApproved),
		Priority:    10,
		CreatedAt:   time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (p *ProviderBuilder) With(mutate func(*ProviderBuilder)) *ProviderBuilder {
	mutate(p)
	return p
}

func (p *ProviderBuilder) Pending() *ProviderBuilder {
	p.Status = string(provider.StatusPending)
	return p
}

func (p *ProviderBuilder) BuildDomain() *provider.Provider {
	open, _ := availability.ParseClock(p.OpeningTime)
	closing, _ := availability.ParseClock(p.ClosingTime)
	return provider.Reconstruct(
		p.ID, p.OwnerID, p.Name, provider.Kind(p.Kind), p.Address,
		provider.Hours{Open: open, Close: closing},
		provider.Status(p.Status), p.Priority, p.CreatedAt, p.CreatedAt,
	)
}

func (p *ProviderBuilder) BuildView() *queries.ProviderView {
	return &queries.ProviderView{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Kind:        p.Kind,
		Address:     p.Address,
		OpeningTime: p.OpeningTime,
		ClosingTime: p.ClosingTime,
		Status:      p.Status,
		Priority:    p.Priority,
		CreatedAt:   p.CreatedAt,
	}
}

type ServiceBuilder struct {
	ID              uuid.UUID
	ProviderID      uuid.UUID
	Name            string
	Style           string
	Amount          int64
	Currency        string
	DurationMinutes int
}

func NewServiceBuilder(providerID uuid.UUID) *ServiceBuilder {
	return &ServiceBuilder{
		ID:              uuid.New(),
		ProviderID:      providerID,
		Name:            "Haircut",
		Style:           "Layered",
		Amount:          50000,
		Currency:        "INR",
		DurationMinutes: 60,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) BuildDomain() *catalog.Service {
	price, _ := money.New(s.Amount, s.Currency)
	return catalog.ReconstructService(s.ID, s.ProviderID, s.Name, s.Style, price, s.DurationMinutes, time.Now())
}

func (s *ServiceBuilder) BuildView() queries.ServiceView {
	return queries.ServiceView{
		ID:              s.ID,
		ProviderID:      s.ProviderID,
		Name:            s.Name,
		Style:           s.Style,
		Amount:          s.Amount,
		Currency:        s.Currency,
		DurationMinutes: s.DurationMinutes,
	}
}
