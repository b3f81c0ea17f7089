package commands

import (
	"context"
	"time"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/money"
	"salon-booking/internal/domain/provider"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterProviderInput struct {
	Name        string
	Kind        string
	Address     string
	OpeningTime string
	ClosingTime string
}

// UpdateProviderInput carries a partial update; nil fields keep their value.
type UpdateProviderInput struct {
	Name        *string
	Address     *string
	OpeningTime *string
	ClosingTime *string
}

type AddServiceInput struct {
	Name            string
	Style           string
	Amount          int64
	DurationMinutes int
}

type ProviderCommands interface {
	Register(ctx context.Context, ownerID uuid.UUID, in RegisterProviderInput) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, ownerID uuid.UUID, in UpdateProviderInput) error
	AddEmployee(ctx context.Context, ownerID uuid.UUID, name string) (uuid.UUID, error)
	RemoveEmployee(ctx context.Context, ownerID, employeeID uuid.UUID) error
	AddService(ctx context.Context, ownerID uuid.UUID, in AddServiceInput) (uuid.UUID, error)
	RemoveService(ctx context.Context, ownerID, serviceID uuid.UUID) error

	Approve(ctx context.Context, providerID uuid.UUID) error
	Reject(ctx context.Context, providerID uuid.UUID) error
	Delete(ctx context.Context, providerID uuid.UUID) error
}

type providerCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	currency string
}

func NewProviderCommands(uow shared.UnitOfWork, clk clock.Clock, currency string) ProviderCommands {
	return &providerCommandsImpl{uow: uow, clock: clk, currency: currency}
}

func (c *providerCommandsImpl) Register(ctx context.Context, ownerID uuid.UUID, in RegisterProviderInput) (uuid.UUID, error) {
	kind, err := provider.NewKind(in.Kind)
	if err != nil {
		return uuid.Nil, err
	}
	hours, err := provider.NewHours(in.OpeningTime, in.ClosingTime)
	if err != nil {
		return uuid.Nil, err
	}
	p, err := provider.New(ownerID, in.Name, kind, in.Address, hours, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Providers().Create(ctx, p)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrProviderExists
		}
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (c *providerCommandsImpl) UpdateProfile(ctx context.Context, ownerID uuid.UUID, in UpdateProviderInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := c.owned(ctx, tx, ownerID)
		if err != nil {
			return err
		}

		var hours *provider.Hours
		if in.OpeningTime != nil || in.ClosingTime != nil {
			current := p.Hours()
			open, closing := current.Open.String(), current.Close.String()
			if in.OpeningTime != nil {
				open = *in.OpeningTime
			}
			if in.ClosingTime != nil {
				closing = *in.ClosingTime
			}
			h, err := provider.NewHours(open, closing)
			if err != nil {
				return err
			}
			hours = &h
		}

		if err := p.UpdateProfile(in.Name, in.Address, hours, c.clock.Now()); err != nil {
			return err
		}
		return tx.Providers().Save(ctx, p)
	})
}

func (c *providerCommandsImpl) AddEmployee(ctx context.Context, ownerID uuid.UUID, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := c.owned(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		e, err := provider.NewEmployee(p.ID(), name, c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Employees().Create(ctx, e); err != nil {
			return err
		}
		id = e.ID()
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmployeeExists
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *providerCommandsImpl) RemoveEmployee(ctx context.Context, ownerID, employeeID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := c.owned(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		return tx.Employees().Delete(ctx, p.ID(), employeeID)
	})
	return mapNotFound(err, ErrEmployeeNotFound)
}

func (c *providerCommandsImpl) AddService(ctx context.Context, ownerID uuid.UUID, in AddServiceInput) (uuid.UUID, error) {
	price, err := money.New(in.Amount, c.currency)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := c.owned(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		s, err := catalog.NewService(p.ID(), in.Name, in.Style, price, in.DurationMinutes, c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Services().Create(ctx, s); err != nil {
			return err
		}
		id = s.ID()
		return nil
	})
	return id, err
}

func (c *providerCommandsImpl) RemoveService(ctx context.Context, ownerID, serviceID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := c.owned(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		return tx.Services().Delete(ctx, p.ID(), serviceID)
	})
	return mapNotFound(err, ErrServiceNotFound)
}

func (c *providerCommandsImpl) Approve(ctx context.Context, providerID uuid.UUID) error {
	return c.decide(ctx, providerID, (*provider.Provider).Approve)
}

func (c *providerCommandsImpl) Reject(ctx context.Context, providerID uuid.UUID) error {
	return c.decide(ctx, providerID, (*provider.Provider).Reject)
}

func (c *providerCommandsImpl) Delete(ctx context.Context, providerID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Providers().Delete(ctx, providerID)
	})
	return mapNotFound(err, ErrProviderNotFound)
}

func (c *providerCommandsImpl) decide(ctx context.Context, providerID uuid.UUID, fn func(*provider.Provider, time.Time) error) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Providers().FindByID(ctx, providerID)
		if err != nil {
			return err
		}
		if err := fn(p, c.clock.Now()); err != nil {
			return err
		}
		return tx.Providers().Save(ctx, p)
	})
	return mapNotFound(err, ErrProviderNotFound)
}

// owned finds the provider profile of the signed-in provider account.
func (c *providerCommandsImpl) owned(ctx context.Context, tx shared.Tx, ownerID uuid.UUID) (*provider.Provider, error) {
	p, err := tx.Providers().FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, mapNotFound(err, ErrNoProviderProfile)
	}
	return p, nil
}
