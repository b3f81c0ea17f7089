package commands

import (
	"context"

	"salon-booking/internal/domain/enquiry"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type OpenEnquiryInput struct {
	ProviderID uuid.UUID
	Subject    string
	Message    string
}

type EnquiryCommands interface {
	Open(ctx context.Context, customerID uuid.UUID, in OpenEnquiryInput) (uuid.UUID, error)
	Answer(ctx context.Context, ownerID, enquiryID uuid.UUID, reply string) error
	Close(ctx context.Context, actorID uuid.UUID, actorRole user.Role, enquiryID uuid.UUID) error
}

type enquiryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEnquiryCommands(uow shared.UnitOfWork, clk clock.Clock) EnquiryCommands {
	return &enquiryCommandsImpl{uow: uow, clock: clk}
}

func (c *enquiryCommandsImpl) Open(ctx context.Context, customerID uuid.UUID, in OpenEnquiryInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Providers().FindByID(ctx, in.ProviderID)
		if err != nil {
			return mapNotFound(err, ErrProviderNotFound)
		}
		if !p.IsBookable() {
			return ErrProviderNotBookable
		}
		e, err := enquiry.New(customerID, p.ID(), in.Subject, in.Message, c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Enquiries().Create(ctx, e); err != nil {
			return err
		}
		id = e.ID()
		return nil
	})
	return id, err
}

func (c *enquiryCommandsImpl) Answer(ctx context.Context, ownerID, enquiryID uuid.UUID, reply string) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Providers().FindByOwner(ctx, ownerID)
		if err != nil {
			return mapNotFound(err, ErrNoProviderProfile)
		}
		e, err := tx.Enquiries().FindByID(ctx, enquiryID)
		if err != nil {
			return err
		}
		if e.ProviderID() != p.ID() {
			return enquiry.ErrNotParticipant
		}
		if err := e.Answer(reply, c.clock.Now()); err != nil {
			return err
		}
		return tx.Enquiries().Save(ctx, e)
	})
	return mapNotFound(err, ErrEnquiryNotFound)
}

// Close is allowed to the customer who opened the enquiry and to the provider it was sent to.
func (c *enquiryCommandsImpl) Close(ctx context.Context, actorID uuid.UUID, actorRole user.Role, enquiryID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Enquiries().FindByID(ctx, enquiryID)
		if err != nil {
			return err
		}
		if err := c.checkParticipant(ctx, tx, e, actorID, actorRole); err != nil {
			return err
		}
		if err := e.Close(c.clock.Now()); err != nil {
			return err
		}
		return tx.Enquiries().Save(ctx, e)
	})
	return mapNotFound(err, ErrEnquiryNotFound)
}

func (c *enquiryCommandsImpl) checkParticipant(ctx context.Context, tx shared.Tx, e *enquiry.Enquiry, actorID uuid.UUID, actorRole user.Role) error {
	switch actorRole {
	case user.RoleCustomer:
		if e.CustomerID() == actorID {
			return nil
		}
	case user.RoleProvider:
		p, err := tx.Providers().FindByOwner(ctx, actorID)
		if err != nil {
			return mapNotFound(err, ErrNoProviderProfile)
		}
		if e.ProviderID() == p.ID() {
			return nil
		}
	}
	return enquiry.ErrNotParticipant
}
