package commands

import (
	"context"

	"salon-booking/internal/domain/terms"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/shared"
)

type TermsCommands interface {
	// Publish makes a new version current. Drafts that accepted an older one must accept again.
	Publish(ctx context.Context, version, body string) error
}

type termsCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTermsCommands(uow shared.UnitOfWork, clk clock.Clock) TermsCommands {
	return &termsCommandsImpl{uow: uow, clock: clk}
}

func (c *termsCommandsImpl) Publish(ctx context.Context, version, body string) error {
	doc, err := terms.NewDocument(version, body, c.clock.Now())
	if err != nil {
		return err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Terms().Publish(ctx, doc)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return ErrTermsVersionExists
	}
	return err
}
