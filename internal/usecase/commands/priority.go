package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/provider"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/coalesce"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const overlayTimeout = 2 * time.Second

// PriorityCommands accepts provider priority edits from the admin list. Edits become
// visible through the overlay at once and reach Postgres after a quiet period per provider.
type PriorityCommands interface {
	SetPriority(ctx context.Context, providerID uuid.UUID, priority int) error
	// Close flushes pending edits. It is called on shutdown.
	Close(ctx context.Context) error
}

type priorityCommandsImpl struct {
	uow       shared.UnitOfWork
	overlay   PriorityOverlay
	clock     clock.Clock
	logger    *slog.Logger
	coalescer *coalesce.Coalescer[uuid.UUID, int]
}

func NewPriorityCommands(uow shared.UnitOfWork, overlay PriorityOverlay, clk clock.Clock, debounce time.Duration, logger *slog.Logger) PriorityCommands {
	c := &priorityCommandsImpl{
		uow:     uow,
		overlay: overlay,
		clock:   clk,
		logger:  logger,
	}
	c.coalescer = coalesce.New(debounce, c.flush,
		coalesce.WithOnError[uuid.UUID, int](c.rollback),
		coalesce.WithLogger[uuid.UUID, int](logger),
	)
	return c
}

func (c *priorityCommandsImpl) SetPriority(ctx context.Context, providerID uuid.UUID, priority int) error {
	if err := provider.ValidatePriority(priority); err != nil {
		return err
	}
	if _, err := c.uow.Reads().Providers().FindByID(ctx, providerID); err != nil {
		return mapNotFound(err, ErrProviderNotFound)
	}

	// pending before the overlay is written, so a flush finishing in between keeps it
	if err := c.coalescer.Submit(providerID, priority); err != nil {
		return err
	}
	if err := c.overlay.SetPriority(ctx, providerID, priority); err != nil {
		// the edit still reaches Postgres; lists show the old value until then
		c.logger.Warn("failed to write priority overlay", "provider_id", providerID, "error", err.Error())
	}
	return nil
}

func (c *priorityCommandsImpl) Close(ctx context.Context) error {
	return c.coalescer.Close(ctx)
}

func (c *priorityCommandsImpl) flush(ctx context.Context, providerID uuid.UUID, priority int) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Providers().UpdatePriority(ctx, providerID, priority, c.clock.Now())
	})
	if err != nil {
		return err
	}
	c.clearOverlay(providerID, priority)
	return nil
}

// rollback drops the overlay so reads fall back to the committed priority.
func (c *priorityCommandsImpl) rollback(providerID uuid.UUID, priority int, err error) {
	c.logger.Warn("priority update rolled back",
		"provider_id", providerID,
		"priority", priority,
		"error", err.Error())
	c.clearOverlay(providerID, priority)
}

// clearOverlay keeps the overlay while a newer edit is still waiting for its flush or has
// already replaced the value that was written.
func (c *priorityCommandsImpl) clearOverlay(providerID uuid.UUID, priority int) {
	if _, pending := c.coalescer.Pending(providerID); pending {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), overlayTimeout)
	defer cancel()
	if err := c.overlay.ClearPriority(ctx, providerID, priority); err != nil {
		c.logger.Warn("failed to clear priority overlay", "provider_id", providerID, "error", err.Error())
	}
}
