package commands

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	domreview "salon-booking/internal/domain/review"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotOwned  = errs.New("review not owned by user")
	ErrDuplicateReview = errs.New("duplicate review for booking")
)

type CreateReviewInput struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

type ReviewCommands interface {
	Create(ctx context.Context, customerID uuid.UUID, in CreateReviewInput) (uuid.UUID, error)
	Edit(ctx context.Context, customerID, reviewID uuid.UUID, in UpdateReviewInput) error
	Delete(ctx context.Context, actorID uuid.UUID, actorRole user.Role, reviewID uuid.UUID) error
	SetHidden(ctx context.Context, reviewID uuid.UUID, hidden bool) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk, loc: loc}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, customerID uuid.UUID, in CreateReviewInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, in.BookingID)
		if err != nil {
			return mapNotFound(err, ErrBookingNotFound)
		}
		now := c.clock.Now()
		if err := domreview.CheckEligibility(c.facts(b), customerID, b.ProviderID(), now); err != nil {
			return err
		}
		r, err := domreview.NewReview(uuid.Nil, customerID, b.ProviderID(), b.ID(), in.Rating, in.Comment, now)
		if err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, r); err != nil {
			return err
		}
		id = r.ID()
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateReview
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *reviewCommandsImpl) Edit(ctx context.Context, customerID, reviewID uuid.UUID, in UpdateReviewInput) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return err
		}
		if r.CustomerID() != customerID {
			return ErrReviewNotOwned
		}
		if err := r.Edit(in.Rating, in.Comment, c.clock.Now()); err != nil {
			return err
		}
		return tx.Reviews().Save(ctx, r)
	})
	return mapNotFound(err, ErrReviewNotFound)
}

// Delete is allowed to the author and to admins.
func (c *reviewCommandsImpl) Delete(ctx context.Context, actorID uuid.UUID, actorRole user.Role, reviewID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return err
		}
		if actorRole != user.RoleAdmin && r.CustomerID() != actorID {
			return ErrReviewNotOwned
		}
		return tx.Reviews().Delete(ctx, reviewID)
	})
	return mapNotFound(err, ErrReviewNotFound)
}

func (c *reviewCommandsImpl) SetHidden(ctx context.Context, reviewID uuid.UUID, hidden bool) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return err
		}
		r.SetHidden(hidden, c.clock.Now())
		return tx.Reviews().Save(ctx, r)
	})
	return mapNotFound(err, ErrReviewNotFound)
}

// facts places the appointment end on the wall clock of the booking timezone.
func (c *reviewCommandsImpl) facts(b *booking.Booking) domreview.BookingFacts {
	y, m, d := b.Date().Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, c.loc).Add(time.Duration(b.Slot().End()) * time.Minute)
	return domreview.BookingFacts{
		CustomerID: b.CustomerID(),
		ProviderID: b.ProviderID(),
		Confirmed:  b.Status() == booking.StatusConfirmed,
		EndsAt:     end,
	}
}
