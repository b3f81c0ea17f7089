//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/domain/booking"
	domreview "salon-booking/internal/domain/review"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/commands"
	"salon-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pastBooking() *builder.BookingBuilder {
	return builder.NewBookingBuilder().
		WithStatus(booking.StatusConfirmed).
		With(func(b *builder.BookingBuilder) { b.Date = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) })
}

func TestReviewCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("after a confirmed appointment", func(t *testing.T) {
		f := newFixture(t)
		b := pastBooking().BuildDomain()
		f.bookings.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)
		f.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domreview.Review) error {
				assert.Equal(t, b.ProviderID(), r.ProviderID())
				assert.Equal(t, b.ID(), r.BookingID())
				assert.Equal(t, 4, r.Rating().Value())
				return nil
			})

		id, err := commands.NewReviewCommands(f.uow, f.clock, ist).Create(ctx, b.CustomerID(), commands.CreateReviewInput{
			BookingID: b.ID(),
			Rating:    4,
			Comment:   "Lovely cut",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("appointment later today", func(t *testing.T) {
		f := newFixture(t)
		b := pastBooking().With(func(b *builder.BookingBuilder) {
			b.Date = time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
			b.Start = 11 * 60
		}).BuildDomain()
		f.bookings.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)

		_, err := commands.NewReviewCommands(f.uow, f.clock, ist).Create(ctx, b.CustomerID(), commands.CreateReviewInput{
			BookingID: b.ID(), Rating: 5, Comment: "Too early",
		})
		assert.ErrorIs(t, err, domreview.ErrNotEligible)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		f := newFixture(t)
		b := pastBooking().BuildDomain()
		f.bookings.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)

		_, err := commands.NewReviewCommands(f.uow, f.clock, ist).Create(ctx, uuid.New(), commands.CreateReviewInput{
			BookingID: b.ID(), Rating: 5, Comment: "Nice",
		})
		assert.ErrorIs(t, err, domreview.ErrNotEligible)
	})

	t.Run("second review of the same booking", func(t *testing.T) {
		f := newFixture(t)
		b := pastBooking().BuildDomain()
		f.bookings.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)
		f.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := commands.NewReviewCommands(f.uow, f.clock, ist).Create(ctx, b.CustomerID(), commands.CreateReviewInput{
			BookingID: b.ID(), Rating: 5, Comment: "Again",
		})
		assert.ErrorIs(t, err, commands.ErrDuplicateReview)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := commands.NewReviewCommands(f.uow, f.clock, ist).Create(ctx, uuid.New(), commands.CreateReviewInput{
			BookingID: uuid.New(), Rating: 5, Comment: "Nice",
		})
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestReviewEditAndDelete(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	newReview := func(t *testing.T) *domreview.Review {
		r, err := builder.NewReviewBuilder().WithCustomer(authorID).BuildDomain()
		require.NoError(t, err)
		return r
	}

	t.Run("author edits", func(t *testing.T) {
		f := newFixture(t)
		r := newReview(t)
		f.reviews.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)
		f.reviews.EXPECT().Save(gomock.Any(), r).Return(nil)

		comment := "Even better on second thought"
		err := commands.NewReviewCommands(f.uow, f.clock, ist).Edit(ctx, authorID, r.ID(), commands.UpdateReviewInput{Comment: &comment})
		require.NoError(t, err)
		assert.Equal(t, comment, r.Comment().String())
	})

	t.Run("another customer cannot edit", func(t *testing.T) {
		f := newFixture(t)
		r := newReview(t)
		f.reviews.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)

		rating := 1
		err := commands.NewReviewCommands(f.uow, f.clock, ist).Edit(ctx, uuid.New(), r.ID(), commands.UpdateReviewInput{Rating: &rating})
		assert.ErrorIs(t, err, commands.ErrReviewNotOwned)
	})

	t.Run("admin deletes any review", func(t *testing.T) {
		f := newFixture(t)
		r := newReview(t)
		f.reviews.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)
		f.reviews.EXPECT().Delete(gomock.Any(), r.ID()).Return(nil)

		require.NoError(t, commands.NewReviewCommands(f.uow, f.clock, ist).Delete(ctx, uuid.New(), user.RoleAdmin, r.ID()))
	})

	t.Run("other customer cannot delete", func(t *testing.T) {
		f := newFixture(t)
		r := newReview(t)
		f.reviews.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)

		err := commands.NewReviewCommands(f.uow, f.clock, ist).Delete(ctx, uuid.New(), user.RoleCustomer, r.ID())
		assert.ErrorIs(t, err, commands.ErrReviewNotOwned)
	})

	t.Run("hide unknown review", func(t *testing.T) {
		f := newFixture(t)
		f.reviews.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		err := commands.NewReviewCommands(f.uow, f.clock, ist).SetHidden(ctx, uuid.New(), true)
		assert.ErrorIs(t, err, commands.ErrReviewNotFound)
	})

	t.Run("hide review", func(t *testing.T) {
		f := newFixture(t)
		r := newReview(t)
		f.reviews.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)
		f.reviews.EXPECT().Save(gomock.Any(), r).Return(nil)

		require.NoError(t, commands.NewReviewCommands(f.uow, f.clock, ist).SetHidden(ctx, r.ID(), true))
		assert.True(t, r.Hidden())
	})
}
