//go:build unit || e2e

package builder

import (
	"time"

	domreview "salon-booking/internal/domain/review"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	ProviderID   uuid.UUID
	ProviderName string
	BookingID    uuid.UUID
	Rating       int
	Comment      string
	Hidden       bool
	CreatedAt    time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		CustomerName: "Asha Rao",
		ProviderID:   uuid.New(),
		ProviderName: "Glow Studio",
		BookingID:    uuid.New(),
		Rating:       5,
		Comment:      "Excellent service!",
		CreatedAt:    time.Date(2026, 5, 6, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCustomer(id uuid.UUID) *ReviewBuilder {
	r.CustomerID = id
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	review, err := domreview.NewReview(r.ID, r.CustomerID, r.ProviderID, r.BookingID, r.Rating, r.Comment, r.CreatedAt)
	if err != nil {
		return nil, err
	}
	review.SetHidden(r.Hidden, r.CreatedAt)
	return review, nil
}

func (r *ReviewBuilder) BuildView() queries.ReviewView {
	return queries.ReviewView{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		ProviderID:   r.ProviderID,
		ProviderName: r.ProviderName,
		BookingID:    r.BookingID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		Hidden:       r.Hidden,
		CreatedAt:    r.CreatedAt,
	}
}
