package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id         uuid.UUID
	customerID uuid.UUID
	providerID uuid.UUID
	bookingID  uuid.UUID
	rating     Rating
	comment    Comment
	hidden     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(id, customerID, providerID, bookingID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:         id,
		customerID: customerID,
		providerID: providerID,
		bookingID:  bookingID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(id, customerID, providerID, bookingID uuid.UUID, rating Rating, comment Comment, hidden bool, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:         id,
		customerID: customerID,
		providerID: providerID,
		bookingID:  bookingID,
		rating:     rating,
		comment:    comment,
		hidden:     hidden,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) CustomerID() uuid.UUID { return r.customerID }
func (r *Review) ProviderID() uuid.UUID { return r.providerID }
func (r *Review) BookingID() uuid.UUID  { return r.bookingID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) Hidden() bool          { return r.hidden }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }

// Edit changes rating and/or comment. Nil arguments keep the current value.
func (r *Review) Edit(ratingValue *int, commentText *string, now time.Time) error {
	rating, comment := r.rating, r.comment
	if ratingValue != nil {
		v, err := NewRating(*ratingValue)
		if err != nil {
			return err
		}
		rating = v
	}
	if commentText != nil {
		v, err := NewComment(*commentText)
		if err != nil {
			return err
		}
		comment = v
	}
	r.rating, r.comment, r.updatedAt = rating, comment, now
	return nil
}

// SetHidden is the moderation switch; hidden reviews are excluded from public listings.
func (r *Review) SetHidden(hidden bool, now time.Time) {
	if r.hidden == hidden {
		return
	}
	r.hidden = hidden
	r.updatedAt = now
}
