package request

import (
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{BookingID: r.BookingID, Rating: r.Rating, Comment: r.Comment}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

func (r *UpdateReviewRequest) ToInput() commands.UpdateReviewInput {
	return commands.UpdateReviewInput{Rating: r.Rating, Comment: r.Comment}
}

type HideReviewRequest struct {
	Hidden *bool `json:"hidden" binding:"required"`
}
