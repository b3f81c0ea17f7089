package response

import (
	"time"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customerName"`
	ProviderID   uuid.UUID `json:"providerId"`
	ProviderName string    `json:"providerName"`
	BookingID    uuid.UUID `json:"bookingId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Hidden       bool      `json:"hidden"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ReviewListResponse struct {
	Items      []ReviewResponse `json:"items"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

type EnquiryResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customerName"`
	ProviderID   uuid.UUID `json:"providerId"`
	ProviderName string    `json:"providerName"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Reply        *string   `json:"reply,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type TermsResponse struct {
	Version     string    `json:"version"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"publishedAt"`
}
