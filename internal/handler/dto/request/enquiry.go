package request

import (
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type OpenEnquiryRequest struct {
	ProviderID uuid.UUID `json:"providerId" binding:"required"`
	Subject    string    `json:"subject" binding:"required,max=200"`
	Message    string    `json:"message" binding:"required,max=2000"`
}

func (r *OpenEnquiryRequest) ToInput() commands.OpenEnquiryInput {
	return commands.OpenEnquiryInput{ProviderID: r.ProviderID, Subject: r.Subject, Message: r.Message}
}

type AnswerEnquiryRequest struct {
	Reply string `json:"reply" binding:"required,max=2000"`
}
