package response

import (
	"time"

	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customerName"`
	ProviderID      uuid.UUID `json:"providerId"`
	ProviderName    string    `json:"providerName"`
	EmployeeName    string    `json:"employeeName"`
	Date            time.Time `json:"date"`
	TimeSlot        string    `json:"timeSlot"`
	ServiceName     string    `json:"serviceName"`
	RelatedServices []string  `json:"relatedServices"`
	DurationMinutes int       `json:"durationMinutes"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	OrderID         *string   `json:"orderId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type RevenueResponse struct {
	ProviderID   uuid.UUID `json:"providerId"`
	ProviderName string    `json:"providerName"`
	Bookings     int       `json:"bookings"`
	Amount       int64     `json:"amount"`
	Currency     string    `json:"currency"`
}

type DraftLineResponse struct {
	ServiceID       uuid.UUID `json:"serviceId"`
	Name            string    `json:"name"`
	Style           string    `json:"style,omitempty"`
	Amount          int64     `json:"amount"`
	DurationMinutes int       `json:"durationMinutes"`
}

type DraftResponse struct {
	ID              uuid.UUID           `json:"id"`
	ProviderID      uuid.UUID           `json:"providerId"`
	State           string              `json:"state"`
	CustomerName    string              `json:"customerName"`
	Service         *DraftLineResponse  `json:"service"`
	AddOns          []DraftLineResponse `json:"addOns"`
	Date            *string             `json:"date"`
	Employee        string              `json:"employee"`
	TimeSlot        string              `json:"timeSlot"`
	TermsVersion    string              `json:"termsVersion"`
	DurationMinutes int                 `json:"durationMinutes"`
	Amount          int64               `json:"amount"`
	Currency        string              `json:"currency"`
}

type CheckoutResponse struct {
	BookingID    uuid.UUID `json:"bookingId"`
	OrderID      string    `json:"orderId"`
	ClientSecret string    `json:"clientSecret"`
	Amount       int64     `json:"amount"`
	Currency     string    `json:"currency"`
}

type PaymentResponse struct {
	OrderID        string    `json:"orderId"`
	BookingID      uuid.UUID `json:"bookingId"`
	Outcome        string    `json:"outcome"`
	Attempts       int       `json:"attempts"`
	BookingStatus  string    `json:"bookingStatus"`
	FailureReason  string    `json:"failureReason,omitempty"`
	RefundRequired bool      `json:"refundRequired,omitempty"`
}

func FromDraft(v *commands.DraftView) *DraftResponse {
	out := &DraftResponse{
		ID:              v.ID,
		ProviderID:      v.ProviderID,
		State:           v.State,
		CustomerName:    v.CustomerName,
		AddOns:          make([]DraftLineResponse, 0, len(v.AddOns)),
		Date:            v.Date,
		Employee:        v.Employee,
		TimeSlot:        v.TimeSlot,
		TermsVersion:    v.TermsVersion,
		DurationMinutes: v.DurationMinutes,
		Amount:          v.Amount,
		Currency:        v.Currency,
	}
	if v.Service != nil {
		line := DraftLineResponse(*v.Service)
		out.Service = &line
	}
	for _, l := range v.AddOns {
		out.AddOns = append(out.AddOns, DraftLineResponse(l))
	}
	return out
}
