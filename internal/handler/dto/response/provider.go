package response

import (
	"time"

	"github.com/google/uuid"
)

type ProviderResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Address     string    `json:"address"`
	OpeningTime string    `json:"openingTime"`
	ClosingTime string    `json:"closingTime"`
	Status      string    `json:"status"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RatingResponse struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type ProviderDetailResponse struct {
	ProviderResponse
	Rating    RatingResponse     `json:"rating"`
	Employees []EmployeeResponse `json:"employees"`
	Services  []ServiceResponse  `json:"services"`
}

type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Style           string    `json:"style,omitempty"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	DurationMinutes int       `json:"durationMinutes"`
}

type SlotResponse struct {
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	ProviderID      uuid.UUID      `json:"providerId"`
	Employee        string         `json:"employee"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
