package queries

import (
	"time"

	"github.com/google/uuid"
)

type ProviderView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Address     string    `json:"address"`
	OpeningTime string    `json:"opening_time"`
	ClosingTime string    `json:"closing_time"`
	Status      string    `json:"status"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

type RatingSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type ProviderDetailView struct {
	ProviderView
	Rating    RatingSummary  `json:"rating"`
	Employees []EmployeeView `json:"employees"`
	Services  []ServiceView  `json:"services"`
}

type EmployeeView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	ProviderID      uuid.UUID `json:"provider_id"`
	Name            string    `json:"name"`
	Style           string    `json:"style,omitempty"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	DurationMinutes int       `json:"duration_minutes"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	ProviderID      uuid.UUID `json:"provider_id"`
	ProviderName    string    `json:"provider_name"`
	EmployeeName    string    `json:"employee_name"`
	Date            time.Time `json:"date"`
	TimeSlot        string    `json:"time_slot"`
	ServiceName     string    `json:"service_name"`
	RelatedServices []string  `json:"related_services"`
	DurationMinutes int       `json:"duration_minutes"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	OrderID         *string   `json:"order_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type RevenueRow struct {
	ProviderID   uuid.UUID `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	Bookings     int       `json:"bookings"`
	Amount       int64     `json:"amount"`
	Currency     string    `json:"currency"`
}

type ReviewView struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ProviderID   uuid.UUID `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	BookingID    uuid.UUID `json:"booking_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Hidden       bool      `json:"hidden"`
	CreatedAt    time.Time `json:"created_at"`
}

type EnquiryView struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ProviderID   uuid.UUID `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Reply        *string   `json:"reply,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type TermsView struct {
	Version     string    `json:"version"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"published_at"`
}

type SlotView struct {
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

type AvailabilityView struct {
	ProviderID      uuid.UUID  `json:"provider_id"`
	Employee        string     `json:"employee"`
	Date            string     `json:"date"`
	DurationMinutes int        `json:"duration_minutes"`
	Slots           []SlotView `json:"slots"`
}
