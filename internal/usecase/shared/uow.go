package shared

import (
	"context"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/enquiry"
	"salon-booking/internal/domain/provider"
	"salon-booking/internal/domain/review"
	"salon-booking/internal/domain/terms"
	"salon-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: repositories bound to the pool for lookups outside a transaction
	Reads() Tx
}

type Tx interface {
	Bookings() BookingRepository
	Providers() ProviderRepository
	Employees() EmployeeRepository
	Services() ServiceRepository
	Reviews() ReviewRepository
	Users() UserRepository
	Enquiries() EnquiryRepository
	Terms() TermsRepository
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*booking.Booking, error)
	Save(ctx context.Context, b *booking.Booking) error
	// BookedIntervals returns the slots held by the employee's awaiting or confirmed bookings on date.
	BookedIntervals(ctx context.Context, providerID uuid.UUID, employee string, date time.Time) ([]availability.Interval, error)
	// LockEmployeeDay serializes bookings for one employee and day until the transaction ends.
	LockEmployeeDay(ctx context.Context, providerID uuid.UUID, employee string, date time.Time) error
}

type ProviderRepository interface {
	Create(ctx context.Context, p *provider.Provider) error
	FindByID(ctx context.Context, id uuid.UUID) (*provider.Provider, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*provider.Provider, error)
	Save(ctx context.Context, p *provider.Provider) error
	UpdatePriority(ctx context.Context, id uuid.UUID, priority int, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, e *provider.Employee) error
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*provider.Employee, error)
	Delete(ctx context.Context, providerID, id uuid.UUID) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *catalog.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	Delete(ctx context.Context, providerID, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
	Save(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type EnquiryRepository interface {
	Create(ctx context.Context, e *enquiry.Enquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*enquiry.Enquiry, error)
	Save(ctx context.Context, e *enquiry.Enquiry) error
}

type TermsRepository interface {
	Current(ctx context.Context) (terms.Document, error)
	Publish(ctx context.Context, doc terms.Document) error
}
