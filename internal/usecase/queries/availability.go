package queries

import (
	"context"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/provider"
	"salon-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// BookedIntervalSource is satisfied by the booking repository.
type BookedIntervalSource interface {
	BookedIntervals(ctx context.Context, providerID uuid.UUID, employee string, date time.Time) ([]availability.Interval, error)
}

// EmployeeSource is satisfied by the employee repository. It lists every active employee,
// unpaged, the same lookup the booking draft validates against.
type EmployeeSource interface {
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*provider.Employee, error)
}

type AvailabilityQueries interface {
	// Slots lists the offerable slots of date, each flagged by whether a booking of
	// durationMinutes starting there would fit the employee's schedule.
	Slots(ctx context.Context, providerID uuid.UUID, employee string, date time.Time, durationMinutes int) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	providers ProviderReadStore
	employees EmployeeSource
	booked    BookedIntervalSource
	clock     clock.Clock
	loc       *time.Location
}

func NewAvailabilityQueries(providers ProviderReadStore, employees EmployeeSource, booked BookedIntervalSource, clk clock.Clock, loc *time.Location) AvailabilityQueries {
	return &availabilityQueriesImpl{
		providers: providers,
		employees: employees,
		booked:    booked,
		clock:     clk,
		loc:       loc,
	}
}

func (q *availabilityQueriesImpl) Slots(ctx context.Context, providerID uuid.UUID, employee string, date time.Time, durationMinutes int) (*AvailabilityView, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	now := q.clock.Now().In(q.loc)
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, q.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, q.loc)
	if day.Before(today) {
		return nil, ErrDateInPast
	}

	pv, err := q.providers.FindByID(ctx, providerID)
	if err != nil {
		return nil, mapProviderErr(err)
	}
	if pv.Status != string(provider.StatusApproved) {
		return nil, ErrProviderNotBookable
	}
	open, err := availability.ParseClock(pv.OpeningTime)
	if err != nil {
		return nil, err
	}
	closing, err := availability.ParseClock(pv.ClosingTime)
	if err != nil {
		return nil, err
	}

	if err := q.checkEmployee(ctx, providerID, employee); err != nil {
		return nil, err
	}

	booked, err := q.booked.BookedIntervals(ctx, providerID, employee, day)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		ProviderID:      providerID,
		Employee:        employee,
		Date:            day.Format(time.DateOnly),
		DurationMinutes: durationMinutes,
		Slots:           []SlotView{},
	}
	for s := range availability.Offerable(open, closing, day, now) {
		candidate := availability.Interval{Start: s.Start, Duration: durationMinutes}
		view.Slots = append(view.Slots, SlotView{
			Label:     s.Label(),
			Available: availability.IsAvailable(candidate, booked),
		})
	}
	return view, nil
}

// checkEmployee accepts an empty name only for providers without staff.
func (q *availabilityQueriesImpl) checkEmployee(ctx context.Context, providerID uuid.UUID, employee string) error {
	employees, err := q.employees.ListByProvider(ctx, providerID)
	if err != nil {
		return err
	}
	if len(employees) == 0 && employee == "" {
		return nil
	}
	for _, e := range employees {
		if e.Name() == employee {
			return nil
		}
	}
	return ErrEmployeeNotFound
}
