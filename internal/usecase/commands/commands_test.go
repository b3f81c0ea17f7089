//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/shared"
	sharedmock "salon-booking/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var ist = time.FixedZone("IST", 19800)

// fixture wires one mock Tx behind both Reads and Within.
type fixture struct {
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	bookings  *sharedmock.MockBookingRepository
	providers *sharedmock.MockProviderRepository
	employees *sharedmock.MockEmployeeRepository
	services  *sharedmock.MockServiceRepository
	reviews   *sharedmock.MockReviewRepository
	users     *sharedmock.MockUserRepository
	enquiries *sharedmock.MockEnquiryRepository
	terms     *sharedmock.MockTermsRepository
	clock     *clock.MockClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:      ctrl,
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		bookings:  sharedmock.NewMockBookingRepository(ctrl),
		providers: sharedmock.NewMockProviderRepository(ctrl),
		employees: sharedmock.NewMockEmployeeRepository(ctrl),
		services:  sharedmock.NewMockServiceRepository(ctrl),
		reviews:   sharedmock.NewMockReviewRepository(ctrl),
		users:     sharedmock.NewMockUserRepository(ctrl),
		enquiries: sharedmock.NewMockEnquiryRepository(ctrl),
		terms:     sharedmock.NewMockTermsRepository(ctrl),
		clock:     clock.NewMockClock(time.Date(2026, 5, 4, 10, 0, 0, 0, ist)),
	}

	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Providers().Return(f.providers).AnyTimes()
	f.tx.EXPECT().Employees().Return(f.employees).AnyTimes()
	f.tx.EXPECT().Services().Return(f.services).AnyTimes()
	f.tx.EXPECT().Reviews().Return(f.reviews).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Enquiries().Return(f.enquiries).AnyTimes()
	f.tx.EXPECT().Terms().Return(f.terms).AnyTimes()

	f.uow.EXPECT().Reads().Return(f.tx).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	return f
}

// memDraftStore keeps snapshots in memory.
type memDraftStore struct {
	mu      sync.Mutex
	drafts  map[uuid.UUID]booking.DraftSnapshot
	links   map[uuid.UUID]uuid.UUID
	reverse map[uuid.UUID]uuid.UUID
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{
		drafts:  map[uuid.UUID]booking.DraftSnapshot{},
		links:   map[uuid.UUID]uuid.UUID{},
		reverse: map[uuid.UUID]uuid.UUID{},
	}
}

func (s *memDraftStore) Save(_ context.Context, snap booking.DraftSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[snap.ID] = snap
	return nil
}

func (s *memDraftStore) Load(_ context.Context, id uuid.UUID) (booking.DraftSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.drafts[id]
	if !ok {
		return booking.DraftSnapshot{}, commands.ErrDraftNotFound
	}
	return snap, nil
}

func (s *memDraftStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	if bookingID, ok := s.links[id]; ok {
		delete(s.reverse, bookingID)
	}
	delete(s.links, id)
	return nil
}

func (s *memDraftStore) LinkBooking(_ context.Context, draftID, bookingID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[draftID] = bookingID
	s.reverse[bookingID] = draftID
	return nil
}

func (s *memDraftStore) LinkedDraft(_ context.Context, bookingID uuid.UUID) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.reverse[bookingID]
	return id, ok, nil
}

func (s *memDraftStore) LinkedBooking(_ context.Context, draftID uuid.UUID) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.links[draftID]
	return id, ok, nil
}
