//go:build unit

package commands_test

import (
	"context"
	"testing"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/provider"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/commands"
	"salon-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validProviderInput() commands.RegisterProviderInput {
	return commands.RegisterProviderInput{
		Name:        "Glow Studio",
		Kind:        string(provider.KindSalon),
		Address:     "12 MG Road, Bengaluru",
		OpeningTime: "09:00",
		ClosingTime: "18:00",
	}
}

func TestProviderRegister(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("new provider awaits approval", func(t *testing.T) {
		f := newFixture(t)
		var created *provider.Provider
		f.providers.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *provider.Provider) error {
				created = p
				return nil
			})

		id, err := commands.NewProviderCommands(f.uow, f.clock, "INR").Register(ctx, ownerID, validProviderInput())
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), id)
		assert.Equal(t, ownerID, created.OwnerID())
		assert.Equal(t, provider.StatusPending, created.Status())
	})

	t.Run("second profile for the same owner", func(t *testing.T) {
		f := newFixture(t)
		f.providers.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := commands.NewProviderCommands(f.uow, f.clock, "INR").Register(ctx, ownerID, validProviderInput())
		assert.ErrorIs(t, err, commands.ErrProviderExists)
	})

	t.Run("closing before opening", func(t *testing.T) {
		f := newFixture(t)
		in := validProviderInput()
		in.OpeningTime, in.ClosingTime = "18:00", "09:00"

		_, err := commands.NewProviderCommands(f.uow, f.clock, "INR").Register(ctx, ownerID, in)
		assert.ErrorIs(t, err, provider.ErrInvalidHours)
	})
}

func TestProviderUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("closing time alone keeps the opening time", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByOwner(gomock.Any(), p.OwnerID()).Return(p, nil)
		f.providers.EXPECT().Save(gomock.Any(), p).Return(nil)

		closing := "20:30"
		err := commands.NewProviderCommands(f.uow, f.clock, "INR").
			UpdateProfile(ctx, p.OwnerID(), commands.UpdateProviderInput{ClosingTime: &closing})
		require.NoError(t, err)
		assert.Equal(t, "09:00", p.Hours().Open.String())
		assert.Equal(t, "20:30", p.Hours().Close.String())
	})

	t.Run("account without a profile", func(t *testing.T) {
		f := newFixture(t)
		f.providers.EXPECT().FindByOwner(gomock.Any(), gomock.Any()).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		name := "New name"
		err := commands.NewProviderCommands(f.uow, f.clock, "INR").
			UpdateProfile(ctx, uuid.New(), commands.UpdateProviderInput{Name: &name})
		assert.ErrorIs(t, err, commands.ErrNoProviderProfile)
	})
}

func TestProviderStaffAndServices(t *testing.T) {
	ctx := context.Background()

	t.Run("add employee", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByOwner(gomock.Any(), p.OwnerID()).Return(p, nil)
		f.employees.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *provider.Employee) error {
				assert.Equal(t, p.ID(), e.ProviderID())
				assert.Equal(t, "Ravi", e.Name())
				return nil
			})

		id, err := commands.NewProviderCommands(f.uow, f.clock, "INR").AddEmployee(ctx, p.OwnerID(), "  Ravi ")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("duplicate employee", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByOwner(gomock.Any(), p.OwnerID()).Return(p, nil)
		f.employees.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := commands.NewProviderCommands(f.uow, f.clock, "INR").AddEmployee(ctx, p.OwnerID(), "Ravi")
		assert.ErrorIs(t, err, commands.ErrEmployeeExists)
	})

	t.Run("remove unknown employee", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByOwner(gomock.Any(), p.OwnerID()).Return(p, nil)
		f.employees.EXPECT().Delete(gomock.Any(), p.ID(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindNotFound})

		err := commands.NewProviderCommands(f.uow, f.clock, "INR").RemoveEmployee(ctx, p.OwnerID(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrEmployeeNotFound)
	})

	t.Run("add service priced in the configured currency", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByOwner(gomock.Any(), p.OwnerID()).Return(p, nil)
		f.services.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *catalog.Service) error {
				assert.Equal(t, p.ID(), s.ProviderID())
				assert.Equal(t, int64(80000), s.Price().Amount())
				assert.Equal(t, "INR", s.Price().Currency())
				assert.Equal(t, 45, s.DurationMinutes())
				return nil
			})

		_, err := commands.NewProviderCommands(f.uow, f.clock, "INR").AddService(ctx, p.OwnerID(), commands.AddServiceInput{
			Name:            "Beard trim",
			Style:           "Classic",
			Amount:          80000,
			DurationMinutes: 45,
		})
		require.NoError(t, err)
	})

	t.Run("remove service of another provider", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByOwner(gomock.Any(), p.OwnerID()).Return(p, nil)
		f.services.EXPECT().Delete(gomock.Any(), p.ID(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindNotFound})

		err := commands.NewProviderCommands(f.uow, f.clock, "INR").RemoveService(ctx, p.OwnerID(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrServiceNotFound)
	})
}

func TestProviderModeration(t *testing.T) {
	ctx := context.Background()

	t.Run("approve pending provider", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewProviderBuilder().Pending().BuildDomain()
		f.providers.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil)
		f.providers.EXPECT().Save(gomock.Any(), p).Return(nil)

		require.NoError(t, commands.NewProviderCommands(f.uow, f.clock, "INR").Approve(ctx, p.ID()))
		assert.True(t, p.IsBookable())
	})

	t.Run("reject approved provider", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil)

		err := commands.NewProviderCommands(f.uow, f.clock, "INR").Reject(ctx, p.ID())
		assert.ErrorIs(t, err, provider.ErrAlreadyDecided)
	})

	t.Run("delete unknown provider", func(t *testing.T) {
		f := newFixture(t)
		f.providers.EXPECT().Delete(gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindNotFound})

		err := commands.NewProviderCommands(f.uow, f.clock, "INR").Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrProviderNotFound)
	})
}
