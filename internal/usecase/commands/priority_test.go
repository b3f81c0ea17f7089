//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"salon-booking/internal/domain/provider"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/commands"
	"salon-booking/tests/common/builder"
	commandsmock "salon-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPriority(f *fixture, overlay commands.PriorityOverlay, debounce time.Duration) commands.PriorityCommands {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return commands.NewPriorityCommands(f.uow, overlay, f.clock, debounce, logger)
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}
}

func TestPriorityCoalescing(t *testing.T) {
	ctx := context.Background()

	t.Run("burst collapses into one write of the last value", func(t *testing.T) {
		f := newFixture(t)
		overlay := commandsmock.NewMockPriorityOverlay(f.ctrl)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil).Times(3)

		overlay.EXPECT().SetPriority(gomock.Any(), p.ID(), gomock.Any()).Return(nil).Times(3)
		f.providers.EXPECT().UpdatePriority(gomock.Any(), p.ID(), 30, f.clock.Now()).Return(nil).Times(1)
		cleared := make(chan struct{})
		overlay.EXPECT().ClearPriority(gomock.Any(), p.ID(), 30).
			DoAndReturn(func(context.Context, uuid.UUID, int) error {
				close(cleared)
				return nil
			})

		cmds := newPriority(f, overlay, 20*time.Millisecond)
		for _, v := range []int{10, 20, 30} {
			require.NoError(t, cmds.SetPriority(ctx, p.ID(), v))
		}
		waitFor(t, cleared)
		require.NoError(t, cmds.Close(ctx))
	})

	t.Run("failed write rolls the overlay back", func(t *testing.T) {
		f := newFixture(t)
		overlay := commandsmock.NewMockPriorityOverlay(f.ctrl)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil)

		overlay.EXPECT().SetPriority(gomock.Any(), p.ID(), 99).Return(nil)
		f.providers.EXPECT().UpdatePriority(gomock.Any(), p.ID(), 99, gomock.Any()).Return(errors.New("db down"))
		rolledBack := make(chan struct{})
		overlay.EXPECT().ClearPriority(gomock.Any(), p.ID(), 99).
			DoAndReturn(func(context.Context, uuid.UUID, int) error {
				close(rolledBack)
				return nil
			})

		cmds := newPriority(f, overlay, 20*time.Millisecond)
		require.NoError(t, cmds.SetPriority(ctx, p.ID(), 99))
		waitFor(t, rolledBack)
		require.NoError(t, cmds.Close(ctx))
	})

	t.Run("close flushes pending edits", func(t *testing.T) {
		f := newFixture(t)
		overlay := commandsmock.NewMockPriorityOverlay(f.ctrl)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil)
		overlay.EXPECT().SetPriority(gomock.Any(), p.ID(), 5).Return(nil)
		f.providers.EXPECT().UpdatePriority(gomock.Any(), p.ID(), 5, gomock.Any()).Return(nil)
		overlay.EXPECT().ClearPriority(gomock.Any(), p.ID(), 5).Return(nil)

		cmds := newPriority(f, overlay, time.Hour)
		require.NoError(t, cmds.SetPriority(ctx, p.ID(), 5))
		require.NoError(t, cmds.Close(ctx))
	})

	t.Run("overlay outage still reaches the database", func(t *testing.T) {
		f := newFixture(t)
		overlay := commandsmock.NewMockPriorityOverlay(f.ctrl)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil)
		overlay.EXPECT().SetPriority(gomock.Any(), p.ID(), 7).Return(errors.New("redis down"))
		f.providers.EXPECT().UpdatePriority(gomock.Any(), p.ID(), 7, gomock.Any()).Return(nil)
		overlay.EXPECT().ClearPriority(gomock.Any(), p.ID(), 7).Return(nil)

		cmds := newPriority(f, overlay, time.Hour)
		require.NoError(t, cmds.SetPriority(ctx, p.ID(), 7))
		require.NoError(t, cmds.Close(ctx))
	})

	t.Run("edit arriving during a flush keeps its overlay", func(t *testing.T) {
		f := newFixture(t)
		overlay := commandsmock.NewMockPriorityOverlay(f.ctrl)
		p := builder.NewProviderBuilder().BuildDomain()
		f.providers.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil).Times(2)
		overlay.EXPECT().SetPriority(gomock.Any(), p.ID(), 10).Return(nil)
		overlay.EXPECT().SetPriority(gomock.Any(), p.ID(), 20).Return(nil)

		var cmds commands.PriorityCommands
		f.providers.EXPECT().UpdatePriority(gomock.Any(), p.ID(), 10, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ int, _ time.Time) error {
				// the admin edits again while the first value is being written
				return cmds.SetPriority(ctx, p.ID(), 20)
			})
		f.providers.EXPECT().UpdatePriority(gomock.Any(), p.ID(), 20, gomock.Any()).Return(nil)
		// no ClearPriority for 10: the overlay already holds 20
		cleared := make(chan struct{})
		overlay.EXPECT().ClearPriority(gomock.Any(), p.ID(), 20).
			DoAndReturn(func(context.Context, uuid.UUID, int) error {
				close(cleared)
				return nil
			})

		cmds = newPriority(f, overlay, 20*time.Millisecond)
		require.NoError(t, cmds.SetPriority(ctx, p.ID(), 10))
		waitFor(t, cleared)
		require.NoError(t, cmds.Close(ctx))
	})
}

func TestPriorityValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("out of range", func(t *testing.T) {
		f := newFixture(t)
		cmds := newPriority(f, commandsmock.NewMockPriorityOverlay(f.ctrl), time.Hour)
		err := cmds.SetPriority(ctx, uuid.New(), provider.MaxPriority+1)
		assert.ErrorIs(t, err, provider.ErrInvalidPriority)
	})

	t.Run("unknown provider", func(t *testing.T) {
		f := newFixture(t)
		f.providers.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})
		cmds := newPriority(f, commandsmock.NewMockPriorityOverlay(f.ctrl), time.Hour)
		err := cmds.SetPriority(ctx, uuid.New(), 1)
		assert.ErrorIs(t, err, commands.ErrProviderNotFound)
	})
}
