//go:build unit

package infra_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"salon-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "exclusion", err: &pgconn.PgError{Code: "23P01"}, want: infra.KindConflict},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("boom"), want: infra.KindDBFailure},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, infra.Classify(c.err))
		})
	}
}

func TestWrapPgErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cause := &pgconn.PgError{Code: "23P01"}

	err := infra.WrapPgErr(logger, "insert booking", cause)

	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
}
