package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Pool is satisfied by *pgxpool.Pool and pgxmock.PgxPoolIface.
type Pool interface {
	db.DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool   Pool
	logger *slog.Logger
	base   time.Duration
	reads  *pgTx
}

func NewPostgresUoW(pool Pool, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		logger: logger,
		base:   100 * time.Millisecond,
		reads:  newPgTx(pool, logger),
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Reads returns repositories bound to the pool. Each call runs in its own implicit transaction.
func (u *PostgresUoW) Reads() shared.Tx {
	return u.reads
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, newPgTx(pgxTx, u.logger))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, u.base)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	bookings  *repository.BookingRepository
	providers *repository.ProviderRepository
	employees *repository.EmployeeRepository
	services  *repository.ServiceRepository
	reviews   *repository.ReviewRepository
	users     *repository.UserRepository
	enquiries *repository.EnquiryRepository
	terms     *repository.TermsRepository
}

func newPgTx(dbtx db.DBTX, logger *slog.Logger) *pgTx {
	return &pgTx{
		bookings:  repository.NewBookingRepository(dbtx, logger),
		providers: repository.NewProviderRepository(dbtx, logger),
		employees: repository.NewEmployeeRepository(dbtx, logger),
		services:  repository.NewServiceRepository(dbtx, logger),
		reviews:   repository.NewReviewRepository(dbtx, logger),
		users:     repository.NewUserRepository(dbtx, logger),
		enquiries: repository.NewEnquiryRepository(dbtx, logger),
		terms:     repository.NewTermsRepository(dbtx, logger),
	}
}

func (t *pgTx) Bookings() shared.BookingRepository   { return t.bookings }
func (t *pgTx) Providers() shared.ProviderRepository { return t.providers }
func (t *pgTx) Employees() shared.EmployeeRepository { return t.employees }
func (t *pgTx) Services() shared.ServiceRepository   { return t.services }
func (t *pgTx) Reviews() shared.ReviewRepository     { return t.reviews }
func (t *pgTx) Users() shared.UserRepository         { return t.users }
func (t *pgTx) Enquiries() shared.EnquiryRepository  { return t.enquiries }
func (t *pgTx) Terms() shared.TermsRepository        { return t.terms }
