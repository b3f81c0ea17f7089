//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"salon-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Conn is what the fixtures need from a pool or transaction.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultPassword is the plain password of every user created by CreateTestUser.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.NewHasher(4).Hash(DefaultPassword)
		require.NoError(t, err)
		defaultHash = h
	})
	return defaultHash
}

func CreateTestUser(t *testing.T, db Conn, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, strings.Split(email, "@")[0], passwordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// CreateApprovedProvider inserts an approved salon open 09:00-18:00 owned by ownerID.
func CreateApprovedProvider(t *testing.T, db Conn, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO providers (id, owner_id, name, kind, address, opening_min, closing_min, status)
		 VALUES ($1, $2, $3, 'salon', '12 MG Road, Bengaluru', 540, 1080, 'approved')`,
		id, ownerID, name)
	require.NoError(t, err)
	return id
}

func CreateEmployee(t *testing.T, db Conn, providerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO employees (id, provider_id, name) VALUES ($1, $2, $3)`,
		id, providerID, name)
	require.NoError(t, err)
	return id
}

func CreateService(t *testing.T, db Conn, providerID uuid.UUID, name string, amount int64, minutes int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO services (id, provider_id, name, price_amount, currency, duration_minutes)
		 VALUES ($1, $2, $3, $4, 'INR', $5)`,
		id, providerID, name, amount, minutes)
	require.NoError(t, err)
	return id
}

// CreateConfirmedBooking inserts a paid 10:00-11:00 booking of a single 60 minute service.
func CreateConfirmedBooking(t *testing.T, db Conn, customerID, providerID, serviceID uuid.UUID, date time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	services := fmt.Sprintf(`[{"service_id":%q,"name":"Haircut","price_amount":50000,"duration_minutes":60}]`, serviceID)
	_, err := db.Exec(context.Background(),
		`INSERT INTO bookings (id, customer_id, provider_id, customer_name, employee_name, booking_date,
		   start_min, duration_minutes, services, price_amount, currency, status, order_id)
		 VALUES ($1, $2, $3, 'Priya', 'Ravi', $4, 600, 60, $5, 50000, 'INR', 'confirmed', $6)`,
		id, customerID, providerID, date.Format("2006-01-02"), services, "ord_"+id.String())
	require.NoError(t, err)
	return id
}

// SeedReferenceData publishes the first terms version.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO terms_documents (version, body)
		VALUES ('v1', 'Bookings are confirmed once payment succeeds.')
		ON CONFLICT (version) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
