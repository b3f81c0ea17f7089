//go:build e2e

package e2e

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"

	"salon-booking/cmd/bootstrap"
	"salon-booking/cmd/bootstrap/components"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/config"
	"salon-booking/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite gives each suite its own database in the shared containers and an API router
// wired exactly like cmd/main.go, minus the HTTP listener.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	b, err := startBacking()
	require.NoError(t, err, "start containers")

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, b)
	cfg.Redis.Addr = b.redis.addr()
	s.Config = cfg

	s.DB, _, err = db.Connect(context.Background(), cfg.DB)
	require.NoError(t, err, "connect test database")
	t.Cleanup(s.DB.Close)

	require.NoError(t, migrate(t.Context(), s.DB), "apply migrations")
	require.NoError(t, dbtest.SeedReferenceData(s.DB), "seed reference data")

	s.Router = startAPI(t, s.DB, cfg)
}

// SetupSubTest starts every subtest from empty tables.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

func createDatabase(t *testing.T, b backing) config.DBConfig {
	t.Helper()
	name := "salon_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	admin, err := pgxpool.New(t.Context(), b.adminDSN())
	require.NoError(t, err)
	defer admin.Close()

	// the container may still be finishing its init scripts
	require.Eventually(t, func() bool {
		_, err = admin.Exec(t.Context(), "CREATE DATABASE "+name)
		return err == nil
	}, 10*time.Second, 500*time.Millisecond, "create database %s", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, b.adminDSN())
		if err != nil {
			return
		}
		defer pool.Close()
		_, _ = pool.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
	})

	return config.DBConfig{
		Host:     b.postgres.host,
		Port:     b.postgres.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Kolkata",
		MaxConns: 10,
	}
}

// migrate runs migrations/*.sql in name order, without the atlas binary.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, self, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(self), "..", "..", "migrations")

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	slices.Sort(files)
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return err
		}
	}
	return nil
}

func startAPI(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(bootstrap.NewBookingLocation, func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.AuthModule,
		bootstrap.CacheModule,
		bootstrap.QueueModule,
		bootstrap.PaymentModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start api")
	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	})
	return router
}
