//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "salon"
	pgPassword = "salon-test"
	pgPort     = nat.Port("5432/tcp")
	redisPort  = nat.Port("6379/tcp")
)

// backing is the postgres and redis pair shared by every suite in the test binary.
type backing struct {
	postgres endpoint
	redis    endpoint
}

type endpoint struct {
	host string
	port nat.Port
}

func (e endpoint) addr() string { return e.host + ":" + e.port.Port() }

func (b backing) adminDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, b.postgres.addr())
}

// The containers live until the test binary exits; ryuk reaps them afterwards.
var startBacking = sync.OnceValues(func() (backing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pg, err := run(ctx, postgresRequest(), pgPort)
	if err != nil {
		return backing{}, fmt.Errorf("postgres: %w", err)
	}
	rd, err := run(ctx, redisRequest(), redisPort)
	if err != nil {
		return backing{}, fmt.Errorf("redis: %w", err)
	}
	slog.Info("e2e containers ready", "postgres", pg.addr(), "redis", rd.addr())
	return backing{postgres: pg, redis: rd}, nil
})

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
			"TZ":                "Asia/Kolkata",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		// durability off: every database is thrown away
		Cmd: []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "full_page_writes=off", "-c", "max_connections=200"},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"app": "salon-booking", "purpose": "e2e"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{string(redisPort)},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		Labels:       map[string]string{"app": "salon-booking", "purpose": "e2e"},
	}
}

func run(ctx context.Context, req testcontainers.ContainerRequest, port nat.Port) (endpoint, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{host: host, port: mapped}, nil
}
