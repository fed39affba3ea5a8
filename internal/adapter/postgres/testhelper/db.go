package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/campusdesk-backend/migrations"
)

// DSNEnv points the repository tests at an existing database instead of a
// throwaway container.
const DSNEnv = "CAMPUSDESK_TEST_DSN"

const (
	pgImage = "postgres:17-alpine"
	pgUser  = "campus"
	pgDB    = "campusdesk"
)

var shared struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool on a migrated database shared by the whole test
// binary. Seed helpers generate unique keys, so tests may run in parallel.
// The pool is closed on cleanup; the container outlives it.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	shared.once.Do(func() {
		shared.dsn, shared.err = provision()
	})
	if shared.err != nil {
		t.Fatalf("testhelper: database unavailable: %v", shared.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, shared.dsn)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func provision() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = startPostgres(ctx); err != nil {
			return "", err
		}
	}
	if err := applyMigrations(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

func startPostgres(ctx context.Context) (string, error) {
	ctr, err := testcontainers.Run(ctx, pgImage,
		testcontainers.WithExposedPorts("5432/tcp"),
		testcontainers.WithEnv(map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgUser,
			"POSTGRES_DB":       pgDB,
		}),
		// postgres restarts once after initdb; the second line is the real one.
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	if err != nil {
		return "", fmt.Errorf("start %s: %w", pgImage, err)
	}

	endpoint, err := ctr.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("resolve postgres endpoint: %w", err)
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pgUser, pgUser, endpoint, pgDB), nil
}

// applyMigrations runs the embedded goose migrations through a
// database/sql handle borrowed from a short-lived pgx pool.
func applyMigrations(ctx context.Context, dsn string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("open migration pool: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
