//go:build integration
// +build integration

package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/weatherpulse/internal/observability"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "weatherpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=weatherpulse sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/weatherpulse?sslmode=disable", host, port.Port())
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openMigrated(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// internal/ingestion → ../../db/migrations
	if err := goose.Up(db, filepath.Join("..", "..", "db", "migrations")); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestIngestion_EndToEnd_ProcessDirectory(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openMigrated(t, dsn)
	defer db.Close()

	dir := t.TempDir()
	writeTempFile(t, dir, "week1.csv", sampleFile())
	writeTempFile(t, dir, "week2.csv", csvHeader+
		"2021-07-04T07:00:00+08:00,56,62\n"+
		"2021-07-05T07:00:00+08:00,55,61\n"+
		"2021-07-06T07:00:00+08:00,53,62\n")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := ProcessDirectory(ctx, dir, db, 2, false, observability.NewMetricsForTesting()); err != nil {
		t.Fatalf("ProcessDirectory: %v", err)
	}

	if got := countRows(t, db, "SELECT COUNT(*) FROM observations"); got != 5 {
		t.Fatalf("expected 5 observations, got %d", got)
	}
	if got := countRows(t, db, "SELECT row_count FROM ingestion_log WHERE source_file=$1", "week2.csv"); got != 3 {
		t.Fatalf("expected row_count 3 for week2.csv, got %d", got)
	}

	// second run is a no-op; forced run replaces without duplicating
	if err := ProcessDirectory(ctx, dir, db, 2, false, observability.NewMetricsForTesting()); err != nil {
		t.Fatalf("ProcessDirectory rerun: %v", err)
	}
	if err := ProcessDirectory(ctx, dir, db, 1, true, observability.NewMetricsForTesting()); err != nil {
		t.Fatalf("ProcessDirectory force: %v", err)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM observations"); got != 5 {
		t.Fatalf("expected 5 observations after reruns, got %d", got)
	}
}
