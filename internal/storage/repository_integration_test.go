//go:build integration
// +build integration

package storage

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

	"github.com/guttosm/weatherpulse/internal/domain/models"
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

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// internal/storage → ../../db/migrations
	if err := goose.Up(db, filepath.Join("..", "..", "db", "migrations")); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func TestRepository_Integration(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	repo := NewObservationsRepository(db)

	zone := time.FixedZone("", 8*3600)
	var obs []models.Observation
	for i, low := range []int{49, 57, 56, 55, 53} {
		at := time.Date(2021, 7, 2+i, 7, 0, 0, 0, zone)
		obs = append(obs, models.Observation{
			SourceFile: "week.csv",
			Position:   i,
			Timestamp:  at.Format(time.RFC3339),
			ObservedAt: at,
			LowF:       low,
			HighF:      low + 10,
		})
	}
	if err := repo.InsertObservationsBatch(obs); err != nil {
		t.Fatalf("insert: %v", err)
	}

	day := func(d int) *time.Time {
		v := time.Date(2021, 7, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	cases := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  int
	}{
		{name: "all", want: 5},
		{name: "from 4th", start: day(4), want: 3},
		{name: "3rd to 5th", start: day(3), end: day(5), want: 3},
		// 07:00+08:00 on the 2nd is still the 1st in UTC; the local date must be used
		{name: "only 2nd", start: day(2), end: day(2), want: 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := repo.ListObservations(c.start, c.end)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(out) != c.want {
				t.Fatalf("want %d rows, got %d", c.want, len(out))
			}
		})
	}

	t.Run("ingestion log upsert+exists", func(t *testing.T) {
		if err := repo.UpsertIngestionLog("week.csv", 5); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		ok, err := repo.HasIngestionForFile("week.csv")
		if err != nil || !ok {
			t.Fatalf("exists want true, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("delete by source", func(t *testing.T) {
		if err := repo.DeleteObservationsBySource("week.csv"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		out, err := repo.ListObservations(nil, nil)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("expected 0 rows after delete, got %d", len(out))
		}
	})
	t.Run("rows keep file order", func(t *testing.T) {
		mk := func(src string, pos, d int) models.Observation {
			at := time.Date(2021, 7, d, 7, 0, 0, 0, zone)
			return models.Observation{SourceFile: src, Position: pos, Timestamp: at.Format(time.RFC3339), ObservedAt: at, LowF: 50, HighF: 60}
		}
		batch := []models.Observation{
			mk("unordered.csv", 0, 10),
			mk("unordered.csv", 1, 8),
			mk("unordered.csv", 2, 9),
			mk("early.csv", 0, 7),
		}
		if err := repo.InsertObservationsBatch(batch); err != nil {
			t.Fatalf("insert: %v", err)
		}
		out, err := repo.ListObservations(nil, nil)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		want := []string{"early.csv/0", "unordered.csv/0", "unordered.csv/1", "unordered.csv/2"}
		if len(out) != len(want) {
			t.Fatalf("want %d rows, got %d", len(want), len(out))
		}
		for i, o := range out {
			if got := fmt.Sprintf("%s/%d", o.SourceFile, o.Position); got != want[i] {
				t.Fatalf("row %d: want %s got %s", i, want[i], got)
			}
		}
	})
}
