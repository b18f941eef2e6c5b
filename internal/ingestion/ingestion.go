package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/weatherpulse/internal/logger"
	"github.com/guttosm/weatherpulse/internal/observability"
	"github.com/guttosm/weatherpulse/internal/storage"
)

const (
	filePattern      = "*.csv"
	defaultBatchSize = 5000
	maxParallelFiles = 8
)

// batchSize is the number of rows per insert statement.
var batchSize = defaultBatchSize

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.ObservationsRepository {
	return storage.NewObservationsRepository(db)
}

// ProcessDirectory loads every *.csv file in dir into the observations table.
//
// Parameters:
//   - ctx:      cancels in-flight files.
//   - dir:      directory containing the CSV files.
//   - db:       open *sql.DB (PostgreSQL).
//   - parallel: files processed concurrently; 0 means min(8, NumCPU).
//   - force:    re-ingest files already present in the ingestion log.
//   - metrics:  file and row counters.
//
// Behavior:
//   - Files are keyed by base name in the ingestion log; known files are skipped unless force.
//   - Any observations already stored for the file are deleted before loading, so rows
//     left behind by an earlier failed run never duplicate.
//   - A file that fails part way has its inserted batches removed and no log entry.
//   - If any file fails, the rest are cancelled and the first error is returned.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool, metrics *observability.Metrics) error {
	repo := repoCtor(db)

	files, err := filepath.Glob(filepath.Join(dir, filePattern))
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no csv files found in %s", dir)
	}
	sort.Strings(files)

	maxParallel := maxParallelFiles
	if parallel > 0 {
		if parallel < maxParallel {
			maxParallel = parallel
		}
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", maxParallel).Msg("ingestion start")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, file := range files {
		idx := i
		path := file

		g.Go(func() error {
			start := time.Now()
			base := filepath.Base(path)
			log := logger.L().With().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Logger()

			exists, err := repo.HasIngestionForFile(base)
			if err != nil {
				log.Error().Err(err).Msg("check ingestion log failed")
				metrics.FilesIngested.WithLabelValues("failed").Inc()
				return fmt.Errorf("file %s: check ingestion log: %w", path, err)
			}
			if exists && !force {
				log.Info().Bool("skipped", true).Msg("already ingested")
				metrics.FilesIngested.WithLabelValues("skipped").Inc()
				return nil
			}
			if err := repo.DeleteObservationsBySource(base); err != nil {
				log.Error().Err(err).Msg("delete existing failed")
				metrics.FilesIngested.WithLabelValues("failed").Inc()
				return fmt.Errorf("file %s: delete existing: %w", path, err)
			}

			total, err := ingestFile(gctx, path, repo, batchSize)
			if err != nil {
				if derr := repo.DeleteObservationsBySource(base); derr != nil {
					log.Warn().Err(derr).Msg("cleanup of partial rows failed")
				}
				log.Error().Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				metrics.FilesIngested.WithLabelValues("failed").Inc()
				return fmt.Errorf("file %s: %w", path, err)
			}
			if err := repo.UpsertIngestionLog(base, total); err != nil {
				log.Error().Err(err).Msg("update ingestion log failed")
				metrics.FilesIngested.WithLabelValues("failed").Inc()
				return fmt.Errorf("file %s: upsert ingestion log: %w", path, err)
			}

			metrics.RowsIngested.Add(float64(total))
			metrics.FilesIngested.WithLabelValues("ingested").Inc()
			log.Info().Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("file done")
			return nil
		})
	}

	return g.Wait()
}

// ingestFile reads one CSV file and writes its rows in batches.
func ingestFile(ctx context.Context, path string, repo storage.ObservationsRepository, batch int) (int, error) {
	rows, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	obs, err := toObservations(filepath.Base(path), rows)
	if err != nil {
		return 0, err
	}

	for start := 0; start < len(obs); start += batch {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		end := start + batch
		if end > len(obs) {
			end = len(obs)
		}
		if err := repo.InsertObservationsBatch(obs[start:end]); err != nil {
			return 0, fmt.Errorf("insert rows %d-%d: %w", start+1, end, err)
		}
	}
	return len(obs), nil
}
