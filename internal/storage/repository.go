package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/guttosm/weatherpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// ObservationsRepository defines contract for DB operations.
type ObservationsRepository interface {
	InsertObservationsBatch(obs []models.Observation) error
	ListObservations(startDate *time.Time, endDate *time.Time) ([]models.Observation, error)
	HasIngestionForFile(sourceFile string) (bool, error)
	UpsertIngestionLog(sourceFile string, rowCount int) error
	DeleteObservationsBySource(sourceFile string) error
}

type observationsRepository struct {
	db *sql.DB
}

func NewObservationsRepository(db *sql.DB) ObservationsRepository {
	return &observationsRepository{db: db}
}

// InsertObservationsBatch inserts multiple observations in a single transaction using COPY.
func (r *observationsRepository) InsertObservationsBatch(obs []models.Observation) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"observations",
		"source_file",
		"position",
		"raw_timestamp",
		"observed_at",
		"observed_on",
		"low_f",
		"high_f",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, o := range obs {
		if _, err := stmt.Exec(
			o.SourceFile,
			o.Position,
			o.Timestamp,
			o.ObservedAt,
			// calendar date as written in the timestamp, not its UTC date
			o.ObservedAt.Format("2006-01-02"),
			o.LowF,
			o.HighF,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ListObservations returns stored observations whose local date falls in
// [startDate, endDate]. Nil bounds are open.
//
// Rows of one file keep their file order. Files are ordered by their earliest
// timestamp, then by name.
func (r *observationsRepository) ListObservations(startDate *time.Time, endDate *time.Time) ([]models.Observation, error) {
	conditions := "TRUE"
	var args []interface{}
	if startDate != nil {
		args = append(args, startDate.Format("2006-01-02"))
		conditions += fmt.Sprintf(" AND observed_on >= $%d", len(args))
	}
	if endDate != nil {
		args = append(args, endDate.Format("2006-01-02"))
		conditions += fmt.Sprintf(" AND observed_on <= $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT source_file, position, raw_timestamp, observed_at, low_f, high_f
		FROM observations
		WHERE %s
		ORDER BY MIN(observed_at) OVER (PARTITION BY source_file), source_file, position
	`, conditions)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Observation
	for rows.Next() {
		var o models.Observation
		if err := rows.Scan(&o.SourceFile, &o.Position, &o.Timestamp, &o.ObservedAt, &o.LowF, &o.HighF); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// HasIngestionForFile checks if a CSV file was already recorded in the ingestion log.
func (r *observationsRepository) HasIngestionForFile(sourceFile string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE source_file = $1)`, sourceFile).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or updates) the ingestion entry of a file.
func (r *observationsRepository) UpsertIngestionLog(sourceFile string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO ingestion_log (source_file, row_count)
		VALUES ($1, $2)
		ON CONFLICT (source_file)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  ingested_at = NOW()
	`, sourceFile, rowCount)
	return err
}

// DeleteObservationsBySource removes every observation loaded from a file.
func (r *observationsRepository) DeleteObservationsBySource(sourceFile string) error {
	_, err := r.db.Exec(`DELETE FROM observations WHERE source_file = $1`, sourceFile)
	return err
}
