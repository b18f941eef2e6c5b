package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/guttosm/weatherpulse/internal/domain/models"
	"github.com/guttosm/weatherpulse/internal/weather"
)

// rowFields is the shape of a weather line: date, low °F, high °F.
const rowFields = 3

// LoadFile opens a CSV file and reads its weather rows.
//
// Parameters:
//   - path: file path of a comma-separated file with a header row.
//
// Returns:
//   - []models.WeatherRow: rows in file order.
//   - error: I/O errors, or ErrInvalidNumericInput for a non-integer temperature.
func LoadFile(path string) ([]models.WeatherRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadRows(f)
}

// ReadRows parses weather rows from CSV.
//
// Behavior:
//   - The first record is a header and is skipped without validation.
//   - Blank lines and records whose field count is not exactly 3 are dropped.
//   - Low and high temperatures must be base-10 integers; anything else fails
//     the whole read with the offending line number.
//   - The timestamp is kept verbatim; it is validated when rendered.
//   - CSV syntax errors surface as ErrMalformedRow.
//
// An input with no header at all yields an empty dataset.
func ReadRows(r io.Reader) ([]models.WeatherRow, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1 // shape is checked per record

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.WeatherRow{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	rows := make([]models.WeatherRow, 0, 16)
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: %v", weather.ErrMalformedRow, err)
			}
			return nil, fmt.Errorf("read record: %w", err)
		}
		if len(rec) != rowFields {
			continue
		}
		line, _ := cr.FieldPos(0)

		row, err := recordToRow(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// recordToRow converts a record already known to have 3 fields.
//
//	0 timestamp → Timestamp (ISO-8601, kept as-is)
//	1 low       → LowF (int)
//	2 high      → HighF (int)
func recordToRow(rec []string) (models.WeatherRow, error) {
	low, err := parseTemperature(rec[1])
	if err != nil {
		return models.WeatherRow{}, fmt.Errorf("low temperature: %w", err)
	}
	high, err := parseTemperature(rec[2])
	if err != nil {
		return models.WeatherRow{}, fmt.Errorf("high temperature: %w", err)
	}
	return models.WeatherRow{Timestamp: rec[0], LowF: low, HighF: high}, nil
}

func parseTemperature(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", weather.ErrInvalidNumericInput, s)
	}
	return v, nil
}

// toObservations tags rows with their source file and parsed timestamp for storage.
func toObservations(source string, rows []models.WeatherRow) ([]models.Observation, error) {
	out := make([]models.Observation, 0, len(rows))
	for i, r := range rows {
		at, err := weather.ParseTimestamp(r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, models.Observation{
			SourceFile: source,
			Position:   i,
			Timestamp:  r.Timestamp,
			ObservedAt: at,
			LowF:       r.LowF,
			HighF:      r.HighF,
		})
	}
	return out, nil
}
