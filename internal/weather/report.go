package weather

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/weatherpulse/internal/domain/models"
)

const (
	// DegreeSymbol is appended to every displayed temperature.
	DegreeSymbol = "°C"

	// NoDataMessage is the rendering of an empty dataset.
	NoDataMessage = "No data available."
)

// FormatTemperature renders a Celsius value with exactly one decimal place.
func FormatTemperature(celsius float64) string {
	return strconv.FormatFloat(celsius, 'f', 1, 64) + DegreeSymbol
}

// day is a row after date formatting and unit conversion.
type day struct {
	date string
	low  float64
	high float64
}

func convertRows(rows []models.WeatherRow) ([]day, error) {
	days := make([]day, 0, len(rows))
	for i, r := range rows {
		date, err := FormatDate(r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		days = append(days, day{
			date: date,
			low:  FahrenheitToCelsius(Int(int64(r.LowF))),
			high: FahrenheitToCelsius(Int(int64(r.HighF))),
		})
	}
	return days, nil
}

// Summarize reduces rows to a Summary.
//
// Behavior:
//   - Converts every low/high to Celsius (1 decimal).
//   - Lowest low and highest high are found with last-occurrence tie-break.
//   - Means are computed over the converted values and rounded to 1 decimal.
//
// Returns:
//   - models.Summary: zero value with Count 0 for an empty dataset.
//   - error: ErrInvalidDateFormat for an unparsable timestamp.
func Summarize(rows []models.WeatherRow) (models.Summary, error) {
	if len(rows) == 0 {
		return models.Summary{}, nil
	}
	days, err := convertRows(rows)
	if err != nil {
		return models.Summary{}, err
	}

	lows := make([]Number, len(days))
	highs := make([]Number, len(days))
	for i, d := range days {
		lows[i] = Float(d.low)
		highs[i] = Float(d.high)
	}

	lowest, _ := FindMin(lows)
	highest, _ := FindMax(highs)

	return models.Summary{
		Count:    len(days),
		MinValue: roundTo(lowest.Value, 1),
		MinDate:  days[lowest.Index].date,
		MaxValue: roundTo(highest.Value, 1),
		MaxDate:  days[highest.Index].date,
		MeanMin:  roundTo(CalculateMean(lows).Float64(), 1),
		MeanMax:  roundTo(CalculateMean(highs).Float64(), 1),
	}, nil
}

// GenerateSummary renders the multi-day overview:
//
//	N Day Overview
//	  The lowest temperature will be <min>°C, and will occur on <date>.
//	  The highest temperature will be <max>°C, and will occur on <date>.
//	  The average low this week is <mean_min>°C.
//	  The average high this week is <mean_max>°C.
//
// The text ends with a newline. An empty dataset renders as NoDataMessage.
func GenerateSummary(rows []models.WeatherRow) (string, error) {
	if len(rows) == 0 {
		return NoDataMessage, nil
	}
	s, err := Summarize(rows)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d Day Overview\n", s.Count)
	fmt.Fprintf(&b, "  The lowest temperature will be %s, and will occur on %s.\n", FormatTemperature(s.MinValue), s.MinDate)
	fmt.Fprintf(&b, "  The highest temperature will be %s, and will occur on %s.\n", FormatTemperature(s.MaxValue), s.MaxDate)
	fmt.Fprintf(&b, "  The average low this week is %s.\n", FormatTemperature(s.MeanMin))
	fmt.Fprintf(&b, "  The average high this week is %s.\n", FormatTemperature(s.MeanMax))
	return b.String(), nil
}

// GenerateDailySummary renders one block per row, in input order:
//
//	---- <date> ----
//	  Minimum Temperature: <low>°C
//	  Maximum Temperature: <high>°C
//
// Blocks are separated by a blank line and the text ends with two newlines.
func GenerateDailySummary(rows []models.WeatherRow) (string, error) {
	if len(rows) == 0 {
		return NoDataMessage, nil
	}
	days, err := convertRows(rows)
	if err != nil {
		return "", err
	}

	blocks := make([]string, len(days))
	for i, d := range days {
		blocks[i] = fmt.Sprintf("---- %s ----\n  Minimum Temperature: %s\n  Maximum Temperature: %s",
			d.date, FormatTemperature(d.low), FormatTemperature(d.high))
	}
	return strings.Join(blocks, "\n\n") + "\n\n", nil
}
