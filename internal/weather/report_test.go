package weather

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/weatherpulse/internal/domain/models"
)

var weekOne = []models.WeatherRow{
	{Timestamp: "2021-07-02T07:00:00+08:00", LowF: 49, HighF: 67},
	{Timestamp: "2021-07-03T07:00:00+08:00", LowF: 57, HighF: 68},
	{Timestamp: "2021-07-04T07:00:00+08:00", LowF: 56, HighF: 62},
	{Timestamp: "2021-07-05T07:00:00+08:00", LowF: 55, HighF: 61},
	{Timestamp: "2021-07-06T07:00:00+08:00", LowF: 53, HighF: 62},
}

func TestGenerateSummary(t *testing.T) {
	got, err := GenerateSummary(weekOne)
	require.NoError(t, err)

	want := "5 Day Overview\n" +
		"  The lowest temperature will be 9.4°C, and will occur on Friday 02 July 2021.\n" +
		"  The highest temperature will be 20.0°C, and will occur on Saturday 03 July 2021.\n" +
		"  The average low this week is 12.2°C.\n" +
		"  The average high this week is 17.8°C.\n"
	assert.Equal(t, want, got)
}

func TestGenerateSummary_TieReportsLastDay(t *testing.T) {
	rows := []models.WeatherRow{
		{Timestamp: "2021-07-02T07:00:00+08:00", LowF: 50, HighF: 70},
		{Timestamp: "2021-07-03T07:00:00+08:00", LowF: 50, HighF: 70},
		{Timestamp: "2021-07-04T07:00:00+08:00", LowF: 60, HighF: 65},
	}
	s, err := Summarize(rows)
	require.NoError(t, err)
	assert.Equal(t, "Saturday 03 July 2021", s.MinDate)
	assert.Equal(t, "Saturday 03 July 2021", s.MaxDate)
	assert.Equal(t, 10.0, s.MinValue)
	assert.Equal(t, 21.1, s.MaxValue)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(weekOne)
	require.NoError(t, err)
	assert.Equal(t, models.Summary{
		Count:    5,
		MinValue: 9.4,
		MinDate:  "Friday 02 July 2021",
		MaxValue: 20.0,
		MaxDate:  "Saturday 03 July 2021",
		MeanMin:  12.2,
		MeanMax:  17.8,
	}, s)

	empty, err := Summarize(nil)
	require.NoError(t, err)
	assert.Equal(t, models.Summary{}, empty)
}

func TestGenerateDailySummary(t *testing.T) {
	rows := []models.WeatherRow{
		{Timestamp: "2020-06-19T07:00:00+08:00", LowF: -47, HighF: -46},
		{Timestamp: "2020-06-20T07:00:00+08:00", LowF: -51, HighF: 67},
	}
	got, err := GenerateDailySummary(rows)
	require.NoError(t, err)

	want := "---- Friday 19 June 2020 ----\n" +
		"  Minimum Temperature: -43.9°C\n" +
		"  Maximum Temperature: -43.3°C\n" +
		"\n" +
		"---- Saturday 20 June 2020 ----\n" +
		"  Minimum Temperature: -46.1°C\n" +
		"  Maximum Temperature: 19.4°C\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestGenerateDailySummary_Separators(t *testing.T) {
	got, err := GenerateDailySummary(weekOne)
	require.NoError(t, err)

	assert.False(t, strings.HasPrefix(got, "\n"))
	assert.True(t, strings.HasSuffix(got, "\n\n"))
	assert.False(t, strings.HasSuffix(got, "\n\n\n"))
	assert.Equal(t, len(weekOne)-1, strings.Count(strings.TrimSuffix(got, "\n\n"), "\n\n"))
}

func TestRenderers_EmptyDataset(t *testing.T) {
	for name, render := range map[string]func([]models.WeatherRow) (string, error){
		"summary": GenerateSummary,
		"daily":   GenerateDailySummary,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := render(nil)
			require.NoError(t, err)
			assert.Equal(t, "No data available.", got)
		})
	}
}

func TestRenderers_Idempotent(t *testing.T) {
	first, err := GenerateSummary(weekOne)
	require.NoError(t, err)
	second, err := GenerateSummary(weekOne)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	d1, err := GenerateDailySummary(weekOne)
	require.NoError(t, err)
	d2, err := GenerateDailySummary(weekOne)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestRenderers_InvalidDatePropagates(t *testing.T) {
	rows := []models.WeatherRow{{Timestamp: "not-a-date", LowF: 50, HighF: 60}}

	_, err := GenerateSummary(rows)
	assert.True(t, errors.Is(err, ErrInvalidDateFormat))

	_, err = GenerateDailySummary(rows)
	assert.True(t, errors.Is(err, ErrInvalidDateFormat))
}
