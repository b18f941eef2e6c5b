package models

import "time"

// Summary holds the aggregate view over a set of weather rows.
//
// Fields:
//   - Count: number of rows summarized.
//   - MinValue/MinDate: lowest converted low temperature (°C) and the day it occurs.
//   - MaxValue/MaxDate: highest converted high temperature (°C) and the day it occurs.
//   - MeanMin/MeanMax: average low and high (°C), rounded to 1 decimal.
//
// Ties on the extremes resolve to the latest row.
type Summary struct {
	Count    int     `json:"count" example:"5"`
	MinValue float64 `json:"min_value" example:"9.4"`
	MinDate  string  `json:"min_date" example:"Friday 02 July 2021"`
	MaxValue float64 `json:"max_value" example:"20.0"`
	MaxDate  string  `json:"max_date" example:"Saturday 03 July 2021"`
	MeanMin  float64 `json:"mean_min" example:"12.2"`
	MeanMax  float64 `json:"mean_max" example:"17.8"`
}

// Report is a rendered pair of summaries over one dataset.
type Report struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Summary     Summary   `json:"summary"`
	SummaryText string    `json:"summary_text"`
	DailyText   string    `json:"daily_text"`
	GeneratedAt time.Time `json:"generated_at"`
}
