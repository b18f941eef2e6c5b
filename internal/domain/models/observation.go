package models

import "time"

// WeatherRow is one line of daily observations: an ISO-8601 timestamp and the
// day's low and high temperatures in Fahrenheit.
//
// Rows are immutable values; the order of a []WeatherRow is significant.
type WeatherRow struct {
	Timestamp string `json:"timestamp" example:"2021-07-05T07:00:00+08:00"`
	LowF      int    `json:"low_f" example:"55"`
	HighF     int    `json:"high_f" example:"61"`
}

// Observation is a WeatherRow as stored in the observations table.
//
// Column order:
//  1. SourceFile (file the row was ingested from)
//  2. Position (0-based row index inside that file, header excluded)
//  3. Timestamp (raw timestamp text)
//  4. ObservedAt (parsed timestamp)
//  5. LowF
//  6. HighF
type Observation struct {
	SourceFile string
	Position   int
	Timestamp  string
	ObservedAt time.Time
	LowF       int
	HighF      int
}

// Row returns the observation as a WeatherRow.
func (o Observation) Row() WeatherRow {
	return WeatherRow{Timestamp: o.Timestamp, LowF: o.LowF, HighF: o.HighF}
}
