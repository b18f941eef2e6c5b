package dto

import (
	"time"

	"github.com/guttosm/weatherpulse/internal/domain/models"
)

// SummaryResponse is returned by GET /api/v1/reports/summary.
//
// Summary is nil when no observations matched; Text then carries "No data available.".
type SummaryResponse struct {
	ReportID    string          `json:"report_id" example:"9b2f6c1e-8f3a-4f57-9a55-2f1d0c7f4d2a"`
	Days        int             `json:"days" example:"5"`
	Summary     *SummaryPayload `json:"summary,omitempty"`
	Text        string          `json:"text"`
	GeneratedAt time.Time       `json:"generated_at" example:"2021-07-07T12:00:00Z"`
}

// SummaryPayload is the structured part of a summary report, in °C.
type SummaryPayload struct {
	MinTemperature float64 `json:"min_temperature" example:"9.4"`
	MinDate        string  `json:"min_date" example:"Friday 02 July 2021"`
	MaxTemperature float64 `json:"max_temperature" example:"20.0"`
	MaxDate        string  `json:"max_date" example:"Saturday 03 July 2021"`
	AverageLow     float64 `json:"average_low" example:"12.2"`
	AverageHigh    float64 `json:"average_high" example:"17.8"`
}

// DailyResponse is returned by GET /api/v1/reports/daily.
type DailyResponse struct {
	ReportID    string    `json:"report_id" example:"9b2f6c1e-8f3a-4f57-9a55-2f1d0c7f4d2a"`
	Days        int       `json:"days" example:"5"`
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at" example:"2021-07-07T12:00:00Z"`
}

// NewSummaryResponse maps a report onto the summary endpoint contract.
func NewSummaryResponse(r *models.Report) SummaryResponse {
	resp := SummaryResponse{
		ReportID:    r.ID,
		Days:        r.Summary.Count,
		Text:        r.SummaryText,
		GeneratedAt: r.GeneratedAt,
	}
	if r.Summary.Count > 0 {
		resp.Summary = &SummaryPayload{
			MinTemperature: r.Summary.MinValue,
			MinDate:        r.Summary.MinDate,
			MaxTemperature: r.Summary.MaxValue,
			MaxDate:        r.Summary.MaxDate,
			AverageLow:     r.Summary.MeanMin,
			AverageHigh:    r.Summary.MeanMax,
		}
	}
	return resp
}

// NewDailyResponse maps a report onto the daily endpoint contract.
func NewDailyResponse(r *models.Report) DailyResponse {
	return DailyResponse{
		ReportID:    r.ID,
		Days:        r.Summary.Count,
		Text:        r.DailyText,
		GeneratedAt: r.GeneratedAt,
	}
}
