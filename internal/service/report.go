package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/guttosm/weatherpulse/internal/domain/models"
	"github.com/guttosm/weatherpulse/internal/observability"
	"github.com/guttosm/weatherpulse/internal/storage"
	"github.com/guttosm/weatherpulse/internal/weather"
)

// storedSource names reports built from the observations table.
const storedSource = "observations"

// ErrNoRepository is returned by BuildReport when the service has no storage behind it.
var ErrNoRepository = errors.New("report service has no repository")

// ReportService renders weather reports over stored or in-memory rows.
type ReportService interface {
	BuildReport(ctx context.Context, startDate *time.Time, endDate *time.Time) (*models.Report, error)
	Render(ctx context.Context, source string, rows []models.WeatherRow) (*models.Report, error)
}

type reportService struct {
	repo    storage.ObservationsRepository
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// NewReportService wires a ReportService.
//
// Parameters:
//   - repo: observation storage; may be nil when only Render is used (CLI report mode).
//   - metrics: render counters and timings; nil means a private, unexported registry.
//   - clock: time source for Report.GeneratedAt; nil means the real clock.
func NewReportService(repo storage.ObservationsRepository, metrics *observability.Metrics, clock clockwork.Clock) ReportService {
	if metrics == nil {
		metrics = observability.NewMetricsForTesting()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &reportService{repo: repo, metrics: metrics, clock: clock}
}

// BuildReport loads the observations whose local date falls in [startDate, endDate]
// (nil bounds are open) and renders them in storage order.
func (s *reportService) BuildReport(ctx context.Context, startDate *time.Time, endDate *time.Time) (*models.Report, error) {
	if s.repo == nil {
		return nil, ErrNoRepository
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	obs, err := s.repo.ListObservations(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list observations: %w", err)
	}
	rows := make([]models.WeatherRow, len(obs))
	for i, o := range obs {
		rows[i] = o.Row()
	}
	return s.Render(ctx, storedSource, rows)
}

// Render produces both reports and the Summary for rows.
// Malformed timestamps fail the whole render; nothing is partially returned.
func (s *reportService) Render(ctx context.Context, source string, rows []models.WeatherRow) (*models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := s.clock.Now()

	summary, err := weather.Summarize(rows)
	if err != nil {
		s.metrics.ReportErrors.Inc()
		return nil, err
	}
	summaryText, err := weather.GenerateSummary(rows)
	if err != nil {
		s.metrics.ReportErrors.Inc()
		return nil, err
	}
	dailyText, err := weather.GenerateDailySummary(rows)
	if err != nil {
		s.metrics.ReportErrors.Inc()
		return nil, err
	}

	now := s.clock.Now()
	s.metrics.RenderDuration.Observe(now.Sub(start).Seconds())
	s.metrics.ReportsGenerated.WithLabelValues("summary").Inc()
	s.metrics.ReportsGenerated.WithLabelValues("daily").Inc()

	return &models.Report{
		ID:          uuid.NewString(),
		Source:      source,
		Summary:     summary,
		SummaryText: summaryText,
		DailyText:   dailyText,
		GeneratedAt: now.UTC(),
	}, nil
}

// Report formats accepted by Text.
const (
	FormatSummary = "summary"
	FormatDaily   = "daily"
	FormatBoth    = "both"
)

// ErrUnknownFormat is returned by Text for a format other than summary, daily or both.
var ErrUnknownFormat = errors.New("unknown report format")

// Text selects the rendering of r for format. "both" is the summary, a blank
// line, then the daily blocks. The no-data message carries no trailing newline,
// so it gets two.
func Text(r *models.Report, format string) (string, error) {
	switch format {
	case FormatSummary:
		return r.SummaryText, nil
	case FormatDaily:
		return r.DailyText, nil
	case FormatBoth:
		sep := "\n"
		if !strings.HasSuffix(r.SummaryText, "\n") {
			sep = "\n\n"
		}
		return r.SummaryText + sep + r.DailyText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
