package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/weatherpulse/internal/domain/dto"
	"github.com/guttosm/weatherpulse/internal/ingestion"
	"github.com/guttosm/weatherpulse/internal/middleware"
	"github.com/guttosm/weatherpulse/internal/service"
	"github.com/guttosm/weatherpulse/internal/weather"
)

const dateLayout = "2006-01-02"

// maxRenderBody caps the CSV accepted by RenderCSV.
var maxRenderBody int64 = 10 << 20

// Handler serves the report endpoints.
//
// Responsibilities:
//   - Validate query parameters and request bodies
//   - Delegate report building to service.ReportService
//   - Map reports onto response DTOs and errors onto dto.ErrorResponse
type Handler struct {
	svc service.ReportService
}

// NewHandler constructs a Handler around svc.
func NewHandler(svc service.ReportService) *Handler {
	return &Handler{svc: svc}
}

// parseRange reads the optional start and end query parameters (YYYY-MM-DD).
// A missing bound is nil.
func parseRange(c *gin.Context) (start, end *time.Time, ok bool) {
	parse := func(name string) (*time.Time, bool) {
		s := c.Query(name)
		if s == "" {
			return nil, true
		}
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid "+name+" format, expected YYYY-MM-DD", err)
			return nil, false
		}
		return &t, true
	}

	if start, ok = parse("start"); !ok {
		return nil, nil, false
	}
	if end, ok = parse("end"); !ok {
		return nil, nil, false
	}
	if start != nil && end != nil && start.After(*end) {
		middleware.AbortWithError(c, http.StatusBadRequest, "start must not be after end", nil)
		return nil, nil, false
	}
	return start, end, true
}

// GetSummary handles GET /api/v1/reports/summary.
//
// GetSummary godoc
// @Summary      Multi-day temperature overview
// @Description  Summarizes stored observations whose local date is within [start, end]. Both bounds are optional.
// @Tags         reports
// @Produce      json
// @Param        start  query     string  false  "First day, YYYY-MM-DD" example(2021-07-02)
// @Param        end    query     string  false  "Last day, YYYY-MM-DD"  example(2021-07-06)
// @Success      200    {object}  dto.SummaryResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse    "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/reports/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}
	rep, err := h.svc.BuildReport(c.Request.Context(), start, end)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to build report", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSummaryResponse(rep))
}

// GetDaily handles GET /api/v1/reports/daily.
//
// GetDaily godoc
// @Summary      Per-day temperature report
// @Description  Renders one block per stored observation whose local date is within [start, end].
// @Tags         reports
// @Produce      json
// @Param        start  query     string  false  "First day, YYYY-MM-DD" example(2021-07-02)
// @Param        end    query     string  false  "Last day, YYYY-MM-DD"  example(2021-07-06)
// @Success      200    {object}  dto.DailyResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/reports/daily [get]
func (h *Handler) GetDaily(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}
	rep, err := h.svc.BuildReport(c.Request.Context(), start, end)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to build report", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDailyResponse(rep))
}

// RenderCSV handles POST /api/v1/reports/render.
//
// RenderCSV godoc
// @Summary      Render a report from an uploaded CSV
// @Description  Parses a date,min,max CSV (°F) and returns the plain-text report. Nothing is stored.
// @Tags         reports
// @Accept       text/csv
// @Produce      plain
// @Param        format  query     string  false  "summary, daily or both" default(summary)
// @Param        body    body      string  true   "CSV with a header row"
// @Success      200     {string}  string             "Report text"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      413     {object}  dto.ErrorResponse  "Payload Too Large"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/reports/render [post]
func (h *Handler) RenderCSV(c *gin.Context) {
	format := c.DefaultQuery("format", service.FormatSummary)

	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxRenderBody)
	rows, err := ingestion.ReadRows(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.AbortWithError(c, http.StatusRequestEntityTooLarge, "request body too large", err)
			return
		}
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid csv", err)
		return
	}

	rep, err := h.svc.Render(c.Request.Context(), "upload", rows)
	if err != nil {
		if errors.Is(err, weather.ErrInvalidDateFormat) {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid csv", err)
			return
		}
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to render report", err)
		return
	}

	text, err := service.Text(rep, format)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid format, expected summary, daily or both", err)
		return
	}
	c.Header("X-Report-ID", rep.ID)
	c.String(http.StatusOK, text)
}
