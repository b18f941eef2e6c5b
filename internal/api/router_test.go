package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"github.com/guttosm/weatherpulse/internal/domain/dto"
	"github.com/guttosm/weatherpulse/internal/middleware"
	"github.com/guttosm/weatherpulse/internal/observability"
	"github.com/guttosm/weatherpulse/internal/service"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	metrics := observability.NewMetricsForTesting()
	svc := &mockReportService{
		resp:   weekReport(),
		render: service.NewReportService(nil, metrics, nil),
	}
	r := NewRouter(NewHandler(svc), nil, metrics.Handler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary?start=2021-07-02", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	var out dto.SummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Summary == nil || out.Summary.MinDate != "Friday 02 July 2021" {
		t.Fatalf("unexpected body: %+v", out)
	}

	// a render through the router shows up on /metrics
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/reports/render", strings.NewReader(renderCSV)))
	if w.Code != http.StatusOK {
		t.Fatalf("render: expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `weatherpulse_reports_generated_total{kind="summary"} 1`) {
		t.Fatalf("metrics body missing report counter:\n%s", w.Body.String())
	}
}

func TestNewRouter_RateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := middleware.NewRateLimiter(1, time.Minute, clockwork.NewFakeClock())
	r := NewRouter(NewHandler(&mockReportService{resp: weekReport()}), limiter, nil)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reports/daily", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}
}
