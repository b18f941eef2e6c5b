package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weatherpulse"

// Metrics holds the Prometheus collectors for report rendering and ingestion.
//
// Each Metrics owns its registry, so building several (tests, CLI runs) never
// collides on registration.
type Metrics struct {
	ReportsGenerated *prometheus.CounterVec // labels: kind={summary,daily}
	ReportErrors     prometheus.Counter
	RenderDuration   prometheus.Histogram

	RowsIngested  prometheus.Counter
	FilesIngested *prometheus.CounterVec // labels: outcome={ingested,skipped,failed}

	registry *prometheus.Registry
}

// NewMetrics creates and registers all collectors, plus the Go runtime and
// process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := newCollectors()
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// NewMetricsForTesting creates Metrics without the runtime collectors.
func NewMetricsForTesting() *Metrics {
	return newCollectors()
}

func newCollectors() *Metrics {
	m := &Metrics{
		ReportsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Reports rendered, by kind.",
		}, []string{"kind"}),
		ReportErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_errors_total",
			Help:      "Report renderings that failed on malformed input.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_render_duration_seconds",
			Help:      "Time spent rendering both reports for one dataset.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		RowsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_ingested_total",
			Help:      "Weather rows written to storage.",
		}),
		FilesIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_ingested_total",
			Help:      "CSV files processed by ingestion, by outcome.",
		}, []string{"outcome"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.ReportsGenerated,
		m.ReportErrors,
		m.RenderDuration,
		m.RowsIngested,
		m.FilesIngested,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
