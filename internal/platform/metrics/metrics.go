package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	AssessmentsCreated  prometheus.Counter
	StatusUpdates       prometheus.Counter
	ReportsGenerated    *prometheus.CounterVec
	ReportCacheHits     prometheus.Counter
	ReportCacheMisses   prometheus.Counter
	PipelineDuration    *prometheus.HistogramVec
	RequestLatency      *prometheus.HistogramVec
	OutOfScopeVerdicts  *prometheus.CounterVec
	UnifiedAggregations prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		AssessmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orbita_assessments_created_total",
			Help: "Total number of assessments created.",
		}),
		StatusUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orbita_status_updates_total",
			Help: "Total number of requirement status updates.",
		}),
		ReportsGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "orbita_reports_generated_total",
			Help: "Total number of reports generated, by kind.",
		}, []string{"kind"}),
		ReportCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orbita_report_cache_hits_total",
			Help: "Report cache hits.",
		}),
		ReportCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orbita_report_cache_misses_total",
			Help: "Report cache misses, including cache errors degraded to recompute.",
		}),
		PipelineDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orbita_pipeline_duration_seconds",
			Help:    "Duration of one framework's assessment pipeline.",
			Buckets: prometheus.DefBuckets,
		}, []string{"framework"}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orbita_http_request_duration_seconds",
			Help:    "HTTP request latency, by route and status class.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
		OutOfScopeVerdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "orbita_out_of_scope_verdicts_total",
			Help: "Scoping evaluations that ended out of scope, by framework.",
		}, []string{"framework"}),
		UnifiedAggregations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orbita_unified_aggregations_total",
			Help: "Unified cross-framework profile builds.",
		}),
	}
}
