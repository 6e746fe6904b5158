package metrics

import (
	"database/sql"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	metricPrefix = "xspoc_"

	resultSuccess  = "success"
	resultError    = "error"
	resultNotFound = "not_found"
)

var (
	registerOnce sync.Once

	queryTotal   *prometheus.CounterVec
	queryLatency *prometheus.HistogramVec
	queryRecords *prometheus.HistogramVec

	currentValueFetchTotal   *prometheus.CounterVec
	currentValueFetchLatency *prometheus.HistogramVec

	flagFallbackTotal *prometheus.CounterVec

	exportTotal *prometheus.CounterVec
)

// Init registers collectors on the default registry. db may be nil.
func Init(db *sql.DB) {
	registerOnce.Do(func() {
		queryTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "query_total",
				Help: "Total register queries by query, current value source and result",
			},
			[]string{"query", "source", "result"},
		)
		queryLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "query_latency_seconds",
				Help:    "Register query latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"query", "source", "result"},
		)
		queryRecords = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "query_records",
				Help:    "Records returned per register query",
				Buckets: []float64{0, 10, 50, 100, 250, 500, 1000},
			},
			[]string{"query"},
		)

		currentValueFetchTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "current_value_fetch_total",
				Help: "Total current value fetches by source and result",
			},
			[]string{"source", "result"},
		)
		currentValueFetchLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "current_value_fetch_latency_seconds",
				Help:    "Current value fetch latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		)

		flagFallbackTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "feature_flag_fallback_total",
				Help: "Feature flag reads that fell back to the static value",
			},
			[]string{"flag"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "register_export_total",
				Help: "Total register spreadsheet exports by result",
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			queryTotal,
			queryLatency,
			queryRecords,
			currentValueFetchTotal,
			currentValueFetchLatency,
			flagFallbackTotal,
			exportTotal,
		)

		if db != nil {
			prometheus.MustRegister(collectors.NewDBStatsCollector(db, "xspoc"))
		}
	})
}

// ObserveQuery records one register query.
func ObserveQuery(query, source, result string, records int, duration time.Duration) {
	if source == "" {
		source = "none"
	}
	if result == "" {
		result = resultSuccess
	}
	if queryTotal != nil {
		queryTotal.WithLabelValues(query, source, result).Inc()
	}
	if queryLatency != nil {
		queryLatency.WithLabelValues(query, source, result).Observe(duration.Seconds())
	}
	if queryRecords != nil && result == resultSuccess {
		queryRecords.WithLabelValues(query).Observe(float64(records))
	}
}

// ObserveCurrentValueFetch records one provider call.
func ObserveCurrentValueFetch(source string, err error, duration time.Duration) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if currentValueFetchTotal != nil {
		currentValueFetchTotal.WithLabelValues(source, result).Inc()
	}
	if currentValueFetchLatency != nil {
		currentValueFetchLatency.WithLabelValues(source).Observe(duration.Seconds())
	}
}

// IncFlagFallback counts a flag read served by the fallback.
func IncFlagFallback(flag string) {
	if flagFallbackTotal != nil {
		flagFallbackTotal.WithLabelValues(flag).Inc()
	}
}

// IncExport counts a spreadsheet export.
func IncExport(result string) {
	if result == "" {
		result = resultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(result).Inc()
	}
}

// Exported constants for callers.
const (
	ResultSuccess  = resultSuccess
	ResultError    = resultError
	ResultNotFound = resultNotFound

	QueryStatusRegisters = "status_registers"
	QueryParamStandard   = "param_standard"
)
