package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerMetricsOnce sync.Once

	LLMCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookscan_llm_calls_total",
			Help: "Total completion calls",
		},
		[]string{"operation", "model"},
	)

	LLMErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookscan_llm_errors_total",
			Help: "Total failed completion calls",
		},
		[]string{"operation", "code"},
	)

	LLMLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookscan_llm_latency_seconds",
			Help:    "Completion call latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	Categories = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookscan_categories_total",
			Help: "Categorization results",
		},
		[]string{"category"},
	)
)

func InitMetrics() {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(LLMCalls, LLMErrors, LLMLatency, Categories)
	})
}
