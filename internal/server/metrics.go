package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exposed on /metrics.
type Metrics struct {
	Registry           *prometheus.Registry
	SchedulesGenerated *prometheus.CounterVec
	CacheRequests      *prometheus.CounterVec
	Requests           *prometheus.CounterVec
	GenerationSeconds  prometheus.Histogram
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		SchedulesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "curaplan_schedules_generated_total",
			Help: "Schedules generated by the engine, by tone.",
		}, []string{"tone"}),
		CacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "curaplan_schedule_cache_requests_total",
			Help: "Schedule cache lookups, by result.",
		}, []string{"result"}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "curaplan_http_requests_total",
			Help: "HTTP requests, by route and status.",
		}, []string{"route", "status"}),
		GenerationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "curaplan_generation_duration_seconds",
			Help:    "Time spent generating a schedule on a cache miss.",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.01},
		}),
	}
	m.Registry.MustRegister(m.SchedulesGenerated, m.CacheRequests, m.Requests, m.GenerationSeconds)
	return m
}

func (m *Metrics) incGenerated(tone string) {
	if m == nil {
		return
	}
	m.SchedulesGenerated.WithLabelValues(tone).Inc()
}

func (m *Metrics) incCache(result string) {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues(result).Inc()
}

func (m *Metrics) incRequest(route, status string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, status).Inc()
}

func (m *Metrics) observeGeneration(seconds float64) {
	if m == nil {
		return
	}
	m.GenerationSeconds.Observe(seconds)
}
