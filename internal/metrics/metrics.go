package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobscout_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	CycleDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobscout_scrape_cycle_duration_seconds",
			Help:    "Duration of each scrape-and-report cycle in seconds.",
			Buckets: []float64{5, 15, 60, 300, 900},
		},
	)
	CycleStepDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "jobscout_cycle_step_duration_seconds",
			Help:       "Duration of each step in the scrape cycle.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"step"},
	)
	CollectedPostingsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobscout_postings_collected_total",
			Help: "Total number of raw postings collected, per source.",
		},
		[]string{"source"},
	)
	SuppressedPostingsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobscout_postings_suppressed_total",
			Help: "Total number of postings dropped by the pipeline, per reason.",
		},
		[]string{"reason"},
	)
	ReportedPostingsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobscout_postings_reported_total",
			Help: "Total number of postings delivered to the chat.",
		},
	)
)

func StartMetricsServer() {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(CycleDuration)
	prometheus.MustRegister(CycleStepDuration)
	prometheus.MustRegister(CollectedPostingsCounter)
	prometheus.MustRegister(SuppressedPostingsCounter)
	prometheus.MustRegister(ReportedPostingsCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":8080", nil))
	}()
}
