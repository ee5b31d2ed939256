// Package metrics holds the Prometheus collectors Platter exports on the metrics server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	RankingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "platter",
		Name:      "rankings_total",
		Help:      "Rankings computed, by source and outcome.",
	}, []string{"source", "outcome"})

	RankingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "platter",
		Name:      "ranking_duration_seconds",
		Help:      "Time spent validating and scoring one candidate set.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	RankingCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "platter",
		Name:      "ranking_candidates",
		Help:      "Number of candidates per ranking.",
		Buckets:   []float64{1, 5, 10, 20, 50, 100, 200},
	})

	TopScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "platter",
		Name:      "ranking_top_score",
		Help:      "Composite score of the best candidate per ranking.",
		Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
	})

	GeneratorRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "platter",
		Name:      "generator_requests_total",
		Help:      "Text-generation calls, by backend, purpose and outcome.",
	}, []string{"backend", "purpose", "outcome"})

	GeneratorDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "platter",
		Name:      "generator_duration_seconds",
		Help:      "Latency of text-generation calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "purpose"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "platter",
		Name:      "events_published_total",
		Help:      "Hermes events published, by kind and outcome.",
	}, []string{"kind", "outcome"})
)

// ObserveRanking records one completed ranking.
func ObserveRanking(source string, candidates int, topScore float64, elapsed time.Duration) {
	RankingsTotal.WithLabelValues(source, OutcomeOK).Inc()
	RankingDuration.Observe(elapsed.Seconds())
	RankingCandidates.Observe(float64(candidates))
	TopScore.Observe(topScore)
}

// ObserveRankingFailure records a ranking request that was rejected. Scoring
// itself cannot fail once a request is valid, so every failure is an invalid request.
func ObserveRankingFailure(source string) {
	RankingsTotal.WithLabelValues(source, OutcomeInvalid).Inc()
}

// ObserveGenerator records one text-generation call.
func ObserveGenerator(backend, purpose string, err error, elapsed time.Duration) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	GeneratorRequests.WithLabelValues(backend, purpose, outcome).Inc()
	GeneratorDuration.WithLabelValues(backend, purpose).Observe(elapsed.Seconds())
}

// ObservePublish records a hermes publish attempt.
func ObservePublish(kind string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	EventsPublished.WithLabelValues(kind, outcome).Inc()
}
