package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bjjsocial_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// LeaderboardQueries counts leaderboard reads by view.
	LeaderboardQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bjjsocial_leaderboard_queries_total",
		Help: "Total leaderboard queries by view",
	}, []string{"view"})

	// MatchResultsRecorded counts finalize calls, split by whether the
	// match had already been finalized.
	MatchResultsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bjjsocial_match_results_recorded_total",
		Help: "Total match results recorded",
	}, []string{"refinalized"})

	// SocialActions counts follow, like and post actions.
	SocialActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bjjsocial_social_actions_total",
		Help: "Total social graph and feed mutations by action",
	}, []string{"action"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
