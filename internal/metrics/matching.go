package metrics

import "github.com/prometheus/client_golang/prometheus"

// Match directions.
const (
	DirectionPortfolios = "portfolios"
	DirectionRequests   = "requests"
)

var sizeBuckets = []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000, 5000}

var (
	matchCandidates = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portfolio_matching",
			Name:      "match_candidates",
			Help:      "Candidates evaluated per match call",
			Buckets:   sizeBuckets,
		},
		[]string{"direction"},
	)

	matchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portfolio_matching",
			Name:      "match_results",
			Help:      "Matches returned per match call",
			Buckets:   sizeBuckets,
		},
		[]string{"direction"},
	)
)

// ObserveMatch records the size of one match call.
func ObserveMatch(direction string, candidates, results int) {
	matchCandidates.WithLabelValues(direction).Observe(float64(candidates))
	matchResults.WithLabelValues(direction).Observe(float64(results))
}
